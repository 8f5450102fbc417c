package booking

import (
	"encoding/json"
	"fmt"
	"strings"

	"everafter/models"
)

// Step is a stage of the inquiry flow.
type Step string

const (
	StepPayment      Step = "payment"
	StepMethod       Step = "method"
	StepMessage      Step = "message"
	StepReview       Step = "review"
	StepConfirmation Step = "confirmation"
)

var stepOrder = []Step{StepPayment, StepMethod, StepMessage, StepReview, StepConfirmation}

func (s Step) index() int {
	for i, st := range stepOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known step.
func (s Step) Valid() bool {
	return s.index() >= 0
}

// StepRecord is the validated field set owned by one step.
type StepRecord interface {
	Step() Step
	Validate() error
}

type PaymentPlanStep struct {
	Plan models.PaymentPlan `json:"plan"`
}

func (PaymentPlanStep) Step() Step { return StepPayment }

func (p PaymentPlanStep) Validate() error {
	switch p.Plan {
	case models.PlanFull, models.PlanPartial, models.PlanInstallments:
		return nil
	}
	return stepError(StepPayment, fmt.Sprintf("unknown payment plan %q", p.Plan))
}

type PaymentMethodStep struct {
	Method models.PaymentMethod `json:"method"`
	// Card is accepted on input only. The flow keeps CardLast4.
	Card      *models.CardDetails `json:"card,omitempty"`
	CardLast4 string              `json:"cardLast4,omitempty"`
	Phone     string              `json:"phone,omitempty"`
}

func (PaymentMethodStep) Step() Step { return StepMethod }

func (p PaymentMethodStep) Validate() error {
	switch {
	case p.Method == models.MethodCard:
		if p.Card == nil ||
			strings.TrimSpace(p.Card.Number) == "" ||
			strings.TrimSpace(p.Card.Expiry) == "" ||
			strings.TrimSpace(p.Card.CVV) == "" {
			return stepError(StepMethod, "card number, expiry and CVV are required")
		}
		return nil
	case p.Method.IsMobileMoney():
		if !isTenDigits(p.Phone) {
			return stepError(StepMethod, "a 10-digit phone number is required")
		}
		return nil
	default:
		return stepError(StepMethod, fmt.Sprintf("unknown payment method %q", p.Method))
	}
}

// sanitized drops the card details, keeping only the last four digits.
func (p PaymentMethodStep) sanitized() PaymentMethodStep {
	out := PaymentMethodStep{Method: p.Method}
	if p.Method == models.MethodCard && p.Card != nil {
		digits := onlyDigits(p.Card.Number)
		if len(digits) > 4 {
			digits = digits[len(digits)-4:]
		}
		out.CardLast4 = digits
	}
	if p.Method.IsMobileMoney() {
		out.Phone = strings.TrimSpace(p.Phone)
	}
	return out
}

type MessageStep struct {
	Message string `json:"message"`
}

func (MessageStep) Step() Step { return StepMessage }

func (MessageStep) Validate() error { return nil }

// ContactStep is the review step: who is asking and for what.
type ContactStep struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	EventType string `json:"eventType,omitempty"`
	Budget    string `json:"budget,omitempty"`
}

func (ContactStep) Step() Step { return StepReview }

func (c ContactStep) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return stepError(StepReview, "name is required")
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return stepError(StepReview, "email is required")
	}
	if !strings.Contains(email, "@") {
		return stepError(StepReview, "email is invalid")
	}
	return nil
}

func isTenDigits(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) == 10 && onlyDigits(s) == s
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DecodeStepRecord unmarshals raw into the record type owned by step.
func DecodeStepRecord(step Step, raw json.RawMessage) (StepRecord, error) {
	var (
		rec StepRecord
		err error
	)
	switch step {
	case StepPayment:
		var r PaymentPlanStep
		err = decodeOptional(raw, &r)
		rec = r
	case StepMethod:
		var r PaymentMethodStep
		err = decodeOptional(raw, &r)
		rec = r
	case StepMessage:
		var r MessageStep
		err = decodeOptional(raw, &r)
		rec = r
	case StepReview:
		var r ContactStep
		err = decodeOptional(raw, &r)
		rec = r
	default:
		return nil, fmt.Errorf("%w: step %q takes no input", ErrInvalidTransition, step)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s step: %w", step, err)
	}
	return rec, nil
}

func decodeOptional(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// Flow is the inquiry step machine. It only moves forward one step at a
// time; Change jumps back to a step already passed.
type Flow struct {
	Current Step              `json:"current"`
	Payment PaymentPlanStep   `json:"payment"`
	Method  PaymentMethodStep `json:"method"`
	Message MessageStep       `json:"message"`
	Contact ContactStep       `json:"contact"`
}

// NewFlow starts at the payment step with the full plan preselected.
func NewFlow() Flow {
	return Flow{
		Current: StepPayment,
		Payment: PaymentPlanStep{Plan: models.PlanFull},
	}
}

// Open is the entry gate: an event date and at least one guest are required.
func Open(r models.DateRange, g models.GuestCounts) (Flow, error) {
	if err := CanOpen(r, g); err != nil {
		return Flow{}, err
	}
	return NewFlow(), nil
}

// CanOpen reports why the "Request Quote" entry point is disabled, if it is.
func CanOpen(r models.DateRange, g models.GuestCounts) error {
	if r.From == nil {
		return ErrDateRequired
	}
	if g.Total() < 1 {
		return ErrGuestsRequired
	}
	return nil
}

// CanAdvance reports whether Next would accept rec at the current step.
func (f *Flow) CanAdvance(rec StepRecord) bool {
	return rec != nil && rec.Step() == f.Current && rec.Validate() == nil
}

// Next stores rec for the current step and moves to the following step.
// A nil rec re-submits what the step already holds, such as the preselected
// plan or data kept across a Change.
func (f *Flow) Next(rec StepRecord) error {
	if f.Current == StepConfirmation {
		return fmt.Errorf("%w: confirmation is terminal, use confirm or back", ErrInvalidTransition)
	}
	if rec == nil {
		if err := f.validateStored(); err != nil {
			return err
		}
		f.Current = stepOrder[f.Current.index()+1]
		return nil
	}
	if rec.Step() != f.Current {
		return fmt.Errorf("%w: got %s input at %s step", ErrInvalidTransition, rec.Step(), f.Current)
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	switch r := rec.(type) {
	case PaymentPlanStep:
		f.Payment = r
	case PaymentMethodStep:
		f.Method = r.sanitized()
	case MessageStep:
		f.Message = MessageStep{Message: strings.TrimSpace(r.Message)}
	case ContactStep:
		f.Contact = r
	}
	f.Current = stepOrder[f.Current.index()+1]
	return nil
}

// record returns the stored record of step.
func (f *Flow) record(step Step) StepRecord {
	switch step {
	case StepPayment:
		return f.Payment
	case StepMethod:
		return f.Method
	case StepMessage:
		return f.Message
	default:
		return f.Contact
	}
}

// validateStored checks the current step's kept record. A card method is
// kept as its last four digits only, so that is all it needs.
func (f *Flow) validateStored() error {
	if f.Current == StepMethod && f.Method.Method == models.MethodCard {
		if len(f.Method.CardLast4) == 4 {
			return nil
		}
		return stepError(StepMethod, "card number, expiry and CVV are required")
	}
	return f.record(f.Current).Validate()
}

// Change jumps back to a step already passed, keeping every step's data.
func (f *Flow) Change(target Step) error {
	if !target.Valid() || target == StepConfirmation {
		return fmt.Errorf("%w: cannot change to %q", ErrInvalidTransition, target)
	}
	if target.index() >= f.Current.index() {
		return fmt.Errorf("%w: %s has not been completed", ErrInvalidTransition, target)
	}
	f.Current = target
	return nil
}

// BackToEdit returns from confirmation to review.
func (f *Flow) BackToEdit() error {
	if f.Current != StepConfirmation {
		return fmt.Errorf("%w: back is only available at confirmation", ErrInvalidTransition)
	}
	f.Current = StepReview
	return nil
}

// Completed lists the steps already passed, in order.
func (f *Flow) Completed() []Step {
	return append([]Step(nil), stepOrder[:max(f.Current.index(), 0)]...)
}

// Reset clears every step and returns to payment.
func (f *Flow) Reset() {
	*f = NewFlow()
}

// InquiryDraft is the step data assembled at confirmation.
type InquiryDraft struct {
	Plan    models.PaymentPlan
	Method  PaymentMethodStep
	Message string
	Contact ContactStep
}

// Draft assembles the inquiry payload. It is only available at confirmation.
func (f *Flow) Draft() (InquiryDraft, error) {
	if f.Current != StepConfirmation {
		return InquiryDraft{}, fmt.Errorf("%w: inquiry can only be sent from confirmation", ErrInvalidTransition)
	}
	return InquiryDraft{
		Plan:    f.Payment.Plan,
		Method:  f.Method,
		Message: f.Message.Message,
		Contact: f.Contact,
	}, nil
}

// StepSummary is the collapsed view of a passed step.
type StepSummary struct {
	Step       Step   `json:"step"`
	Summary    string `json:"summary"`
	Changeable bool   `json:"changeable"`
}

// Summaries describes each passed step for the collapsed display.
func (f *Flow) Summaries() []StepSummary {
	out := []StepSummary{}
	for _, st := range f.Completed() {
		var text string
		switch st {
		case StepPayment:
			text = paymentPlanLabel(f.Payment.Plan)
		case StepMethod:
			text = methodSummary(f.Method)
		case StepMessage:
			text = f.Message.Message
			if text == "" {
				text = "No message"
			}
		case StepReview:
			text = fmt.Sprintf("%s <%s>", f.Contact.Name, f.Contact.Email)
		}
		out = append(out, StepSummary{Step: st, Summary: text, Changeable: true})
	}
	return out
}

func paymentPlanLabel(p models.PaymentPlan) string {
	switch p {
	case models.PlanPartial:
		return "Pay part now, rest later"
	case models.PlanInstallments:
		return "Pay in 3 installments"
	default:
		return "Pay in full"
	}
}

func methodSummary(m PaymentMethodStep) string {
	switch {
	case m.Method == models.MethodCard:
		return "Card ending " + m.CardLast4
	case m.Method == models.MethodMTNMoMo:
		return "MTN Mobile Money " + m.Phone
	case m.Method == models.MethodAirtelMoney:
		return "Airtel Money " + m.Phone
	default:
		return string(m.Method)
	}
}
