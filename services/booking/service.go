// File: booking/inquiry_service.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"everafter/models"
	"everafter/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartRequest opens the inquiry sidebar for a vendor.
type StartRequest struct {
	From   string              `json:"from"`
	To     string              `json:"to,omitempty"`
	Guests *models.GuestCounts `json:"guests,omitempty"`
}

// Policy holds the configurable booking rules.
type Policy struct {
	Currency       string
	MaxGuests      int
	MonthEchoGuard bool
}

// DefaultInquiryService implements InquiryService.
type DefaultInquiryService struct {
	Vendors    VendorLookup
	Sessions   SessionStore
	Inquiries  InquiryWriter
	Payments   payment.Gateway
	Dispatcher Dispatcher
	Policy     Policy
	Logger     *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultInquiryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultInquiryService) guestPolicy() GuestPolicy {
	return GuestPolicy{MaxGuests: s.Policy.MaxGuests}
}

func (s *DefaultInquiryService) selector(bookedDates []string) (*Selector, error) {
	return NewSelector(s.now(), bookedDates, s.Policy.MonthEchoGuard)
}

// StartSession validates the chosen dates and guests, opens the step flow
// and stores a new session.
func (s *DefaultInquiryService) StartSession(ctx context.Context, vendorSlug string, req StartRequest) (*InquirySession, error) {
	vendor, err := s.Vendors.GetBySlug(ctx, vendorSlug)
	if err != nil {
		return nil, err
	}

	sel, err := s.selector(vendor.BookedDates)
	if err != nil {
		return nil, fmt.Errorf("vendor %s: %w", vendor.Slug, err)
	}
	dates, err := sel.BuildRange(req.From, req.To)
	if err != nil {
		return nil, err
	}

	guests := DefaultGuests()
	if req.Guests != nil {
		guests = *req.Guests
	}
	if err := s.guestPolicy().Validate(guests); err != nil {
		return nil, err
	}

	flow, err := Open(dates, guests)
	if err != nil {
		return nil, err
	}
	quote, err := CalculateQuote(vendor.PriceTier, dates, s.Policy.Currency)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session := &InquirySession{
		SessionID:   uuid.New().String(),
		VendorID:    vendor.ID,
		VendorSlug:  vendor.Slug,
		VendorName:  vendor.BusinessName,
		PriceTier:   vendor.PriceTier,
		BookedDates: vendor.BookedDates,
		Dates:       dates,
		Guests:      guests,
		Flow:        flow,
		Quote:       quote,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Debug("inquiry session started",
		zap.String("session", session.SessionID),
		zap.String("vendor", vendor.Slug))
	return session, nil
}

func (s *DefaultInquiryService) GetSession(ctx context.Context, sessionID string) (*InquirySession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// update loads a session, applies fn, refreshes the quote and saves it.
// Nothing is saved when fn fails.
func (s *DefaultInquiryService) update(ctx context.Context, sessionID string, fn func(*InquirySession) error) (*InquirySession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	quote, err := CalculateQuote(session.PriceTier, session.Dates, s.Policy.Currency)
	if err != nil {
		return nil, err
	}
	session.Quote = quote
	session.PendingInquiryID = ""
	session.UpdatedAt = s.now()
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate applies one calendar click to the session's date range.
func (s *DefaultInquiryService) SelectDate(ctx context.Context, sessionID string, day time.Time) (*InquirySession, error) {
	return s.update(ctx, sessionID, func(session *InquirySession) error {
		sel, err := s.selector(session.BookedDates)
		if err != nil {
			return err
		}
		dates, err := sel.Select(session.Dates, day)
		if err != nil {
			return err
		}
		session.Dates = dates
		return nil
	})
}

func (s *DefaultInquiryService) AdjustGuests(ctx context.Context, sessionID string, kind GuestKind, delta int) (*InquirySession, error) {
	return s.update(ctx, sessionID, func(session *InquirySession) error {
		guests, err := s.guestPolicy().Adjust(session.Guests, kind, delta)
		if err != nil {
			return err
		}
		session.Guests = guests
		return nil
	})
}

// Advance submits the current step's fields and moves to the next step.
func (s *DefaultInquiryService) Advance(ctx context.Context, sessionID string, step Step, payload json.RawMessage) (*InquirySession, error) {
	return s.update(ctx, sessionID, func(session *InquirySession) error {
		if step != session.Flow.Current {
			return fmt.Errorf("%w: session is at %s, got %s", ErrInvalidTransition, session.Flow.Current, step)
		}
		var rec StepRecord
		if len(payload) > 0 && string(payload) != "null" {
			r, err := DecodeStepRecord(step, payload)
			if err != nil {
				return err
			}
			rec = r
		}
		return session.Flow.Next(rec)
	})
}

func (s *DefaultInquiryService) Change(ctx context.Context, sessionID string, target Step) (*InquirySession, error) {
	return s.update(ctx, sessionID, func(session *InquirySession) error {
		return session.Flow.Change(target)
	})
}

func (s *DefaultInquiryService) BackToEdit(ctx context.Context, sessionID string) (*InquirySession, error) {
	return s.update(ctx, sessionID, func(session *InquirySession) error {
		return session.Flow.BackToEdit()
	})
}

// Confirm assembles the inquiry, takes the deposit, stores the inquiry,
// queues delivery and resets the flow to the payment step. A retry after a
// failed insert reuses the inquiry ID, so the deposit is not taken twice.
func (s *DefaultInquiryService) Confirm(ctx context.Context, sessionID string) (*models.Inquiry, *InquirySession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	draft, err := session.Flow.Draft()
	if err != nil {
		return nil, nil, err
	}
	if err := CanOpen(session.Dates, session.Guests); err != nil {
		return nil, nil, err
	}
	quote, err := CalculateQuote(session.PriceTier, session.Dates, s.Policy.Currency)
	if err != nil {
		return nil, nil, err
	}

	if session.PendingInquiryID == "" {
		session.PendingInquiryID = uuid.New().String()
		if err := s.Sessions.Save(ctx, session); err != nil {
			return nil, nil, err
		}
	}

	inquiry := &models.Inquiry{
		ID:         session.PendingInquiryID,
		VendorID:   session.VendorID,
		VendorSlug: session.VendorSlug,
		VendorName: session.VendorName,
		Contact: models.ContactDetails{
			Name:      draft.Contact.Name,
			Email:     draft.Contact.Email,
			Phone:     draft.Contact.Phone,
			EventType: draft.Contact.EventType,
			Budget:    draft.Contact.Budget,
		},
		Message:       draft.Message,
		From:          FormatDay(session.Dates.From),
		To:            FormatDay(session.Dates.To),
		Guests:        session.Guests,
		PaymentPlan:   draft.Plan,
		PaymentMethod: draft.Method.Method,
		PaymentPhone:  draft.Method.Phone,
		Quote:         quote,
		CreatedAt:     s.now().UTC(),
	}

	receipt, err := s.Payments.Charge(ctx, payment.ChargeRequest{
		InquiryID:      inquiry.ID,
		IdempotencyKey: "inquiry-deposit-" + inquiry.ID,
		Email:          inquiry.Contact.Email,
		Method:         draft.Method.Method,
		Phone:          draft.Method.Phone,
		Plan:           draft.Plan,
		Total:          quote.Total,
		Currency:       s.Policy.Currency,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("deposit failed: %w", err)
	}
	inquiry.Payment = receipt

	if err := s.Inquiries.Create(ctx, inquiry); err != nil {
		return nil, nil, err
	}
	if err := s.Dispatcher.EnqueueDelivery(ctx, inquiry.ID); err != nil {
		s.Logger.Error("failed to queue inquiry delivery",
			zap.String("inquiry", inquiry.ID),
			zap.Error(err))
	}

	session.Flow.Reset()
	session.LastInquiryID = inquiry.ID
	session.PendingInquiryID = ""
	session.Quote = quote
	session.UpdatedAt = s.now()
	if err := s.Sessions.Save(ctx, session); err != nil {
		s.Logger.Warn("inquiry sent but session reset failed",
			zap.String("session", sessionID),
			zap.Error(err))
	}

	s.Logger.Info("inquiry submitted",
		zap.String("inquiry", inquiry.ID),
		zap.String("vendor", inquiry.VendorSlug),
		zap.String("plan", string(inquiry.PaymentPlan)))
	return inquiry, session, nil
}

func (s *DefaultInquiryService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// QuoteFor prices a vendor for an optional date range without a session.
func (s *DefaultInquiryService) QuoteFor(ctx context.Context, vendorSlug, from, to string) (models.Quote, error) {
	vendor, err := s.Vendors.GetBySlug(ctx, vendorSlug)
	if err != nil {
		return models.Quote{}, err
	}
	sel, err := s.selector(vendor.BookedDates)
	if err != nil {
		return models.Quote{}, err
	}
	dates, err := sel.BuildRange(from, to)
	if err != nil {
		return models.Quote{}, err
	}
	return CalculateQuote(vendor.PriceTier, dates, s.Policy.Currency)
}
