package booking

import (
	"encoding/json"
	"testing"

	"everafter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFlow(t *testing.T) Flow {
	t.Helper()
	f, err := Open(rng("2027-01-01", "2027-01-04"), DefaultGuests())
	require.NoError(t, err)
	return f
}

func momo() PaymentMethodStep {
	return PaymentMethodStep{Method: models.MethodMTNMoMo, Phone: "0772123456"}
}

func TestOpenRequiresDateAndGuests(t *testing.T) {
	_, err := Open(rng("", ""), DefaultGuests())
	assert.ErrorIs(t, err, ErrDateRequired)

	_, err = Open(rng("2027-01-01", ""), models.GuestCounts{})
	assert.ErrorIs(t, err, ErrGuestsRequired)

	f, err := Open(rng("2027-01-01", ""), DefaultGuests())
	require.NoError(t, err)
	assert.Equal(t, StepPayment, f.Current)
	assert.Equal(t, models.PlanFull, f.Payment.Plan)
}

func TestNextBlockedUntilMethodValid(t *testing.T) {
	f := openFlow(t)
	require.NoError(t, f.Next(nil))
	require.Equal(t, StepMethod, f.Current)

	invalid := []PaymentMethodStep{
		{},
		{Method: models.MethodCard},
		{Method: models.MethodCard, Card: &models.CardDetails{Number: "4242424242424242", Expiry: "12/29"}},
		{Method: models.MethodAirtelMoney, Phone: "07721"},
		{Method: models.MethodMTNMoMo, Phone: "07721234ab"},
		{Method: "paypal"},
	}
	for _, rec := range invalid {
		assert.False(t, f.CanAdvance(rec))
		err := f.Next(rec)
		var stepErr *StepError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, StepMethod, stepErr.Step)
		assert.Equal(t, StepMethod, f.Current)
	}

	assert.Error(t, f.Next(nil), "empty stored method cannot advance")

	card := PaymentMethodStep{
		Method: models.MethodCard,
		Card:   &models.CardDetails{Number: "4242 4242 4242 4242", Expiry: "12/29", CVV: "123"},
	}
	assert.True(t, f.CanAdvance(card))
	require.NoError(t, f.Next(card))
	assert.Equal(t, StepMessage, f.Current)
	assert.Nil(t, f.Method.Card)
	assert.Equal(t, "4242", f.Method.CardLast4)
}

func TestNextRejectsWrongStepInput(t *testing.T) {
	f := openFlow(t)
	err := f.Next(MessageStep{Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StepPayment, f.Current)
}

func walkToConfirmation(t *testing.T, f *Flow) {
	t.Helper()
	require.NoError(t, f.Next(PaymentPlanStep{Plan: models.PlanPartial}))
	require.NoError(t, f.Next(momo()))
	require.NoError(t, f.Next(MessageStep{Message: "  Garden ceremony for 80  "}))
	require.NoError(t, f.Next(ContactStep{Name: "Amina", Email: "amina@example.com"}))
	require.Equal(t, StepConfirmation, f.Current)
}

func TestChangeKeepsOtherStepData(t *testing.T) {
	f := openFlow(t)
	walkToConfirmation(t, &f)

	require.NoError(t, f.Change(StepMethod))
	assert.Equal(t, StepMethod, f.Current)
	assert.Equal(t, models.PlanPartial, f.Payment.Plan)
	assert.Equal(t, "0772123456", f.Method.Phone)
	assert.Equal(t, "Garden ceremony for 80", f.Message.Message)
	assert.Equal(t, "Amina", f.Contact.Name)

	// Re-advancing with stored data walks forward again.
	require.NoError(t, f.Next(nil))
	require.NoError(t, f.Next(nil))
	require.NoError(t, f.Next(nil))
	assert.Equal(t, StepConfirmation, f.Current)
}

func TestChangePlanKeepsCardMethod(t *testing.T) {
	f := openFlow(t)
	require.NoError(t, f.Next(nil))
	require.NoError(t, f.Next(PaymentMethodStep{
		Method: models.MethodCard,
		Card:   &models.CardDetails{Number: "4242424242424242", Expiry: "12/29", CVV: "123"},
	}))
	require.NoError(t, f.Next(MessageStep{Message: "Reception only"}))
	require.NoError(t, f.Next(ContactStep{Name: "Amina", Email: "amina@example.com"}))

	require.NoError(t, f.Change(StepPayment))
	require.NoError(t, f.Next(PaymentPlanStep{Plan: models.PlanInstallments}))
	require.NoError(t, f.Next(nil), "stored card is re-used")
	assert.Equal(t, StepMessage, f.Current)
	assert.Equal(t, models.MethodCard, f.Method.Method)
	assert.Equal(t, "4242", f.Method.CardLast4)

	require.NoError(t, f.Next(nil))
	require.NoError(t, f.Next(nil))
	draft, err := f.Draft()
	require.NoError(t, err)
	assert.Equal(t, models.PlanInstallments, draft.Plan)
	assert.Equal(t, "4242", draft.Method.CardLast4)
}

func TestCardLast4FromInputIsNotEnough(t *testing.T) {
	f := openFlow(t)
	require.NoError(t, f.Next(nil))

	err := f.Next(PaymentMethodStep{Method: models.MethodCard, CardLast4: "4242"})
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepMethod, f.Current)
}

func TestChangeOnlyJumpsBack(t *testing.T) {
	f := openFlow(t)
	require.NoError(t, f.Next(nil))

	assert.ErrorIs(t, f.Change(StepMethod), ErrInvalidTransition)
	assert.ErrorIs(t, f.Change(StepReview), ErrInvalidTransition)
	assert.ErrorIs(t, f.Change(StepConfirmation), ErrInvalidTransition)
	assert.ErrorIs(t, f.Change("nope"), ErrInvalidTransition)
	require.NoError(t, f.Change(StepPayment))
}

func TestConfirmationTransitions(t *testing.T) {
	f := openFlow(t)
	assert.ErrorIs(t, f.BackToEdit(), ErrInvalidTransition)
	_, err := f.Draft()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	walkToConfirmation(t, &f)
	assert.ErrorIs(t, f.Next(nil), ErrInvalidTransition)

	draft, err := f.Draft()
	require.NoError(t, err)
	assert.Equal(t, models.PlanPartial, draft.Plan)
	assert.Equal(t, "amina@example.com", draft.Contact.Email)

	require.NoError(t, f.BackToEdit())
	assert.Equal(t, StepReview, f.Current)
	assert.Equal(t, "Amina", f.Contact.Name)

	require.NoError(t, f.Next(nil))
	f.Reset()
	assert.Equal(t, NewFlow(), f)
}

func TestContactValidation(t *testing.T) {
	assert.Error(t, ContactStep{Email: "a@b.co"}.Validate())
	assert.Error(t, ContactStep{Name: "A"}.Validate())
	assert.Error(t, ContactStep{Name: "A", Email: "not-an-email"}.Validate())
	assert.NoError(t, ContactStep{Name: "A", Email: "a@b.co"}.Validate())
}

func TestSummaries(t *testing.T) {
	f := openFlow(t)
	assert.Empty(t, f.Summaries())

	walkToConfirmation(t, &f)
	got := f.Summaries()
	require.Len(t, got, 4)
	assert.Equal(t, "Pay part now, rest later", got[0].Summary)
	assert.Equal(t, "MTN Mobile Money 0772123456", got[1].Summary)
	assert.Equal(t, "Amina <amina@example.com>", got[3].Summary)
	assert.Equal(t, []Step{StepPayment, StepMethod, StepMessage, StepReview}, f.Completed())
}

func TestDecodeStepRecord(t *testing.T) {
	rec, err := DecodeStepRecord(StepMethod, json.RawMessage(`{"method":"airtel_money","phone":"0701234567"}`))
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodStep{Method: models.MethodAirtelMoney, Phone: "0701234567"}, rec)

	_, err = DecodeStepRecord(StepConfirmation, json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = DecodeStepRecord(StepReview, json.RawMessage(`{"name":`))
	assert.Error(t, err)
}
