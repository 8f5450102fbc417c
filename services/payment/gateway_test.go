package payment

import (
	"context"
	"errors"
	"testing"

	"everafter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func TestDepositAmount(t *testing.T) {
	assert.Equal(t, 2_400_000.0, DepositAmount(models.PlanFull, 2_400_000))
	assert.Equal(t, 1_200_000.0, DepositAmount(models.PlanPartial, 2_400_000))
	assert.Equal(t, 800_000.0, DepositAmount(models.PlanInstallments, 2_400_000))
	assert.Equal(t, 334.0, DepositAmount(models.PlanInstallments, 1000))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1_500_000), MinorUnits(1_500_000, "UGX"))
	assert.Equal(t, int64(1999), MinorUnits(19.99, "usd"))
}

func TestChargeCardCreatesIntent(t *testing.T) {
	var got *stripe.PaymentIntentParams
	g := NewGatewayWithCreator(func(p *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		got = p
		return &stripe.PaymentIntent{ID: "pi_123", Status: stripe.PaymentIntentStatusRequiresPaymentMethod, ClientSecret: "secret"}, nil
	}, zap.NewNop())

	rec, err := g.Charge(context.Background(), ChargeRequest{
		InquiryID: "inq-1", IdempotencyKey: "inquiry-deposit-inq-1", Email: "a@b.co",
		Method: models.MethodCard, Plan: models.PlanPartial, Total: 3_000_000, Currency: "UGX",
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1_500_000), *got.Amount)
	assert.Equal(t, "ugx", *got.Currency)
	assert.Equal(t, "inq-1", got.Metadata["inquiry_id"])
	require.NotNil(t, got.IdempotencyKey)
	assert.Equal(t, "inquiry-deposit-inq-1", *got.IdempotencyKey)
	assert.Equal(t, "pi_123", rec.Reference)
	assert.Equal(t, StatusRequiresPayer, rec.Status)
	assert.Equal(t, "secret", rec.ClientSecret)
	assert.Equal(t, 1_500_000.0, rec.Amount)
}

func TestChargeMobileMoneyIsPending(t *testing.T) {
	called := false
	g := NewGatewayWithCreator(func(p *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		called = true
		return nil, nil
	}, zap.NewNop())

	rec, err := g.Charge(context.Background(), ChargeRequest{
		InquiryID: "inq-2", Method: models.MethodMTNMoMo, Phone: "0772123456",
		Plan: models.PlanFull, Total: 750_000, Currency: "UGX",
	})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, StatusPending, rec.Status)
	assert.Contains(t, rec.Reference, "manual_")
}

func TestChargeWithoutStripeKey(t *testing.T) {
	g := NewStripeGateway("", zap.NewNop())
	rec, err := g.Charge(context.Background(), ChargeRequest{Method: models.MethodCard, Total: 10, Currency: "UGX"})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, rec.Status)
}

func TestChargeErrors(t *testing.T) {
	g := NewGatewayWithCreator(func(p *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		return nil, errors.New("card declined")
	}, zap.NewNop())

	_, err := g.Charge(context.Background(), ChargeRequest{Method: models.MethodCard, Total: 10, Currency: "UGX"})
	assert.ErrorContains(t, err, "card declined")

	_, err = g.Charge(context.Background(), ChargeRequest{Method: models.MethodCard, Total: 0, Currency: "UGX"})
	assert.Error(t, err)
}
