package payment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"everafter/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

const (
	StatusPending       = "pending"
	StatusRequiresPayer = "requires_payment_method"
)

// ChargeRequest is the deposit for one inquiry. Retries that carry the same
// IdempotencyKey get the first intent back from Stripe.
type ChargeRequest struct {
	InquiryID      string
	IdempotencyKey string
	Email          string
	Method         models.PaymentMethod
	Phone          string
	Plan           models.PaymentPlan
	Total          float64
	Currency       string
}

// Gateway takes the inquiry deposit.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*models.PaymentRecord, error)
}

// DepositAmount is the share of total due when the inquiry is sent:
// everything for full, half for partial, a third for installments.
func DepositAmount(plan models.PaymentPlan, total float64) float64 {
	switch plan {
	case models.PlanPartial:
		return math.Ceil(total / 2)
	case models.PlanInstallments:
		return math.Ceil(total / 3)
	default:
		return total
	}
}

// zeroDecimal lists currencies Stripe expects in whole units.
var zeroDecimal = map[string]bool{
	"ugx": true, "rwf": true, "jpy": true, "krw": true, "xaf": true, "xof": true, "vnd": true,
}

// MinorUnits converts an amount to the smallest currency unit.
func MinorUnits(amount float64, currency string) int64 {
	if zeroDecimal[strings.ToLower(currency)] {
		return int64(math.Round(amount))
	}
	return int64(math.Round(amount * 100))
}

// IntentCreator creates a Stripe PaymentIntent.
type IntentCreator func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// StripeGateway charges card deposits through Stripe PaymentIntents and
// records mobile-money deposits as pending for manual collection.
type StripeGateway struct {
	createIntent IntentCreator
	logger       *zap.Logger
}

// NewStripeGateway returns a gateway for key. With an empty key card
// deposits are recorded as pending like mobile money.
func NewStripeGateway(key string, logger *zap.Logger) *StripeGateway {
	g := &StripeGateway{logger: logger}
	if key != "" {
		sc := &client.API{}
		sc.Init(key, nil)
		g.createIntent = sc.PaymentIntents.New
	}
	return g
}

// NewGatewayWithCreator is used to plug in a custom PaymentIntent creator.
func NewGatewayWithCreator(create IntentCreator, logger *zap.Logger) *StripeGateway {
	return &StripeGateway{createIntent: create, logger: logger}
}

func (g *StripeGateway) Charge(ctx context.Context, req ChargeRequest) (*models.PaymentRecord, error) {
	if req.Total <= 0 {
		return nil, fmt.Errorf("invalid charge amount %.2f", req.Total)
	}
	amount := DepositAmount(req.Plan, req.Total)
	record := &models.PaymentRecord{
		Method:   req.Method,
		Amount:   amount,
		Currency: strings.ToUpper(req.Currency),
		Status:   StatusPending,
	}

	if req.Method != models.MethodCard || g.createIntent == nil {
		record.Reference = "manual_" + uuid.New().String()
		g.logger.Info("deposit recorded for manual collection",
			zap.String("inquiry", req.InquiryID),
			zap.String("method", string(req.Method)),
			zap.Float64("amount", amount))
		return record, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(MinorUnits(amount, req.Currency)),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Description: stripe.String("Wedding inquiry deposit " + req.InquiryID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	params.AddMetadata("inquiry_id", req.InquiryID)
	params.AddMetadata("payment_plan", string(req.Plan))

	intent, err := g.createIntent(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}

	record.Reference = intent.ID
	record.Status = string(intent.Status)
	record.ClientSecret = intent.ClientSecret
	g.logger.Info("card deposit intent created",
		zap.String("inquiry", req.InquiryID),
		zap.String("intent", intent.ID))
	return record, nil
}
