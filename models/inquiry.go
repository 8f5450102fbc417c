package models

import "time"

type PaymentPlan string

const (
	PlanFull         PaymentPlan = "full"
	PlanPartial      PaymentPlan = "partial"
	PlanInstallments PaymentPlan = "installments"
)

type PaymentMethod string

const (
	MethodCard        PaymentMethod = "card"
	MethodMTNMoMo     PaymentMethod = "mtn_momo"
	MethodAirtelMoney PaymentMethod = "airtel_money"
)

// IsMobileMoney reports whether the method is paid from a phone wallet.
func (m PaymentMethod) IsMobileMoney() bool {
	return m == MethodMTNMoMo || m == MethodAirtelMoney
}

// CardDetails are only used to validate the step and are never persisted.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

type ContactDetails struct {
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	EventType string `bson:"eventType,omitempty" json:"eventType,omitempty"`
	Budget    string `bson:"budget,omitempty" json:"budget,omitempty"`
}

// Inquiry is a couple's request for a quote, assembled at confirmation and
// submitted as one unit.
type Inquiry struct {
	ID            string         `bson:"id" json:"id"`
	VendorID      string         `bson:"vendorId" json:"vendorId"`
	VendorSlug    string         `bson:"vendorSlug" json:"vendorSlug"`
	VendorName    string         `bson:"vendorName" json:"vendorName"`
	Contact       ContactDetails `bson:"contact" json:"contact"`
	Message       string         `bson:"message,omitempty" json:"message,omitempty"`
	From          string         `bson:"from" json:"from"`
	To            string         `bson:"to,omitempty" json:"to,omitempty"`
	Guests        GuestCounts    `bson:"guests" json:"guests"`
	PaymentPlan   PaymentPlan    `bson:"paymentPlan" json:"paymentPlan"`
	PaymentMethod PaymentMethod  `bson:"paymentMethod" json:"paymentMethod"`
	PaymentPhone  string         `bson:"paymentPhone,omitempty" json:"paymentPhone,omitempty"`
	Quote         Quote          `bson:"quote" json:"quote"`
	Payment       *PaymentRecord `bson:"payment,omitempty" json:"payment,omitempty"`
	Delivered     bool           `bson:"delivered" json:"delivered"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	DeliveredAt   *time.Time     `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
}

// PaymentRecord is the outcome of charging the inquiry deposit.
type PaymentRecord struct {
	Reference    string        `bson:"reference" json:"reference"`
	Method       PaymentMethod `bson:"method" json:"method"`
	Amount       float64       `bson:"amount" json:"amount"`
	Currency     string        `bson:"currency" json:"currency"`
	Status       string        `bson:"status" json:"status"`
	ClientSecret string        `bson:"-" json:"clientSecret,omitempty"`
}
