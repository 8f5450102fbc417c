package booking

import (
	"context"
	"encoding/json"
	"time"

	"everafter/models"
)

// InquiryService runs vendor inquiry sessions from date selection to the
// submitted inquiry.
type InquiryService interface {
	StartSession(ctx context.Context, vendorSlug string, req StartRequest) (*InquirySession, error)
	GetSession(ctx context.Context, sessionID string) (*InquirySession, error)
	SelectDate(ctx context.Context, sessionID string, day time.Time) (*InquirySession, error)
	AdjustGuests(ctx context.Context, sessionID string, kind GuestKind, delta int) (*InquirySession, error)
	Advance(ctx context.Context, sessionID string, step Step, payload json.RawMessage) (*InquirySession, error)
	Change(ctx context.Context, sessionID string, target Step) (*InquirySession, error)
	BackToEdit(ctx context.Context, sessionID string) (*InquirySession, error)
	Confirm(ctx context.Context, sessionID string) (*models.Inquiry, *InquirySession, error)
	CancelSession(ctx context.Context, sessionID string) error
	QuoteFor(ctx context.Context, vendorSlug, from, to string) (models.Quote, error)
}

// VendorLookup is the read-only vendor source.
type VendorLookup interface {
	GetBySlug(ctx context.Context, slug string) (*models.Vendor, error)
}

// SessionStore keeps inquiry sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*InquirySession, error)
	Save(ctx context.Context, session *InquirySession) error
	Delete(ctx context.Context, sessionID string) error
}

// InquiryWriter persists submitted inquiries.
type InquiryWriter interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
}

// Dispatcher hands a stored inquiry to background delivery.
type Dispatcher interface {
	EnqueueDelivery(ctx context.Context, inquiryID string) error
}
