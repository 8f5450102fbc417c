package inquiryRepo

import (
	"context"
	"errors"

	"everafter/models"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

// InquiryRepository stores submitted inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetByID(ctx context.Context, id string) (*models.Inquiry, error)
	// List returns inquiries newest first, optionally restricted to one vendor.
	List(ctx context.Context, vendorSlug string, limit int) ([]models.Inquiry, error)
	MarkDelivered(ctx context.Context, id string) error
}
