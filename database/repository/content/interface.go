package contentRepo

import (
	"context"
	"errors"

	"everafter/models"
)

// ErrContentNotFound is returned when no record exists for a slug.
var ErrContentNotFound = errors.New("page content not found")

// ContentRepository persists draft/published page content keyed by slug.
// Upsert-by-slug is the only write path; the last writer wins.
type ContentRepository interface {
	Get(ctx context.Context, slug string) (*models.PageContent, error)
	// UpsertDraft stores payload in the draft slot only.
	UpsertDraft(ctx context.Context, slug, payload string) error
	// Publish stores payload in both slots and marks the record published.
	Publish(ctx context.Context, slug, payload string) error
}
