// File: booking/session_store.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"everafter/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "inquiry:session:"

// InquirySession is the per-visitor state of the inquiry sidebar.
type InquirySession struct {
	SessionID     string             `json:"sessionId"`
	VendorID      string             `json:"vendorId"`
	VendorSlug    string             `json:"vendorSlug"`
	VendorName    string             `json:"vendorName"`
	PriceTier     models.PriceTier   `json:"priceTier"`
	BookedDates   []string           `json:"bookedDates,omitempty"`
	Dates         models.DateRange   `json:"dates"`
	Guests        models.GuestCounts `json:"guests"`
	Flow          Flow               `json:"flow"`
	Quote         models.Quote       `json:"quote"`
	LastInquiryID string             `json:"lastInquiryId,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`

	// PendingInquiryID is reserved at the first confirm attempt and reused
	// by retries until the inquiry is stored or the session changes.
	PendingInquiryID string `json:"pendingInquiryId,omitempty"`
}

// SessionView is the API representation with derived step summaries.
type SessionView struct {
	*InquirySession
	Nights    int           `json:"nights"`
	Completed []StepSummary `json:"completed"`
}

// View adds the derived fields the sidebar renders.
func (s *InquirySession) View() SessionView {
	return SessionView{
		InquirySession: s,
		Nights:         Nights(s.Dates),
		Completed:      s.Flow.Summaries(),
	}
}

// RedisSessionStore keeps sessions as JSON with a sliding TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*InquirySession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load inquiry session: %w", err)
	}
	var session InquirySession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse inquiry session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *InquirySession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal inquiry session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store inquiry session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel inquiry session: %w", err)
	}
	return nil
}
