// File: content/store.go
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"everafter/models"

	"github.com/go-redis/redis/v8"
)

// ErrNoWorkspace means the admin has no unsaved edits for the page.
var ErrNoWorkspace = errors.New("no editing workspace")

// WorkspaceStore holds an admin's unsaved content tree for a page.
type WorkspaceStore interface {
	Get(ctx context.Context, adminID, slug string) (*models.ContentState, error)
	Save(ctx context.Context, adminID, slug string, state models.ContentState) error
	Delete(ctx context.Context, adminID, slug string) error
}

// PublishedCache keeps the public response for a page.
type PublishedCache interface {
	Get(ctx context.Context, slug string) (*models.ContentResponse, bool)
	Set(ctx context.Context, resp *models.ContentResponse)
	Invalidate(ctx context.Context, slug string) error
}

type RedisWorkspaceStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisWorkspaceStore(client *redis.Client, ttl time.Duration) *RedisWorkspaceStore {
	return &RedisWorkspaceStore{client: client, ttl: ttl}
}

func workspaceKey(adminID, slug string) string {
	return fmt.Sprintf("content:workspace:%s:%s", adminID, slug)
}

func (s *RedisWorkspaceStore) Get(ctx context.Context, adminID, slug string) (*models.ContentState, error) {
	data, err := s.client.Get(ctx, workspaceKey(adminID, slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoWorkspace
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	var state models.ContentState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse workspace: %w", err)
	}
	return &state, nil
}

func (s *RedisWorkspaceStore) Save(ctx context.Context, adminID, slug string, state models.ContentState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}
	if err := s.client.Set(ctx, workspaceKey(adminID, slug), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store workspace: %w", err)
	}
	return nil
}

func (s *RedisWorkspaceStore) Delete(ctx context.Context, adminID, slug string) error {
	if err := s.client.Del(ctx, workspaceKey(adminID, slug)).Err(); err != nil {
		return fmt.Errorf("failed to discard workspace: %w", err)
	}
	return nil
}

// RedisPublishedCache is a read-through cache; misses and errors fall back
// to the database.
type RedisPublishedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPublishedCache(client *redis.Client, ttl time.Duration) *RedisPublishedCache {
	return &RedisPublishedCache{client: client, ttl: ttl}
}

func publishedKey(slug string) string {
	return "content:published:" + slug
}

func (c *RedisPublishedCache) Get(ctx context.Context, slug string) (*models.ContentResponse, bool) {
	data, err := c.client.Get(ctx, publishedKey(slug)).Bytes()
	if err != nil {
		return nil, false
	}
	var resp models.ContentResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *RedisPublishedCache) Set(ctx context.Context, resp *models.ContentResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	c.client.Set(ctx, publishedKey(resp.Slug), data, c.ttl)
}

func (c *RedisPublishedCache) Invalidate(ctx context.Context, slug string) error {
	return c.client.Del(ctx, publishedKey(slug)).Err()
}
