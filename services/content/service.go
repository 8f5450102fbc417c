package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	contentRepo "everafter/database/repository/content"
	"everafter/models"

	"go.uber.org/zap"
)

const (
	SourcePublished = "published"
	SourceDraft     = "draft"
	SourceWorkspace = "workspace"
	SourceDefault   = "default"
)

// ContentService reads and edits page content.
type ContentService interface {
	// Public returns what unauthenticated visitors see: the published slot only.
	Public(ctx context.Context, slug string) (*models.ContentResponse, error)
	// Preview returns the draft, falling back to published, then defaults.
	Preview(ctx context.Context, slug string) (*models.ContentResponse, error)
	// Workspace returns the admin's unsaved edits, or Preview when there are none.
	Workspace(ctx context.Context, adminID, slug string) (*models.ContentResponse, error)
	Edit(ctx context.Context, adminID, slug string, section Section, patch json.RawMessage) (*models.ContentResponse, error)
	Discard(ctx context.Context, adminID, slug string) error
	SaveDraft(ctx context.Context, adminID, slug string) (*models.ContentResponse, error)
	Publish(ctx context.Context, adminID, slug string) (*models.ContentResponse, error)
}

type DefaultContentService struct {
	Repo       contentRepo.ContentRepository
	Workspaces WorkspaceStore
	Cache      PublishedCache
	Logger     *zap.Logger
}

func NewContentService(repo contentRepo.ContentRepository, ws WorkspaceStore, cache PublishedCache, logger *zap.Logger) *DefaultContentService {
	return &DefaultContentService{Repo: repo, Workspaces: ws, Cache: cache, Logger: logger}
}

func defaultResponse(slug string) *models.ContentResponse {
	return &models.ContentResponse{Slug: slug, Source: SourceDefault, Content: DefaultContent()}
}

func decodeState(payload string) (models.ContentState, error) {
	var state models.ContentState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return state, fmt.Errorf("stored content is not valid JSON: %w", err)
	}
	return state, nil
}

// load fetches the record, treating a missing one as nil.
func (s *DefaultContentService) load(ctx context.Context, slug string) (*models.PageContent, error) {
	page, err := s.Repo.Get(ctx, slug)
	if errors.Is(err, contentRepo.ErrContentNotFound) {
		return nil, nil
	}
	return page, err
}

func respond(page *models.PageContent, source, payload string) (*models.ContentResponse, error) {
	state, err := decodeState(payload)
	if err != nil {
		return nil, err
	}
	updated := page.UpdatedAt
	return &models.ContentResponse{
		Slug:        page.Slug,
		Source:      source,
		Content:     state,
		UpdatedAt:   &updated,
		PublishedAt: page.PublishedAt,
	}, nil
}

func (s *DefaultContentService) Public(ctx context.Context, slug string) (*models.ContentResponse, error) {
	if resp, ok := s.Cache.Get(ctx, slug); ok {
		return resp, nil
	}
	page, err := s.load(ctx, slug)
	if err != nil {
		return nil, err
	}
	if page == nil || !page.Published || page.PublishedContent == "" {
		return defaultResponse(slug), nil
	}
	resp, err := respond(page, SourcePublished, page.PublishedContent)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, resp)
	return resp, nil
}

func (s *DefaultContentService) Preview(ctx context.Context, slug string) (*models.ContentResponse, error) {
	page, err := s.load(ctx, slug)
	if err != nil {
		return nil, err
	}
	switch {
	case page == nil:
		return defaultResponse(slug), nil
	case page.DraftContent != "":
		return respond(page, SourceDraft, page.DraftContent)
	case page.PublishedContent != "":
		return respond(page, SourcePublished, page.PublishedContent)
	}
	return defaultResponse(slug), nil
}

func (s *DefaultContentService) Workspace(ctx context.Context, adminID, slug string) (*models.ContentResponse, error) {
	state, err := s.Workspaces.Get(ctx, adminID, slug)
	if errors.Is(err, ErrNoWorkspace) {
		return s.Preview(ctx, slug)
	}
	if err != nil {
		return nil, err
	}
	return &models.ContentResponse{Slug: slug, Source: SourceWorkspace, Content: *state}, nil
}

func (s *DefaultContentService) Edit(ctx context.Context, adminID, slug string, section Section, patch json.RawMessage) (*models.ContentResponse, error) {
	current, err := s.Workspace(ctx, adminID, slug)
	if err != nil {
		return nil, err
	}
	next, err := ApplySection(current.Content, section, patch)
	if err != nil {
		return nil, err
	}
	if err := s.Workspaces.Save(ctx, adminID, slug, next); err != nil {
		return nil, err
	}
	return &models.ContentResponse{Slug: slug, Source: SourceWorkspace, Content: next}, nil
}

func (s *DefaultContentService) Discard(ctx context.Context, adminID, slug string) error {
	return s.Workspaces.Delete(ctx, adminID, slug)
}

// payload serializes what the admin is looking at right now.
func (s *DefaultContentService) payload(ctx context.Context, adminID, slug string) (string, error) {
	current, err := s.Workspace(ctx, adminID, slug)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(current.Content)
	if err != nil {
		return "", fmt.Errorf("failed to serialize content: %w", err)
	}
	return string(data), nil
}

func (s *DefaultContentService) clearWorkspace(ctx context.Context, adminID, slug string) {
	if err := s.Workspaces.Delete(ctx, adminID, slug); err != nil {
		s.Logger.Warn("failed to clear content workspace",
			zap.String("admin", adminID),
			zap.String("slug", slug),
			zap.Error(err))
	}
}

func (s *DefaultContentService) SaveDraft(ctx context.Context, adminID, slug string) (*models.ContentResponse, error) {
	payload, err := s.payload(ctx, adminID, slug)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpsertDraft(ctx, slug, payload); err != nil {
		return nil, err
	}
	s.clearWorkspace(ctx, adminID, slug)
	s.Logger.Info("content draft saved", zap.String("slug", slug), zap.String("admin", adminID))
	return s.Preview(ctx, slug)
}

func (s *DefaultContentService) Publish(ctx context.Context, adminID, slug string) (*models.ContentResponse, error) {
	payload, err := s.payload(ctx, adminID, slug)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Publish(ctx, slug, payload); err != nil {
		return nil, err
	}
	if err := s.Cache.Invalidate(ctx, slug); err != nil {
		s.Logger.Warn("failed to invalidate published content cache", zap.String("slug", slug), zap.Error(err))
	}
	s.clearWorkspace(ctx, adminID, slug)
	s.Logger.Info("content published", zap.String("slug", slug), zap.String("admin", adminID))
	return s.Public(ctx, slug)
}
