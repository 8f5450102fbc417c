package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	contentRepo "everafter/database/repository/content"
	"everafter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRepo struct {
	pages map[string]*models.PageContent
	err   error
}

func (m *memoryRepo) Get(_ context.Context, slug string) (*models.PageContent, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.pages[slug]
	if !ok {
		return nil, contentRepo.ErrContentNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memoryRepo) page(slug string) *models.PageContent {
	p, ok := m.pages[slug]
	if !ok {
		p = &models.PageContent{Slug: slug}
		m.pages[slug] = p
	}
	return p
}

func (m *memoryRepo) UpsertDraft(_ context.Context, slug, payload string) error {
	p := m.page(slug)
	p.DraftContent = payload
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memoryRepo) Publish(_ context.Context, slug, payload string) error {
	p := m.page(slug)
	now := time.Now().UTC()
	p.DraftContent = payload
	p.PublishedContent = payload
	p.Published = true
	p.UpdatedAt = now
	p.PublishedAt = &now
	return nil
}

type memoryWorkspaces map[string]models.ContentState

func (m memoryWorkspaces) Get(_ context.Context, adminID, slug string) (*models.ContentState, error) {
	s, ok := m[workspaceKey(adminID, slug)]
	if !ok {
		return nil, ErrNoWorkspace
	}
	return &s, nil
}

func (m memoryWorkspaces) Save(_ context.Context, adminID, slug string, state models.ContentState) error {
	m[workspaceKey(adminID, slug)] = state
	return nil
}

func (m memoryWorkspaces) Delete(_ context.Context, adminID, slug string) error {
	delete(m, workspaceKey(adminID, slug))
	return nil
}

type memoryCache struct {
	entries     map[string]*models.ContentResponse
	invalidated []string
}

func (c *memoryCache) Get(_ context.Context, slug string) (*models.ContentResponse, bool) {
	r, ok := c.entries[slug]
	return r, ok
}

func (c *memoryCache) Set(_ context.Context, resp *models.ContentResponse) {
	c.entries[resp.Slug] = resp
}

func (c *memoryCache) Invalidate(_ context.Context, slug string) error {
	delete(c.entries, slug)
	c.invalidated = append(c.invalidated, slug)
	return nil
}

func newTestService() (*DefaultContentService, *memoryRepo, memoryWorkspaces, *memoryCache) {
	repo := &memoryRepo{pages: map[string]*models.PageContent{}}
	ws := memoryWorkspaces{}
	cache := &memoryCache{entries: map[string]*models.ContentResponse{}}
	return NewContentService(repo, ws, cache, zap.NewNop()), repo, ws, cache
}

func TestPublicServesDefaultsUntilPublished(t *testing.T) {
	svc, _, _, cache := newTestService()
	ctx := context.Background()

	resp, err := svc.Public(ctx, HomeSlug)
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, resp.Source)
	assert.Equal(t, DefaultContent(), resp.Content)
	assert.Empty(t, cache.entries, "defaults are not cached")

	_, err = svc.Edit(ctx, "admin-1", HomeSlug, SectionHero, json.RawMessage(`{"title":"Draft title"}`))
	require.NoError(t, err)
	_, err = svc.SaveDraft(ctx, "admin-1", HomeSlug)
	require.NoError(t, err)

	resp, err = svc.Public(ctx, HomeSlug)
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, resp.Source, "drafts never leak to the public page")
}

func TestDraftPublishLifecycle(t *testing.T) {
	svc, repo, ws, cache := newTestService()
	ctx := context.Background()

	resp, err := svc.Edit(ctx, "admin-1", HomeSlug, SectionHero, json.RawMessage(`{"title":"Forever starts here"}`))
	require.NoError(t, err)
	assert.Equal(t, SourceWorkspace, resp.Source)
	assert.Equal(t, "Forever starts here", resp.Content.Hero.Title)
	assert.Equal(t, DefaultContent().Hero.Subtitle, resp.Content.Hero.Subtitle)

	resp, err = svc.SaveDraft(ctx, "admin-1", HomeSlug)
	require.NoError(t, err)
	assert.Equal(t, SourceDraft, resp.Source)
	assert.Empty(t, ws)
	assert.False(t, repo.pages[HomeSlug].Published)

	resp, err = svc.Publish(ctx, "admin-1", HomeSlug)
	require.NoError(t, err)
	assert.Equal(t, SourcePublished, resp.Source)
	assert.Equal(t, "Forever starts here", resp.Content.Hero.Title)
	assert.NotNil(t, resp.PublishedAt)

	page := repo.pages[HomeSlug]
	assert.True(t, page.Published)
	assert.Equal(t, page.DraftContent, page.PublishedContent)
	assert.Equal(t, []string{HomeSlug}, cache.invalidated)
	assert.Contains(t, cache.entries, HomeSlug)

	// A later draft leaves the public page on the published copy.
	_, err = svc.Edit(ctx, "admin-1", HomeSlug, SectionFAQ, json.RawMessage(`[]`))
	require.NoError(t, err)
	_, err = svc.SaveDraft(ctx, "admin-1", HomeSlug)
	require.NoError(t, err)

	pub, err := svc.Public(ctx, HomeSlug)
	require.NoError(t, err)
	assert.Len(t, pub.Content.FAQ, 2)

	preview, err := svc.Preview(ctx, HomeSlug)
	require.NoError(t, err)
	assert.Equal(t, SourceDraft, preview.Source)
	assert.Empty(t, preview.Content.FAQ)
}

func TestPreviewFallsBackToPublished(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.pages[HomeSlug] = &models.PageContent{
		Slug:             HomeSlug,
		PublishedContent: `{"hero":{"title":"Live"}}`,
		Published:        true,
	}
	resp, err := svc.Preview(ctx, HomeSlug)
	require.NoError(t, err)
	assert.Equal(t, SourcePublished, resp.Source)
	assert.Equal(t, "Live", resp.Content.Hero.Title)
}

func TestWorkspacesArePerAdmin(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Edit(ctx, "admin-1", HomeSlug, SectionHero, json.RawMessage(`{"title":"Mine"}`))
	require.NoError(t, err)

	other, err := svc.Workspace(ctx, "admin-2", HomeSlug)
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, other.Source)

	require.NoError(t, svc.Discard(ctx, "admin-1", HomeSlug))
	mine, err := svc.Workspace(ctx, "admin-1", HomeSlug)
	require.NoError(t, err)
	assert.Equal(t, DefaultContent().Hero.Title, mine.Content.Hero.Title)
}

func TestCorruptStoredContent(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.pages[HomeSlug] = &models.PageContent{Slug: HomeSlug, DraftContent: "{", Published: false}

	_, err := svc.Preview(context.Background(), HomeSlug)
	assert.Error(t, err)
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	svc, repo, _, _ := newTestService()
	repo.err = errors.New("mongo unavailable")

	_, err := svc.Public(context.Background(), HomeSlug)
	assert.ErrorIs(t, err, repo.err)
}
