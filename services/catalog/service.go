package catalog

import (
	"context"
	"fmt"

	vendorRepo "everafter/database/repository/vendor"
	"everafter/models"

	"go.uber.org/zap"
)

const detailReviewLimit = 10

// CatalogService exposes the vendor directory.
type CatalogService interface {
	Search(ctx context.Context, f Filters, key SortKey) (SearchResult, error)
	Facets(ctx context.Context) (FacetMetadata, error)
	GetBySlug(ctx context.Context, slug string) (*models.Vendor, error)
	GetDetail(ctx context.Context, slug string) (*models.VendorDetail, error)
}

// DefaultCatalogService implements CatalogService over a VendorRepository.
type DefaultCatalogService struct {
	Repo   vendorRepo.VendorRepository
	Logger *zap.Logger
}

func NewCatalogService(repo vendorRepo.VendorRepository, logger *zap.Logger) *DefaultCatalogService {
	return &DefaultCatalogService{Repo: repo, Logger: logger}
}

func (s *DefaultCatalogService) Search(ctx context.Context, f Filters, key SortKey) (SearchResult, error) {
	vendors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("catalog search: %w", err)
	}
	return Search(vendors, f, key), nil
}

func (s *DefaultCatalogService) Facets(ctx context.Context) (FacetMetadata, error) {
	vendors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return FacetMetadata{}, fmt.Errorf("catalog facets: %w", err)
	}
	return Facets(vendors), nil
}

func (s *DefaultCatalogService) GetBySlug(ctx context.Context, slug string) (*models.Vendor, error) {
	return s.Repo.GetBySlug(ctx, slug)
}

func (s *DefaultCatalogService) GetDetail(ctx context.Context, slug string) (*models.VendorDetail, error) {
	vendor, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	reviews, err := s.Repo.GetReviews(ctx, vendor.ID, detailReviewLimit)
	if err != nil {
		// Reviews are optional on the detail page.
		s.Logger.Warn("failed to load vendor reviews", zap.String("vendor", vendor.Slug), zap.Error(err))
		reviews = []models.Review{}
	}
	return &models.VendorDetail{
		Vendor:  *vendor,
		Badges:  Badges(*vendor),
		Reviews: reviews,
	}, nil
}

// EnsureSeeded loads SeedVendors into an empty repository.
func (s *DefaultCatalogService) EnsureSeeded(ctx context.Context) error {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("catalog seed: %w", err)
	}
	if n > 0 {
		return nil
	}
	seed := SeedVendors()
	if err := s.Repo.InsertMany(ctx, seed); err != nil {
		return fmt.Errorf("catalog seed: %w", err)
	}
	s.Logger.Info("seeded vendor directory", zap.Int("vendors", len(seed)))
	return nil
}
