package catalog

import (
	"context"
	"errors"
	"testing"

	vendorRepo "everafter/database/repository/vendor"
	"everafter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func slugs(vendors []models.Vendor) []string {
	out := make([]string, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, v.Slug)
	}
	return out
}

func TestFilterFloralsRecommendedOrder(t *testing.T) {
	vendors := SeedVendors()
	require.Len(t, vendors, 13)

	res := Search(vendors, Filters{Category: "Florals"}, SortRecommended)

	assert.Equal(t, []string{"petal-and-stem", "wild-bloom-florals"}, slugs(res.Vendors))
	assert.Equal(t, 2, res.Total)
	assert.False(t, res.Empty)
	assert.True(t, res.Vendors[0].Featured)
	assert.False(t, res.Vendors[1].Featured)
}

func TestFilterResultIsSubsetSatisfyingPredicates(t *testing.T) {
	vendors := SeedVendors()
	cases := []Filters{
		{},
		{Query: "drone"},
		{Query: "KAMPALA"},
		{Category: "venues", Location: "Entebbe"},
		{PriceTier: models.PricePremium},
		{Query: "photo", PriceTier: models.PriceModerate},
		{Category: AllValue, Location: AllValue, PriceTier: AllValue},
		{Category: "Spaceships"},
	}

	for _, f := range cases {
		got := FilterVendors(vendors, f)
		assert.LessOrEqual(t, len(got), len(vendors))
		for _, v := range got {
			assert.True(t, f.Matches(v), "vendor %s should satisfy %+v", v.Slug, f)
			assert.Contains(t, slugs(vendors), v.Slug)
		}
	}
}

func TestFilterQueryFields(t *testing.T) {
	vendors := SeedVendors()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"by name", "ivory", []string{"the-ivory-hall"}},
		{"by category", "videography", []string{"motion-memories"}},
		{"by city", "mbarara", []string{"wild-bloom-florals"}},
		{"by tag", "same-day", []string{"motion-memories"}},
		{"by tag across vendors", "drone", []string{"golden-hour-studios", "motion-memories"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterVendors(vendors, Filters{Query: tt.query})
			assert.ElementsMatch(t, tt.want, slugs(got))
		})
	}
}

func TestSearchEmptyResult(t *testing.T) {
	res := Search(SeedVendors(), Filters{Query: "no such vendor"}, SortRating)
	assert.True(t, res.Empty)
	assert.Equal(t, 0, res.Total)
	assert.NotNil(t, res.Vendors)

	res = Search(nil, Filters{}, SortRecommended)
	assert.True(t, res.Empty)
}

func TestSortRatingTieBreaksOnReviews(t *testing.T) {
	vendors := []models.Vendor{
		{Slug: "a", Rating: 4.5, ReviewCount: 10},
		{Slug: "b", Rating: 4.9, ReviewCount: 5},
		{Slug: "c", Rating: 4.5, ReviewCount: 40},
		{Slug: "d", Rating: 4.5, ReviewCount: 10},
	}
	got := SortVendors(vendors, SortRating)
	assert.Equal(t, []string{"b", "c", "a", "d"}, slugs(got))
	// input untouched
	assert.Equal(t, []string{"a", "b", "c", "d"}, slugs(vendors))
}

func TestSortKeys(t *testing.T) {
	vendors := []models.Vendor{
		{Slug: "lux", PriceTier: models.PriceLuxury, ReviewCount: 3, Rating: 4.0},
		{Slug: "budget", PriceTier: models.PriceBudget, ReviewCount: 9, Rating: 4.2},
		{Slug: "mid", PriceTier: models.PriceModerate, ReviewCount: 1, Rating: 4.9, Featured: true},
		{Slug: "mid2", PriceTier: models.PriceModerate, ReviewCount: 5, Rating: 3.0},
	}

	assert.Equal(t, []string{"budget", "mid2", "lux", "mid"}, slugs(SortVendors(vendors, SortReviews)))
	assert.Equal(t, []string{"budget", "mid", "mid2", "lux"}, slugs(SortVendors(vendors, SortPriceAsc)))
	assert.Equal(t, []string{"lux", "mid", "mid2", "budget"}, slugs(SortVendors(vendors, SortPriceDesc)))
	assert.Equal(t, []string{"mid", "budget", "lux", "mid2"}, slugs(SortVendors(vendors, SortRecommended)))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("priceAsc"))
	assert.Equal(t, SortRecommended, ParseSortKey(""))
	assert.Equal(t, SortRecommended, ParseSortKey("cheapest"))
}

func TestBadges(t *testing.T) {
	assert.Equal(t, models.VendorBadges{RareFind: true, GuestFavourite: true},
		Badges(models.Vendor{SaveCount: 100, Rating: 4.8, ReviewCount: 20}))
	assert.Equal(t, models.VendorBadges{},
		Badges(models.Vendor{SaveCount: 99, Rating: 4.9, ReviewCount: 19}))
}

func TestFacets(t *testing.T) {
	meta := Facets(SeedVendors())

	assert.Contains(t, meta.Categories, FacetCount{Value: "Florals", Count: 2})
	assert.Equal(t, "Attire", meta.Categories[0].Value)
	assert.Contains(t, meta.Locations, FacetCount{Value: "Kampala", Count: 7})
	require.Len(t, meta.PriceTiers, 4)
	assert.Equal(t, "$", meta.PriceTiers[0].Value)
	assert.Equal(t, "$$$$", meta.PriceTiers[3].Value)
}

type fakeVendorRepo struct {
	vendors   []models.Vendor
	reviewErr error
	inserted  int
}

func (f *fakeVendorRepo) GetAll(ctx context.Context) ([]models.Vendor, error) {
	return f.vendors, nil
}

func (f *fakeVendorRepo) GetBySlug(ctx context.Context, slug string) (*models.Vendor, error) {
	for _, v := range f.vendors {
		if v.Slug == slug {
			v := v
			return &v, nil
		}
	}
	return nil, vendorRepo.ErrVendorNotFound
}

func (f *fakeVendorRepo) GetReviews(ctx context.Context, vendorID string, limit int) ([]models.Review, error) {
	if f.reviewErr != nil {
		return nil, f.reviewErr
	}
	return []models.Review{{ID: "r1", VendorID: vendorID, Rating: 5}}, nil
}

func (f *fakeVendorRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.vendors)), nil
}

func (f *fakeVendorRepo) InsertMany(ctx context.Context, vendors []models.Vendor) error {
	f.vendors = append(f.vendors, vendors...)
	f.inserted += len(vendors)
	return nil
}

func TestServiceSeedAndDetail(t *testing.T) {
	repo := &fakeVendorRepo{}
	svc := NewCatalogService(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.EnsureSeeded(ctx))
	require.NoError(t, svc.EnsureSeeded(ctx))
	assert.Equal(t, 13, repo.inserted)

	detail, err := svc.GetDetail(ctx, "lakeside-gardens")
	require.NoError(t, err)
	assert.True(t, detail.Badges.RareFind)
	assert.True(t, detail.Badges.GuestFavourite)
	assert.Len(t, detail.Reviews, 1)

	repo.reviewErr = errors.New("boom")
	detail, err = svc.GetDetail(ctx, "lakeside-gardens")
	require.NoError(t, err)
	assert.Empty(t, detail.Reviews)

	_, err = svc.GetDetail(ctx, "missing")
	assert.ErrorIs(t, err, vendorRepo.ErrVendorNotFound)

	res, err := svc.Search(ctx, Filters{Category: "Florals"}, SortRecommended)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}
