package catalog

import (
	"cmp"
	"slices"

	"everafter/models"
)

// SortKey selects the directory ordering.
type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortRating      SortKey = "rating"
	SortReviews     SortKey = "reviews"
	SortPriceAsc    SortKey = "priceAsc"
	SortPriceDesc   SortKey = "priceDesc"
)

// ParseSortKey maps user input to a SortKey, defaulting to recommended.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortRating, SortReviews, SortPriceAsc, SortPriceDesc:
		return k
	default:
		return SortRecommended
	}
}

func byRatingThenReviews(a, b models.Vendor) int {
	if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
		return c
	}
	return cmp.Compare(b.ReviewCount, a.ReviewCount)
}

func featuredFirst(a, b models.Vendor) int {
	switch {
	case a.Featured == b.Featured:
		return 0
	case a.Featured:
		return -1
	default:
		return 1
	}
}

// SortVendors returns a stably sorted copy of vendors.
func SortVendors(vendors []models.Vendor, key SortKey) []models.Vendor {
	out := slices.Clone(vendors)

	var less func(a, b models.Vendor) int
	switch key {
	case SortRating:
		less = byRatingThenReviews
	case SortReviews:
		less = func(a, b models.Vendor) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) }
	case SortPriceAsc:
		less = func(a, b models.Vendor) int { return cmp.Compare(a.PriceTier.Rank(), b.PriceTier.Rank()) }
	case SortPriceDesc:
		less = func(a, b models.Vendor) int { return cmp.Compare(b.PriceTier.Rank(), a.PriceTier.Rank()) }
	default:
		less = func(a, b models.Vendor) int {
			if c := featuredFirst(a, b); c != 0 {
				return c
			}
			return byRatingThenReviews(a, b)
		}
	}

	slices.SortStableFunc(out, less)
	return out
}

// SearchResult is a filtered and ordered page of the directory.
type SearchResult struct {
	Vendors []models.Vendor `json:"vendors"`
	Total   int             `json:"total"`
	Sort    SortKey         `json:"sort"`
	// Empty drives the explicit "no results" state.
	Empty bool `json:"empty"`
}

// Search filters then sorts vendors. It never fails; an empty result is valid.
func Search(vendors []models.Vendor, f Filters, key SortKey) SearchResult {
	matched := SortVendors(FilterVendors(vendors, f), key)
	return SearchResult{
		Vendors: matched,
		Total:   len(matched),
		Sort:    key,
		Empty:   len(matched) == 0,
	}
}
