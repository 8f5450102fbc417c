package catalog

import (
	"cmp"
	"slices"

	"everafter/models"
)

// FacetCount is one option of a directory filter with its vendor count.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetMetadata lists the filter options available for a vendor set.
type FacetMetadata struct {
	Categories []FacetCount `json:"categories"`
	Locations  []FacetCount `json:"locations"`
	PriceTiers []FacetCount `json:"priceTiers"`
}

// Facets counts vendors per category, city and price tier. Categories and
// locations are alphabetical; price tiers follow tier rank.
func Facets(vendors []models.Vendor) FacetMetadata {
	categories := map[string]int{}
	cities := map[string]int{}
	tiers := map[models.PriceTier]int{}
	for _, v := range vendors {
		if v.Category != "" {
			categories[v.Category]++
		}
		if v.City != "" {
			cities[v.City]++
		}
		if v.PriceTier.Valid() {
			tiers[v.PriceTier]++
		}
	}

	meta := FacetMetadata{
		Categories: sortedCounts(categories),
		Locations:  sortedCounts(cities),
		PriceTiers: []FacetCount{},
	}
	for _, t := range []models.PriceTier{models.PriceBudget, models.PriceModerate, models.PricePremium, models.PriceLuxury} {
		if n := tiers[t]; n > 0 {
			meta.PriceTiers = append(meta.PriceTiers, FacetCount{Value: string(t), Count: n})
		}
	}
	return meta
}

func sortedCounts(m map[string]int) []FacetCount {
	out := make([]FacetCount, 0, len(m))
	for k, n := range m {
		out = append(out, FacetCount{Value: k, Count: n})
	}
	slices.SortFunc(out, func(a, b FacetCount) int { return cmp.Compare(a.Value, b.Value) })
	return out
}
