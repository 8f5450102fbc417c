package catalog

import (
	"strings"

	"everafter/models"
)

// AllValue is the "no filter" option used by the directory dropdowns.
const AllValue = "all"

// Filters are the directory search criteria. Empty or "all" values are inactive.
type Filters struct {
	Query     string           `form:"q" json:"q,omitempty"`
	Category  string           `form:"category" json:"category,omitempty"`
	Location  string           `form:"location" json:"location,omitempty"`
	PriceTier models.PriceTier `form:"price" json:"price,omitempty"`
}

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, AllValue)
}

// Matches reports whether v satisfies every active criterion.
func (f Filters) Matches(v models.Vendor) bool {
	if active(f.Query) && !matchesQuery(v, strings.ToLower(strings.TrimSpace(f.Query))) {
		return false
	}
	if active(f.Category) && !strings.EqualFold(v.Category, strings.TrimSpace(f.Category)) {
		return false
	}
	if active(f.Location) && !strings.EqualFold(v.City, strings.TrimSpace(f.Location)) {
		return false
	}
	if active(string(f.PriceTier)) && v.PriceTier != f.PriceTier {
		return false
	}
	return true
}

// matchesQuery checks name, category, location and tags. q is lower-cased.
func matchesQuery(v models.Vendor, q string) bool {
	if strings.Contains(strings.ToLower(v.BusinessName), q) ||
		strings.Contains(strings.ToLower(v.Category), q) ||
		strings.Contains(strings.ToLower(v.City), q) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// FilterVendors returns the vendors matching f, preserving input order.
// The input slice is not modified.
func FilterVendors(vendors []models.Vendor, f Filters) []models.Vendor {
	out := make([]models.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if f.Matches(v) {
			out = append(out, v)
		}
	}
	return out
}
