package models

import "time"

// PriceTier is the ordinal price band shown as "$" to "$$$$".
type PriceTier string

const (
	PriceBudget   PriceTier = "$"
	PriceModerate PriceTier = "$$"
	PricePremium  PriceTier = "$$$"
	PriceLuxury   PriceTier = "$$$$"
)

// Rank returns the ordinal position of the tier, 1 for "$" up to 4 for "$$$$".
// Unknown tiers rank 0.
func (p PriceTier) Rank() int {
	switch p {
	case PriceBudget:
		return 1
	case PriceModerate:
		return 2
	case PricePremium:
		return 3
	case PriceLuxury:
		return 4
	default:
		return 0
	}
}

// Valid reports whether p is one of the four known tiers.
func (p PriceTier) Valid() bool {
	return p.Rank() > 0
}

// GeoLocation is an optional map position for a vendor.
type GeoLocation struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type PortfolioItem struct {
	ID       string `bson:"id" json:"id"`
	ImageURL string `bson:"imageUrl" json:"imageUrl"`
	Caption  string `bson:"caption,omitempty" json:"caption,omitempty"`
	Category string `bson:"category,omitempty" json:"category,omitempty"`
}

type Review struct {
	ID         string    `bson:"id" json:"id"`
	VendorID   string    `bson:"vendorId" json:"vendorId"`
	AuthorName string    `bson:"authorName" json:"authorName"`
	Rating     float64   `bson:"rating" json:"rating"` // 1 to 5.
	Comment    string    `bson:"comment" json:"comment"`
	EventDate  string    `bson:"eventDate,omitempty" json:"eventDate,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// Vendor is a business listing in the marketplace. It is read-only for the
// booking flow.
type Vendor struct {
	ID            string          `bson:"id" json:"id"`
	Slug          string          `bson:"slug" json:"slug"`
	BusinessName  string          `bson:"businessName" json:"businessName"`
	Category      string          `bson:"category" json:"category"`
	Subcategories []string        `bson:"subcategories,omitempty" json:"subcategories,omitempty"`
	Tags          []string        `bson:"tags,omitempty" json:"tags,omitempty"`
	City          string          `bson:"city" json:"city"`
	Location      *GeoLocation    `bson:"location,omitempty" json:"location,omitempty"`
	PriceTier     PriceTier       `bson:"priceTier" json:"priceTier"`
	Rating        float64         `bson:"rating" json:"rating"`
	ReviewCount   int             `bson:"reviewCount" json:"reviewCount"`
	SaveCount     int             `bson:"saveCount" json:"saveCount"`
	Featured      bool            `bson:"featured" json:"featured"`
	Verified      bool            `bson:"verified" json:"verified"`
	CoverImage    string          `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Portfolio     []PortfolioItem `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	Description   string          `bson:"description,omitempty" json:"description,omitempty"`
	Bio           string          `bson:"bio,omitempty" json:"bio,omitempty"`
	// BookedDates holds days already taken, formatted YYYY-MM-DD.
	BookedDates []string `bson:"bookedDates,omitempty" json:"bookedDates,omitempty"`
}

// VendorBadges are display-only flags derived from vendor stats.
type VendorBadges struct {
	RareFind       bool `json:"rareFind"`
	GuestFavourite bool `json:"guestFavourite"`
}

// VendorDetail is the payload of the vendor detail page.
type VendorDetail struct {
	Vendor  Vendor       `json:"vendor"`
	Badges  VendorBadges `json:"badges"`
	Reviews []Review     `json:"reviews"`
}
