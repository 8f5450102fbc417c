package catalog

import "everafter/models"

const (
	rareFindMinSaves         = 100
	guestFavouriteMinRating  = 4.8
	guestFavouriteMinReviews = 20
)

// Badges derives the display-only badges from vendor stats.
func Badges(v models.Vendor) models.VendorBadges {
	return models.VendorBadges{
		RareFind:       v.SaveCount >= rareFindMinSaves,
		GuestFavourite: v.Rating >= guestFavouriteMinRating && v.ReviewCount >= guestFavouriteMinReviews,
	}
}
