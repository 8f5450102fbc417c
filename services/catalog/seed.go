package catalog

import "everafter/models"

// SeedVendors is the reference directory loaded into an empty store.
func SeedVendors() []models.Vendor {
	return []models.Vendor{
		{
			ID: "v-001", Slug: "golden-hour-studios", BusinessName: "Golden Hour Studios",
			Category: "Photography", Subcategories: []string{"Portraits", "Drone"},
			Tags: []string{"candid", "outdoor", "drone"}, City: "Kampala",
			Location:  &models.GeoLocation{Lat: 0.3136, Lng: 32.5811},
			PriceTier: models.PricePremium, Rating: 4.9, ReviewCount: 128, SaveCount: 342,
			Featured: true, Verified: true,
			Description: "Documentary wedding photography with a warm, golden palette.",
			Bio:         "Golden Hour Studios is a team of four photographers who have covered over 300 weddings across East Africa since 2015.",
			BookedDates: []string{"2026-12-12", "2026-12-19"},
		},
		{
			ID: "v-002", Slug: "lens-and-lace", BusinessName: "Lens & Lace",
			Category: "Photography", Tags: []string{"editorial", "film"}, City: "Entebbe",
			PriceTier: models.PriceModerate, Rating: 4.6, ReviewCount: 54, SaveCount: 87,
			Verified:    true,
			Description: "Editorial and film photography for intimate weddings.",
			Bio:         "Lens & Lace shoots on medium-format film and digital for couples who want timeless images.",
		},
		{
			ID: "v-003", Slug: "lakeside-gardens", BusinessName: "Lakeside Gardens",
			Category: "Venues", Subcategories: []string{"Garden", "Waterfront"},
			Tags: []string{"outdoor", "lake view", "500 guests"}, City: "Entebbe",
			Location:  &models.GeoLocation{Lat: 0.0512, Lng: 32.4637},
			PriceTier: models.PriceLuxury, Rating: 4.8, ReviewCount: 210, SaveCount: 512,
			Featured: true, Verified: true,
			Description: "Lakefront gardens hosting ceremonies and receptions of up to 500 guests.",
			Bio:         "Lakeside Gardens sits on three acres along Lake Victoria with a covered pavilion for rainy-season receptions.",
			BookedDates: []string{"2026-11-21", "2026-11-28", "2026-12-05"},
		},
		{
			ID: "v-004", Slug: "the-ivory-hall", BusinessName: "The Ivory Hall",
			Category: "Venues", Tags: []string{"ballroom", "indoor"}, City: "Kampala",
			PriceTier: models.PricePremium, Rating: 4.4, ReviewCount: 76, SaveCount: 140,
			Verified:    true,
			Description: "A modern ballroom in the heart of the city.",
			Bio:         "The Ivory Hall is a 350-seat ballroom with in-house lighting and sound.",
		},
		{
			ID: "v-005", Slug: "savanna-feasts", BusinessName: "Savanna Feasts",
			Category: "Catering", Tags: []string{"buffet", "local cuisine"}, City: "Kampala",
			PriceTier: models.PriceModerate, Rating: 4.7, ReviewCount: 96, SaveCount: 120,
			Featured: true, Verified: true,
			Description: "Buffet and plated menus celebrating Ugandan cuisine.",
			Bio:         "Savanna Feasts cooks everything on site and caters for 50 to 1,000 guests.",
		},
		{
			ID: "v-006", Slug: "table-for-two", BusinessName: "Table for Two",
			Category: "Catering", Tags: []string{"plated", "fusion"}, City: "Jinja",
			PriceTier: models.PricePremium, Rating: 4.5, ReviewCount: 31, SaveCount: 45,
			Description: "Plated fusion dinners for smaller celebrations.",
			Bio:         "Table for Two is a chef-led caterer focused on tasting menus.",
		},
		{
			ID: "v-007", Slug: "petal-and-stem", BusinessName: "Petal & Stem Studio",
			Category: "Florals", Subcategories: []string{"Bouquets", "Installations"},
			Tags: []string{"roses", "arches", "centrepieces"}, City: "Kampala",
			PriceTier: models.PriceModerate, Rating: 4.7, ReviewCount: 64, SaveCount: 150,
			Featured: true, Verified: true,
			Description: "Floral design from bridal bouquets to ceremony arches.",
			Bio:         "Petal & Stem grows most of its flowers on a farm outside the city.",
		},
		{
			ID: "v-008", Slug: "wild-bloom-florals", BusinessName: "Wild Bloom Florals",
			Category: "Florals", Tags: []string{"wildflowers", "boho"}, City: "Mbarara",
			PriceTier: models.PriceBudget, Rating: 4.9, ReviewCount: 22, SaveCount: 38,
			Description: "Loose, seasonal wildflower arrangements.",
			Bio:         "Wild Bloom Florals works with seasonal stems for relaxed, natural styling.",
		},
		{
			ID: "v-009", Slug: "rhythm-republic", BusinessName: "Rhythm Republic",
			Category: "Music", Tags: []string{"dj", "live band", "mc"}, City: "Kampala",
			PriceTier: models.PriceModerate, Rating: 4.3, ReviewCount: 88, SaveCount: 70,
			Description: "DJ sets, live bands and MC services.",
			Bio:         "Rhythm Republic has provided music for weddings and corporate events for ten years.",
		},
		{
			ID: "v-010", Slug: "ever-after-planning", BusinessName: "Ever After Planning Co.",
			Category: "Planning", Tags: []string{"full service", "coordination"}, City: "Kampala",
			PriceTier: models.PriceLuxury, Rating: 5.0, ReviewCount: 41, SaveCount: 260,
			Featured: true, Verified: true,
			Description: "Full-service planning and day-of coordination.",
			Bio:         "Ever After Planning Co. handles everything from budgeting to the last dance.",
		},
		{
			ID: "v-011", Slug: "sugar-and-spice-cakes", BusinessName: "Sugar & Spice Cakes",
			Category: "Cakes", Tags: []string{"tiered", "fondant", "tasting"}, City: "Entebbe",
			PriceTier: models.PriceBudget, Rating: 4.6, ReviewCount: 73, SaveCount: 95,
			Description: "Tiered wedding cakes and dessert tables.",
			Bio:         "Sugar & Spice bakes to order and offers free tastings for couples.",
		},
		{
			ID: "v-012", Slug: "kitenge-couture", BusinessName: "Kitenge Couture",
			Category: "Attire", Tags: []string{"gomesi", "kanzu", "bespoke"}, City: "Kampala",
			PriceTier: models.PricePremium, Rating: 4.8, ReviewCount: 19, SaveCount: 110,
			Description: "Bespoke traditional and modern wedding attire.",
			Bio:         "Kitenge Couture tailors gomesi, kanzu and gowns in its own workshop.",
		},
		{
			ID: "v-013", Slug: "motion-memories", BusinessName: "Motion Memories",
			Category: "Videography", Tags: []string{"cinematic", "drone", "same-day edit"}, City: "Jinja",
			PriceTier: models.PricePremium, Rating: 4.5, ReviewCount: 37, SaveCount: 60,
			Verified:    true,
			Description: "Cinematic wedding films and same-day edits.",
			Bio:         "Motion Memories produces short films and full ceremony coverage.",
		},
	}
}
