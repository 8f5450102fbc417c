package content

import "everafter/models"

// HomeSlug is the page slug the homepage content is stored under.
const HomeSlug = "home"

// DefaultContent is served until anything has been saved.
func DefaultContent() models.ContentState {
	return models.ContentState{
		Hero: models.HeroContent{
			Title:    "Plan the day you will never forget",
			Subtitle: "Discover trusted wedding vendors across Uganda, from florists to venues.",
			CTAText:  "Find vendors",
			CTALink:  "/vendors",
		},
		About: models.AboutContent{
			Heading: "Why couples choose us",
			Body:    "Every vendor is reviewed by real couples so you can book with confidence.",
			Stats: []models.AboutStat{
				{Label: "Vendors", Value: "500+"},
				{Label: "Weddings planned", Value: "2,000+"},
				{Label: "Average rating", Value: "4.8"},
			},
		},
		Services: []models.ServiceCard{
			{ID: "discover", Title: "Discover", Description: "Browse photographers, venues, caterers and more.", Icon: "search"},
			{ID: "compare", Title: "Compare", Description: "See ratings, reviews and price tiers side by side.", Icon: "scale"},
			{ID: "book", Title: "Book", Description: "Send an inquiry and secure your date with a deposit.", Icon: "calendar"},
		},
		FAQ: []models.FAQItem{
			{ID: "faq-1", Question: "Is it free to send an inquiry?", Answer: "Yes. You only pay the deposit for the plan you choose."},
			{ID: "faq-2", Question: "Which payment methods are accepted?", Answer: "Card, MTN Mobile Money and Airtel Money."},
		},
	}
}
