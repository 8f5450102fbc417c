package booking

import (
	"fmt"

	"everafter/models"
)

const (
	dailyRateFactor   = 0.3
	averagePriceRatio = 1.15
	goodDealThreshold = 5.0
)

var basePrices = map[models.PriceTier]float64{
	models.PriceBudget:   750_000,
	models.PriceModerate: 1_500_000,
	models.PricePremium:  3_000_000,
	models.PriceLuxury:   5_000_000,
}

// BasePrice returns the fixed amount for a price tier.
func BasePrice(tier models.PriceTier) (float64, error) {
	p, ok := basePrices[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPriceTier, tier)
	}
	return p, nil
}

// TotalPrice is the base price plus a daily rate for every night after the
// first when a full range is selected.
func TotalPrice(base float64, r models.DateRange) float64 {
	nights := Nights(r)
	if nights < 1 {
		return base
	}
	return base + dailyRateFactor*base*float64(nights-1)
}

// Deal compares current against the market average (current × 1.15).
func Deal(current float64) (average, savingsPercent float64, good bool) {
	average = current * averagePriceRatio
	if average == 0 {
		return 0, 0, false
	}
	savingsPercent = (average - current) / average * 100
	return average, savingsPercent, savingsPercent >= goodDealThreshold
}

// CalculateQuote derives every displayed price for a tier and date range.
func CalculateQuote(tier models.PriceTier, r models.DateRange, currency string) (models.Quote, error) {
	base, err := BasePrice(tier)
	if err != nil {
		return models.Quote{}, err
	}
	total := TotalPrice(base, r)
	average, savings, good := Deal(total)
	return models.Quote{
		Currency:       currency,
		BasePrice:      base,
		DailyRate:      dailyRateFactor * base,
		Nights:         Nights(r),
		Total:          total,
		AveragePrice:   average,
		SavingsPercent: savings,
		GoodDeal:       good,
	}, nil
}
