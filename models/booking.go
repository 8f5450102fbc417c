package models

import "time"

// DateLayout is the wire format for calendar days.
const DateLayout = "2006-01-02"

// DateRange is a calendar selection. To, when set, is strictly after From.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// IsEmpty reports whether no day has been picked.
func (r DateRange) IsEmpty() bool {
	return r.From == nil && r.To == nil
}

// IsComplete reports whether both endpoints are set.
func (r DateRange) IsComplete() bool {
	return r.From != nil && r.To != nil
}

// GuestCounts tracks party size. Infants do not count towards capacity.
type GuestCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Total returns adults plus children.
func (g GuestCounts) Total() int {
	return g.Adults + g.Children
}

// Quote is the derived price display for a vendor and date range.
type Quote struct {
	Currency       string  `json:"currency"`
	BasePrice      float64 `json:"basePrice"`
	DailyRate      float64 `json:"dailyRate"`
	Nights         int     `json:"nights"`
	Total          float64 `json:"total"`
	AveragePrice   float64 `json:"averagePrice"`
	SavingsPercent float64 `json:"savingsPercent"`
	GoodDeal       bool    `json:"goodDeal"`
}
