package booking

import (
	"fmt"
	"math"
	"time"

	"everafter/models"
)

const day = 24 * time.Hour

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDay renders a day as YYYY-MM-DD, or "" for nil.
func FormatDay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(models.DateLayout)
}

// Selector applies calendar clicks to a DateRange.
//
//	empty ──click──▶ start-selected ──later click──▶ range-selected
//	range-selected ──click──▶ start-selected
type Selector struct {
	Today  time.Time
	Booked map[time.Time]struct{}
	// MonthEchoGuard treats a second click on the same day-of-month in another
	// month, 28 to 31 days later, as an accidental double click and keeps
	// only the start date. Off unless explicitly enabled.
	MonthEchoGuard bool
}

// NewSelector builds a selector for a vendor's booked dates. Unparseable
// booked dates are rejected.
func NewSelector(today time.Time, booked []string, monthEchoGuard bool) (*Selector, error) {
	s := &Selector{
		Today:          Day(today),
		Booked:         make(map[time.Time]struct{}, len(booked)),
		MonthEchoGuard: monthEchoGuard,
	}
	for _, b := range booked {
		d, err := ParseDay(b)
		if err != nil {
			return nil, fmt.Errorf("booked dates: %w", err)
		}
		s.Booked[d] = struct{}{}
	}
	return s, nil
}

// IsBooked reports whether the vendor is unavailable on d.
func (s *Selector) IsBooked(d time.Time) bool {
	_, ok := s.Booked[Day(d)]
	return ok
}

// IsDisabled is the calendar predicate: past days, booked days, and, while
// picking the end date, days before the chosen start.
func (s *Selector) IsDisabled(r models.DateRange, d time.Time) bool {
	d = Day(d)
	if d.Before(s.Today) || s.IsBooked(d) {
		return true
	}
	return r.From != nil && r.To == nil && d.Before(*r.From)
}

// Select applies a click on d to r and returns the new range.
func (s *Selector) Select(r models.DateRange, d time.Time) (models.DateRange, error) {
	d = Day(d)
	if d.Before(s.Today) {
		return r, ErrDateInPast
	}
	if s.IsBooked(d) {
		return r, ErrDateBooked
	}

	if r.From == nil || r.To != nil {
		return models.DateRange{From: &d}, nil
	}

	from := Day(*r.From)
	switch {
	case d.Equal(from):
		return models.DateRange{From: &from}, nil
	case s.MonthEchoGuard && isMonthEcho(from, d):
		return models.DateRange{From: &from}, nil
	}

	start, end := from, d
	if end.Before(start) {
		start, end = end, start
	}
	for cur := start.Add(day); cur.Before(end) || cur.Equal(end); cur = cur.Add(day) {
		if s.IsBooked(cur) {
			return r, ErrRangeUnavailable
		}
	}
	return models.DateRange{From: &start, To: &end}, nil
}

// isMonthEcho matches the same day-of-month in a different month 28 to 31 days apart.
func isMonthEcho(a, b time.Time) bool {
	if a.Day() != b.Day() || a.Month() == b.Month() {
		return false
	}
	gap := int(math.Abs(b.Sub(a).Hours() / 24))
	return gap >= 28 && gap <= 31
}

// Nights returns ceil((to - from) / 1 day), or 0 when either end is unset.
func Nights(r models.DateRange) int {
	if !r.IsComplete() {
		return 0
	}
	n := int(math.Ceil(r.To.Sub(*r.From).Hours() / 24))
	if n < 0 {
		return 0
	}
	return n
}

// BuildRange applies "from" then, if present, "to" as two clicks.
func (s *Selector) BuildRange(from, to string) (models.DateRange, error) {
	var r models.DateRange
	if from == "" {
		if to != "" {
			return r, ErrDateRequired
		}
		return r, nil
	}
	fromDay, err := ParseDay(from)
	if err != nil {
		return r, err
	}
	if r, err = s.Select(r, fromDay); err != nil {
		return r, err
	}
	if to == "" {
		return r, nil
	}
	toDay, err := ParseDay(to)
	if err != nil {
		return r, err
	}
	return s.Select(r, toDay)
}
