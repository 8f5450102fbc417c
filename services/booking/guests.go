package booking

import "everafter/models"

// GuestKind names one of the guest counters.
type GuestKind string

const (
	GuestAdults   GuestKind = "adults"
	GuestChildren GuestKind = "children"
	GuestInfants  GuestKind = "infants"
)

// DefaultGuests is the initial selector state.
func DefaultGuests() models.GuestCounts {
	return models.GuestCounts{Adults: 1}
}

// GuestPolicy bounds the guest selector. MaxGuests <= 0 means no ceiling.
type GuestPolicy struct {
	MaxGuests int
}

// Adjust moves one counter by delta. Decrements stop at the floor
// (adults 1, others 0) without error; increments that would push
// adults+children past MaxGuests return ErrGuestLimit and leave g unchanged.
func (p GuestPolicy) Adjust(g models.GuestCounts, kind GuestKind, delta int) (models.GuestCounts, error) {
	next := g
	switch kind {
	case GuestAdults:
		next.Adults = max(next.Adults+delta, 1)
	case GuestChildren:
		next.Children = max(next.Children+delta, 0)
	case GuestInfants:
		next.Infants = max(next.Infants+delta, 0)
	default:
		return g, ErrInvalidGuestKind
	}
	if delta > 0 && p.MaxGuests > 0 && next.Total() > p.MaxGuests {
		return g, ErrGuestLimit
	}
	return next, nil
}

// Validate checks counts submitted in one piece.
func (p GuestPolicy) Validate(g models.GuestCounts) error {
	if g.Adults < 1 || g.Children < 0 || g.Infants < 0 {
		return ErrGuestsRequired
	}
	if p.MaxGuests > 0 && g.Total() > p.MaxGuests {
		return ErrGuestLimit
	}
	return nil
}
