package booking

import (
	"errors"
	"fmt"
)

var (
	ErrDateInPast       = errors.New("date is in the past")
	ErrDateBooked       = errors.New("date is already booked")
	ErrRangeUnavailable = errors.New("selected range includes a booked date")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")

	ErrGuestLimit       = errors.New("guest limit reached")
	ErrInvalidGuestKind = errors.New("unknown guest kind")

	ErrDateRequired   = errors.New("select an event date first")
	ErrGuestsRequired = errors.New("at least one guest is required")

	ErrInvalidTransition = errors.New("invalid step transition")
	ErrUnknownPriceTier  = errors.New("unknown price tier")

	ErrSessionNotFound = errors.New("inquiry session not found or expired")
)

// StepError reports why the current step cannot advance.
type StepError struct {
	Step   Step
	Reason string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Reason)
}

func stepError(step Step, reason string) error {
	return &StepError{Step: step, Reason: reason}
}
