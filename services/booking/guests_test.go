package booking

import (
	"testing"

	"everafter/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustGuestFloors(t *testing.T) {
	p := GuestPolicy{}
	g := DefaultGuests()

	got, err := p.Adjust(g, GuestAdults, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Adults)

	got, err = p.Adjust(g, GuestChildren, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Children)

	got, err = p.Adjust(g, GuestInfants, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Infants)
	assert.Equal(t, 1, got.Total())

	_, err = p.Adjust(g, "pets", 1)
	assert.ErrorIs(t, err, ErrInvalidGuestKind)
}

func TestAdjustGuestCeiling(t *testing.T) {
	p := GuestPolicy{MaxGuests: 200}
	g := models.GuestCounts{Adults: 150, Children: 50}

	got, err := p.Adjust(g, GuestAdults, 1)
	assert.ErrorIs(t, err, ErrGuestLimit)
	assert.Equal(t, g, got)

	got, err = p.Adjust(g, GuestInfants, 1)
	require.NoError(t, err, "infants do not count towards capacity")
	assert.Equal(t, 1, got.Infants)

	unlimited := GuestPolicy{}
	got, err = unlimited.Adjust(g, GuestAdults, 500)
	require.NoError(t, err)
	assert.Equal(t, 650, got.Adults)
}

func TestValidateGuests(t *testing.T) {
	p := GuestPolicy{MaxGuests: 10}
	assert.NoError(t, p.Validate(models.GuestCounts{Adults: 2, Children: 3}))
	assert.ErrorIs(t, p.Validate(models.GuestCounts{Adults: 0, Children: 3}), ErrGuestsRequired)
	assert.ErrorIs(t, p.Validate(models.GuestCounts{Adults: 8, Children: 3}), ErrGuestLimit)
}
