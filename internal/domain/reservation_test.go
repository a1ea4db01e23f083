package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservation_Transitions(t *testing.T) {
	pending := &Reservation{Status: StatusPending}
	checkedIn := &Reservation{Status: StatusCheckedIn}
	finalized := &Reservation{Status: StatusFinalized}
	cancelled := &Reservation{Status: StatusCancelled}

	assert.True(t, pending.CanBeCancelled())
	assert.False(t, checkedIn.CanBeCancelled())
	assert.False(t, finalized.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())

	assert.True(t, pending.CanCheckIn())
	assert.False(t, checkedIn.CanCheckIn())

	assert.True(t, checkedIn.CanCheckout())
	assert.False(t, pending.CanCheckout())

	assert.True(t, finalized.IsTerminal())
	assert.True(t, (&Reservation{Status: StatusCheckedOut}).IsTerminal())
	assert.False(t, checkedIn.IsTerminal())
}

func TestReservation_SettleAt_EarlyCheckout(t *testing.T) {
	r := stay(1, "2024-06-01", "2024-06-06", StatusCheckedIn)
	r.NightlyRate = dec("120")
	r.TotalPrice = dec("600")

	s := r.SettleAt(date("2024-06-03"))

	assert.True(t, s.Early)
	assert.Equal(t, 2, s.Nights)
	assert.Equal(t, "2024-06-03", s.ExitDate.String())
	assertDecimal(t, "240", s.TotalPrice)
}

func TestReservation_SettleAt_SameDayChargesOneNight(t *testing.T) {
	r := stay(1, "2024-06-01", "2024-06-06", StatusCheckedIn)
	r.NightlyRate = dec("120")

	s := r.SettleAt(date("2024-06-01"))

	assert.Equal(t, 1, s.Nights)
	assert.Equal(t, "2024-06-02", s.ExitDate.String())
	assertDecimal(t, "120", s.TotalPrice)
}

func TestReservation_SettleAt_OnTimeKeepsTotal(t *testing.T) {
	r := stay(1, "2024-06-01", "2024-06-04", StatusCheckedIn)
	r.NightlyRate = dec("100")
	r.TotalPrice = dec("300")

	s := r.SettleAt(date("2024-06-05"))

	assert.False(t, s.Early)
	assert.Equal(t, 3, s.Nights)
	assert.Equal(t, "2024-06-04", s.ExitDate.String())
	assertDecimal(t, "300", s.TotalPrice)
}

func TestReservation_EffectiveNightlyRate_DerivedFromTotal(t *testing.T) {
	r := stay(1, "2024-06-01", "2024-06-04", StatusCheckedIn)
	r.TotalPrice = dec("300")

	assertDecimal(t, "100", r.EffectiveNightlyRate())
}

func TestReservation_IsOverdue(t *testing.T) {
	r := stay(1, "2024-06-01", "2024-06-04", StatusCheckedIn)

	assert.False(t, r.IsOverdue(date("2024-06-04")))
	assert.True(t, r.IsOverdue(date("2024-06-05")))

	r.Status = StatusPending
	assert.False(t, r.IsOverdue(date("2024-06-05")))
}

func TestParseReservationStatus(t *testing.T) {
	s, err := ParseReservationStatus("CHECKIN")
	assert.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, s)

	_, err = ParseReservationStatus("checkin")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestStayPrice(t *testing.T) {
	assertDecimal(t, "300", StayPrice(3, dec("100")))
}
