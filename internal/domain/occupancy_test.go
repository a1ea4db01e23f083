package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/pkg/types"
)

func date(s string) types.Date {
	return types.MustParseDate(s)
}

func stay(id int64, entry, exit string, status ReservationStatus) *Reservation {
	return &Reservation{ID: id, EntryDate: date(entry), ExitDate: date(exit), Status: status}
}

func TestIsOccupied_ExitDayIsFree(t *testing.T) {
	reservations := []*Reservation{stay(1, "2024-06-11", "2024-06-13", StatusPending)}

	assert.False(t, IsOccupied(reservations, date("2024-06-10")))
	assert.True(t, IsOccupied(reservations, date("2024-06-11")))
	assert.True(t, IsOccupied(reservations, date("2024-06-12")))
	assert.False(t, IsOccupied(reservations, date("2024-06-13")))
}

func TestIsOccupied_IgnoresInactive(t *testing.T) {
	reservations := []*Reservation{
		stay(1, "2024-06-11", "2024-06-13", StatusCancelled),
		stay(2, "2024-06-11", "2024-06-13", StatusFinalized),
	}
	assert.False(t, IsOccupied(reservations, date("2024-06-11")))
}

func TestFindConflict(t *testing.T) {
	reservations := []*Reservation{
		stay(7, "2024-06-11", "2024-06-13", StatusCheckedIn),
	}

	conflict, found := FindConflict(reservations, date("2024-06-10"), date("2024-06-12"))
	require.True(t, found)
	assert.Equal(t, int64(7), conflict.ReservationID)
	assert.Equal(t, "2024-06-11", conflict.Date.String())

	// back-to-back stays share the turnover day
	_, found = FindConflict(reservations, date("2024-06-13"), date("2024-06-15"))
	assert.False(t, found)
	_, found = FindConflict(reservations, date("2024-06-08"), date("2024-06-11"))
	assert.False(t, found)
}

func TestFindConflict_ReturnsEarliestDate(t *testing.T) {
	reservations := []*Reservation{
		stay(1, "2024-06-20", "2024-06-22", StatusPending),
		stay(2, "2024-06-15", "2024-06-17", StatusPending),
	}

	conflict, found := FindConflict(reservations, date("2024-06-14"), date("2024-06-30"))
	require.True(t, found)
	assert.Equal(t, int64(2), conflict.ReservationID)
	assert.Equal(t, "2024-06-15", conflict.Date.String())
}

func TestValidateStayRange(t *testing.T) {
	assert.NoError(t, ValidateStayRange(date("2024-06-01"), date("2024-06-02")))
	assert.ErrorIs(t, ValidateStayRange(date("2024-06-01"), date("2024-06-01")), ErrEmptyRange)
	assert.ErrorIs(t, ValidateStayRange(date("2024-06-02"), date("2024-06-01")), ErrEmptyRange)
	assert.ErrorIs(t, ValidateStayRange(date("2024-01-01"), date("2025-06-01")), ErrRangeTooLong)
}

func TestValidateNewStay_RejectsPastEntry(t *testing.T) {
	today := date("2024-06-10")
	assert.ErrorIs(t, ValidateNewStay(date("2024-06-09"), date("2024-06-12"), today), ErrEntryInPast)
	assert.NoError(t, ValidateNewStay(today, date("2024-06-12"), today))
}

func TestOccupiedDates(t *testing.T) {
	reservations := []*Reservation{stay(1, "2024-06-02", "2024-06-04", StatusPending)}
	dates := OccupiedDates(reservations, date("2024-06-01"), date("2024-06-06"))

	require.Len(t, dates, 2)
	assert.Equal(t, "2024-06-02", dates[0].String())
	assert.Equal(t, "2024-06-03", dates[1].String())
}
