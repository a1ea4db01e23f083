package domain

import (
	"errors"

	"github.com/m04kA/SMC-HotelService/pkg/types"
)

var (
	ErrEmptyRange   = errors.New("domain: exit date must be after entry date")
	ErrRangeTooLong = errors.New("domain: stay exceeds maximum length")
	ErrEntryInPast  = errors.New("domain: entry date is in the past")
)

// ValidateStayRange rejects zero-night, inverted and over-long ranges
func ValidateStayRange(start, end types.Date) error {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return ErrEmptyRange
	}
	if start.DaysUntil(end) > MaxStayNights {
		return ErrRangeTooLong
	}
	return nil
}

// ValidateNewStay additionally rejects stays that start before today
func ValidateNewStay(start, end, today types.Date) error {
	if err := ValidateStayRange(start, end); err != nil {
		return err
	}
	if start.Before(today) {
		return ErrEntryInPast
	}
	return nil
}

// IsOccupied reports whether any active reservation covers d
func IsOccupied(reservations []*Reservation, d types.Date) bool {
	for _, r := range reservations {
		if r.IsActive() && r.Covers(d) {
			return true
		}
	}
	return false
}

// Conflict describes the first occupied night inside a requested range
type Conflict struct {
	ReservationID int64
	Date          types.Date
}

// FindConflict returns the earliest occupied night in [start, end), if any.
// Only active reservations are considered; the exit day of an existing stay is free.
func FindConflict(reservations []*Reservation, start, end types.Date) (Conflict, bool) {
	var (
		found    bool
		conflict Conflict
	)

	for _, r := range reservations {
		if !r.IsActive() || !r.Overlaps(start, end) {
			continue
		}

		first := start
		if r.EntryDate.After(first) {
			first = r.EntryDate
		}

		if !found || first.Before(conflict.Date) {
			conflict = Conflict{ReservationID: r.ID, Date: first}
			found = true
		}
	}

	return conflict, found
}

// OccupiedDates lists the occupied nights in [from, to) for calendar views
func OccupiedDates(reservations []*Reservation, from, to types.Date) []types.Date {
	dates := make([]types.Date, 0)
	for d := from; d.Before(to); d = d.AddDays(1) {
		if IsOccupied(reservations, d) {
			dates = append(dates, d)
		}
	}
	return dates
}
