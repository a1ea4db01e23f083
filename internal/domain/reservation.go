package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDIENTE"
	StatusCheckedIn ReservationStatus = "CHECKIN"
	// StatusCheckedOut is a legacy terminal value, treated as finalized
	StatusCheckedOut ReservationStatus = "CHECKOUT"
	StatusFinalized  ReservationStatus = "FINALIZADA"
	StatusCancelled  ReservationStatus = "CANCELADA"
)

var ErrUnknownStatus = errors.New("domain: unknown reservation status")

// ParseReservationStatus validates a wire value
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	switch status {
	case StatusPending, StatusCheckedIn, StatusCheckedOut, StatusFinalized, StatusCancelled:
		return status, nil
	}
	return "", ErrUnknownStatus
}

// Reservation represents a stay of a client in a room over [EntryDate, ExitDate)
type Reservation struct {
	ID          int64
	RoomID      int64
	ClientID    int64
	EntryDate   types.Date
	ExitDate    types.Date // exclusive: checkout day, neither charged nor occupied
	NightlyRate decimal.Decimal
	TotalPrice  decimal.Decimal
	Status      ReservationStatus

	CheckInAt  *time.Time
	CheckOutAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Denormalized data for views
	ClientName string
	ClientDNI  string
	RoomNumber string
}

// IsActive returns true if the reservation holds its room
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusCheckedIn
}

// IsTerminal returns true for finalized, checked-out and cancelled reservations
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusFinalized || r.Status == StatusCheckedOut || r.Status == StatusCancelled
}

// CanBeCancelled returns true only before check-in
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending
}

// CanCheckIn returns true if the guest arrival can be formalized
func (r *Reservation) CanCheckIn() bool {
	return r.Status == StatusPending
}

// CanChangeRoom returns true if the reservation can be moved to another room
func (r *Reservation) CanChangeRoom() bool {
	return r.Status == StatusPending
}

// CanCheckout returns true if the stay can be closed
func (r *Reservation) CanCheckout() bool {
	return r.Status == StatusCheckedIn
}

// Nights returns the number of nights in [EntryDate, ExitDate)
func (r *Reservation) Nights() int {
	return r.EntryDate.DaysUntil(r.ExitDate)
}

// BilledNights returns Nights with a floor of one night
func (r *Reservation) BilledNights() int {
	if n := r.Nights(); n > MinStayNights {
		return n
	}
	return MinStayNights
}

// Covers returns true if d is an occupied night of the stay: entry <= d < exit
func (r *Reservation) Covers(d types.Date) bool {
	return !d.Before(r.EntryDate) && d.Before(r.ExitDate)
}

// Overlaps returns true if the stay intersects [start, end)
func (r *Reservation) Overlaps(start, end types.Date) bool {
	return r.EntryDate.Before(end) && r.ExitDate.After(start)
}

// IsOverdue returns true for checked-in stays whose exit date already passed
func (r *Reservation) IsOverdue(today types.Date) bool {
	return r.Status == StatusCheckedIn && r.ExitDate.Before(today)
}

// EffectiveNightlyRate returns the rate snapshot, deriving it from the total
// for rows stored before the snapshot column existed
func (r *Reservation) EffectiveNightlyRate() decimal.Decimal {
	if !r.NightlyRate.IsZero() {
		return r.NightlyRate
	}
	return r.TotalPrice.Div(decimal.NewFromInt(int64(r.BilledNights()))).Round(2)
}

// Settlement is the result of closing a stay on a given day
type Settlement struct {
	ExitDate   types.Date
	Nights     int
	TotalPrice decimal.Decimal
	Early      bool
}

// SettleAt computes exit date and total when the guest leaves on today.
// Leaving before the booked exit shortens the stay to the nights actually used
// (at least one) and reprices it at the nightly rate snapshot.
func (r *Reservation) SettleAt(today types.Date) Settlement {
	if !today.Before(r.ExitDate) {
		return Settlement{
			ExitDate:   r.ExitDate,
			Nights:     r.Nights(),
			TotalPrice: r.TotalPrice,
		}
	}

	nights := r.EntryDate.DaysUntil(today)
	if nights < MinStayNights {
		nights = MinStayNights
	}

	return Settlement{
		ExitDate:   r.EntryDate.AddDays(nights),
		Nights:     nights,
		TotalPrice: r.EffectiveNightlyRate().Mul(decimal.NewFromInt(int64(nights))),
		Early:      true,
	}
}

// StayPrice returns nights * rate
func StayPrice(nights int, rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(nights)))
}

// ReservationFilter filter for listing reservations
type ReservationFilter struct {
	From     *types.Date // stays ending after From
	To       *types.Date // stays starting before To
	EntryOn  *types.Date // arrivals on an exact date
	ClientID *int64
	RoomID   *int64
	Statuses []ReservationStatus
	// Query matches reservation id, client name or DNI
	Query string

	NewestFirst bool
	Limit       uint64
}
