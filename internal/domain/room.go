package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomCategory is the sellable room type
type RoomCategory string

const (
	CategorySingle    RoomCategory = "SIMPLE"
	CategoryDouble    RoomCategory = "DOBLE"
	CategoryTriple    RoomCategory = "TRIPLE"
	CategoryQuadruple RoomCategory = "CUADRUPLE"
	CategorySuite     RoomCategory = "SUITE"
)

// IsValid reports whether c is a known category
func (c RoomCategory) IsValid() bool {
	switch c {
	case CategorySingle, CategoryDouble, CategoryTriple, CategoryQuadruple, CategorySuite:
		return true
	}
	return false
}

// RoomState is the housekeeping lifecycle of a room.
// It is independent from occupancy, which is always derived from reservations.
type RoomState string

const (
	RoomAvailable   RoomState = "DISPONIBLE"
	RoomCleaning    RoomState = "LIMPIEZA"
	RoomMaintenance RoomState = "MANTENIMIENTO"
)

// IsValid reports whether s is a known lifecycle state
func (s RoomState) IsValid() bool {
	switch s {
	case RoomAvailable, RoomCleaning, RoomMaintenance:
		return true
	}
	return false
}

// IsBlocked returns true for states that forbid new bookings and check-ins
func (s RoomState) IsBlocked() bool {
	return s == RoomCleaning || s == RoomMaintenance
}

// Room represents a hotel room
type Room struct {
	ID       int64
	Number   string
	Category RoomCategory
	BaseRate decimal.Decimal
	State    RoomState

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocked returns true if the room is under cleaning or maintenance
func (r *Room) IsBlocked() bool {
	return r.State.IsBlocked()
}
