package domain

import (
	"sort"

	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// AvailabilityTier is the derived real-time status of a room for a reference date
type AvailabilityTier string

const (
	TierBlocked            AvailabilityTier = "BLOQUEADA"
	TierOccupied           AvailabilityTier = "OCUPADA"
	TierAvailableWithAlert AvailabilityTier = "DISPONIBLE_CON_ALERTA"
	TierAvailable          AvailabilityTier = "DISPONIBLE"
)

// Classification is the classifier output
type Classification struct {
	Tier           AvailabilityTier
	BookingAllowed bool
}

// ClassifyRoom applies the precedence blocked > occupied > upcoming alert > available.
// A blocked lifecycle state is the only condition that disables booking.
func ClassifyRoom(state RoomState, current *Reservation, upcoming []*Reservation) Classification {
	switch {
	case state.IsBlocked():
		return Classification{Tier: TierBlocked, BookingAllowed: false}
	case current != nil:
		return Classification{Tier: TierOccupied, BookingAllowed: true}
	case len(upcoming) > 0:
		return Classification{Tier: TierAvailableWithAlert, BookingAllowed: true}
	default:
		return Classification{Tier: TierAvailable, BookingAllowed: true}
	}
}

// RoomAvailability is a room snapshot for a reference date
type RoomAvailability struct {
	Room     *Room
	Date     types.Date
	Current  *Reservation
	Upcoming []*Reservation
	Classification
}

// BuildRoomAvailability picks the active reservation covering date and the
// active reservations starting after it, then classifies the room.
// reservations must belong to room.
func BuildRoomAvailability(room *Room, reservations []*Reservation, date types.Date) RoomAvailability {
	var current *Reservation
	upcoming := make([]*Reservation, 0)

	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		if r.Covers(date) {
			if current == nil || r.EntryDate.Before(current.EntryDate) {
				current = r
			}
			continue
		}
		if r.EntryDate.After(date) {
			upcoming = append(upcoming, r)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].EntryDate.Before(upcoming[j].EntryDate)
	})

	return RoomAvailability{
		Room:           room,
		Date:           date,
		Current:        current,
		Upcoming:       upcoming,
		Classification: ClassifyRoom(room.State, current, upcoming),
	}
}
