package get_availability

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Request запрос снимка доступности. Пустая дата означает сегодня
type Request struct {
	Date *types.Date
}

// Response снимок доступности всех номеров на дату
type Response struct {
	Date    types.Date   `json:"fecha"`
	Rooms   []RoomStatus `json:"habitaciones"`
	Summary Summary      `json:"resumen"`
}

// RoomStatus номер и его производный статус на дату
type RoomStatus struct {
	ID             int64            `json:"id"`
	Number         string           `json:"numero"`
	Category       string           `json:"tipo"`
	BaseRate       types.Money      `json:"precio_base"`
	State          string           `json:"estado"`
	Availability   string           `json:"disponibilidad"`
	BookingAllowed bool             `json:"puede_reservar"`
	Current        *ReservationRef  `json:"reserva_actual"`
	Upcoming       []ReservationRef `json:"proximas_reservas"`
}

// ReservationRef краткие данные бронирования для карточки номера
type ReservationRef struct {
	ID              int64      `json:"id"`
	ClientName      string     `json:"cliente_nombre"`
	EntryDate       types.Date `json:"fecha_entrada"`
	ExitDate        types.Date `json:"fecha_salida"`
	Status          string     `json:"estado"`
	AwaitingArrival bool       `json:"pendiente_llegada"`
}

// Summary количество номеров по статусам
type Summary struct {
	Total              int `json:"total"`
	Available          int `json:"disponibles"`
	AvailableWithAlert int `json:"disponibles_con_alerta"`
	Occupied           int `json:"ocupadas"`
	Blocked            int `json:"bloqueadas"`
}

func toReservationRef(r *domain.Reservation) ReservationRef {
	name := r.ClientName
	if name == "" {
		name = domain.UnknownClientName
	}
	return ReservationRef{
		ID:              r.ID,
		ClientName:      name,
		EntryDate:       r.EntryDate,
		ExitDate:        r.ExitDate,
		Status:          string(r.Status),
		AwaitingArrival: r.Status == domain.StatusPending,
	}
}

func toRoomStatus(a domain.RoomAvailability) RoomStatus {
	rs := RoomStatus{
		ID:             a.Room.ID,
		Number:         a.Room.Number,
		Category:       string(a.Room.Category),
		BaseRate:       types.NewMoney(a.Room.BaseRate),
		State:          string(a.Room.State),
		Availability:   string(a.Tier),
		BookingAllowed: a.BookingAllowed,
		Upcoming:       make([]ReservationRef, 0, len(a.Upcoming)),
	}
	if a.Current != nil {
		ref := toReservationRef(a.Current)
		rs.Current = &ref
	}
	for _, r := range a.Upcoming {
		rs.Upcoming = append(rs.Upcoming, toReservationRef(r))
	}
	return rs
}

func (s *Summary) add(tier domain.AvailabilityTier) {
	s.Total++
	switch tier {
	case domain.TierAvailable:
		s.Available++
	case domain.TierAvailableWithAlert:
		s.AvailableWithAlert++
	case domain.TierOccupied:
		s.Occupied++
	case domain.TierBlocked:
		s.Blocked++
	}
}
