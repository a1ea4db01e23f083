package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// ListReservationsRequest фильтры списка бронирований
type ListReservationsRequest struct {
	From     *types.Date // fecha_inicio
	To       *types.Date // fecha_fin
	ClientID *int64
	RoomID   *int64
	Status   *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		From:     r.From,
		To:       r.To,
		ClientID: r.ClientID,
		RoomID:   r.RoomID,
	}

	if r.Status != nil {
		status, err := domain.ParseReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Statuses = []domain.ReservationStatus{status}
	}

	return filter, nil
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID          int64       `json:"id"`
	RoomID      int64       `json:"habitacion_id"`
	RoomNumber  string      `json:"numero_habitacion"`
	ClientID    int64       `json:"cliente_id"`
	ClientName  string      `json:"cliente_nombre"`
	ClientDNI   string      `json:"cliente_dni"`
	EntryDate   types.Date  `json:"fecha_entrada"`
	ExitDate    types.Date  `json:"fecha_salida"`
	Nights      int         `json:"noches"`
	NightlyRate types.Money `json:"precio_noche"`
	TotalPrice  types.Money `json:"precio_total"`
	Status      string      `json:"estado"`

	CheckInAt  *time.Time `json:"checkin_timestamp"`
	CheckOutAt *time.Time `json:"checkout_timestamp"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromDomainReservation конвертирует domain модель в DTO.
// Отсутствующий гость показывается как "Cliente desconocido"
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	clientName := r.ClientName
	if clientName == "" {
		clientName = domain.UnknownClientName
	}

	return &ReservationResponse{
		ID:          r.ID,
		RoomID:      r.RoomID,
		RoomNumber:  r.RoomNumber,
		ClientID:    r.ClientID,
		ClientName:  clientName,
		ClientDNI:   r.ClientDNI,
		EntryDate:   r.EntryDate,
		ExitDate:    r.ExitDate,
		Nights:      r.Nights(),
		NightlyRate: types.NewMoney(r.EffectiveNightlyRate()),
		TotalPrice:  types.NewMoney(r.TotalPrice),
		Status:      string(r.Status),
		CheckInAt:   r.CheckInAt,
		CheckOutAt:  r.CheckOutAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(reservations []*domain.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, *FromDomainReservation(r))
	}
	return resp
}
