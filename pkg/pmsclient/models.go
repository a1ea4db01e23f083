package pmsclient

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Reservation бронирование в ответах API
type Reservation struct {
	ID          int64       `json:"id"`
	RoomID      int64       `json:"habitacion_id"`
	RoomNumber  string      `json:"numero_habitacion"`
	ClientID    int64       `json:"cliente_id"`
	ClientName  string      `json:"cliente_nombre"`
	EntryDate   types.Date  `json:"fecha_entrada"`
	ExitDate    types.Date  `json:"fecha_salida"`
	Nights      int         `json:"noches"`
	NightlyRate types.Money `json:"precio_noche"`
	TotalPrice  types.Money `json:"precio_total"`
	Status      string      `json:"estado"`
	CheckInAt   *time.Time  `json:"checkin_timestamp"`
	CheckOutAt  *time.Time  `json:"checkout_timestamp"`
}

func (r *Reservation) toDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:        r.ID,
		RoomID:    r.RoomID,
		EntryDate: r.EntryDate,
		ExitDate:  r.ExitDate,
		Status:    domain.ReservationStatus(r.Status),
	}
}

// NewClient гость, регистрируемый вместе с бронированием
type NewClient struct {
	FullName string  `json:"nombre_completo"`
	DNI      string  `json:"dni"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"telefono,omitempty"`
}

// CreateReservationRequest запрос на бронирование
type CreateReservationRequest struct {
	RoomID      int64        `json:"habitacion_id"`
	ClientID    *int64       `json:"cliente_id,omitempty"`
	Client      *NewClient   `json:"cliente,omitempty"`
	EntryDate   types.Date   `json:"fecha_entrada"`
	ExitDate    types.Date   `json:"fecha_salida"`
	NightlyRate *types.Money `json:"precio_noche,omitempty"`
}

// ContactUpdate правка данных гостя при заселении
type ContactUpdate struct {
	FullName *string `json:"nombre_completo,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"telefono,omitempty"`
}

// FolioTotals итоги счета
type FolioTotals struct {
	RoomSubtotal         types.Money `json:"subtotal_habitacion"`
	ConsumptionsSubtotal types.Money `json:"subtotal_consumos"`
	ManualSubtotal       types.Money `json:"subtotal_manual"`
	GrandTotal           types.Money `json:"total"`
	Charges              types.Money `json:"cargos"`
	Due                  types.Money `json:"total_a_pagar"`
	Paid                 types.Money `json:"pagado"`
	Outstanding          types.Money `json:"saldo_pendiente"`
	Status               string      `json:"estado_pago"`
}

// Folio счет бронирования
type Folio struct {
	Reservation Reservation `json:"reserva"`
	Nights      int         `json:"noches"`
	NightlyRate types.Money `json:"precio_noche"`
	Totals      FolioTotals `json:"totales"`
}

// ErrorResponse модель ошибки сервера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
