package create_reservation

import (
	createReservation "github.com/m04kA/SMC-HotelService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID      int64        `json:"habitacion_id" validate:"required,gt=0"`
	ClientID    *int64       `json:"cliente_id,omitempty" validate:"required_without=Client"`
	Client      *ClientData  `json:"cliente,omitempty"`
	EntryDate   types.Date   `json:"fecha_entrada"`
	ExitDate    types.Date   `json:"fecha_salida"`
	NightlyRate *types.Money `json:"precio_noche,omitempty"`
}

// ClientData гость, регистрируемый вместе с бронированием
type ClientData struct {
	FullName string  `json:"nombre_completo" validate:"required,min=3,max=100"`
	DNI      string  `json:"dni" validate:"required,min=5,max=20"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"telefono,omitempty" validate:"omitempty,max=20"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	req := &createReservation.Request{
		RoomID:    r.RoomID,
		ClientID:  r.ClientID,
		EntryDate: r.EntryDate,
		ExitDate:  r.ExitDate,
	}

	if r.Client != nil {
		req.Client = &createReservation.ClientData{
			FullName: r.Client.FullName,
			DNI:      r.Client.DNI,
			Email:    r.Client.Email,
			Phone:    r.Client.Phone,
		}
	}

	if r.NightlyRate != nil {
		rate := r.NightlyRate.Decimal
		req.NightlyRate = &rate
	}

	return req
}
