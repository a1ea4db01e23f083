package check_availability

import (
	checkAvailability "github.com/m04kA/SMC-HotelService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	EntryDate types.Date `json:"fecha_entrada"`
	ExitDate  types.Date `json:"fecha_salida"`
	RoomID    *int64     `json:"habitacion_id,omitempty" validate:"omitempty,gt=0"`
}

func (r *CheckAvailabilityRequest) ToUseCaseRequest() *checkAvailability.Request {
	return &checkAvailability.Request{
		EntryDate: r.EntryDate,
		ExitDate:  r.ExitDate,
		RoomID:    r.RoomID,
	}
}
