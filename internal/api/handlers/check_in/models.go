package check_in

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	checkIn "github.com/m04kA/SMC-HotelService/internal/usecase/check_in"
)

// CheckInRequest необязательная правка данных гостя при заселении
type CheckInRequest struct {
	FullName *string `json:"nombre_completo,omitempty" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"telefono,omitempty" validate:"omitempty,max=20"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckInRequest) ToUseCaseRequest(reservationID int64) *checkIn.Request {
	req := &checkIn.Request{ReservationID: reservationID}

	contact := &domain.ClientContactUpdate{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
	}
	if !contact.IsEmpty() {
		req.Contact = contact
	}

	return req
}
