package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// CreateClientRequest запрос на регистрацию гостя
type CreateClientRequest struct {
	FullName string  `json:"nombre_completo" validate:"required,min=3,max=100"`
	DNI      string  `json:"dni" validate:"required,min=5,max=20"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"telefono,omitempty" validate:"omitempty,max=20"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateClientRequest) ToDomain() *domain.Client {
	return &domain.Client{
		FullName: r.FullName,
		DNI:      r.DNI,
		Email:    r.Email,
		Phone:    r.Phone,
	}
}

// UpdateClientRequest частичное обновление гостя
type UpdateClientRequest struct {
	FullName *string `json:"nombre_completo,omitempty" validate:"omitempty,min=3,max=100"`
	DNI      *string `json:"dni,omitempty" validate:"omitempty,min=5,max=20"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"telefono,omitempty" validate:"omitempty,max=20"`
}

// ClientResponse ответ с данными гостя
type ClientResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"nombre_completo"`
	DNI       string    `json:"dni"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"telefono"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		DNI:       c.DNI,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainClientList конвертирует список гостей
func FromDomainClientList(clients []*domain.Client) []ClientResponse {
	resp := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		resp = append(resp, *FromDomainClient(c))
	}
	return resp
}
