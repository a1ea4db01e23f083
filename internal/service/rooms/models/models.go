package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Request модели

// CreateRoomRequest запрос на создание номера
type CreateRoomRequest struct {
	Number   string      `json:"numero" validate:"required,max=10"`
	Category string      `json:"tipo" validate:"required,oneof=SIMPLE DOBLE TRIPLE CUADRUPLE SUITE"`
	BaseRate types.Money `json:"precio_base"`
	State    *string     `json:"estado,omitempty" validate:"omitempty,oneof=DISPONIBLE LIMPIEZA MANTENIMIENTO"`
}

// UpdateRoomRequest частичное обновление номера
type UpdateRoomRequest struct {
	Number   *string      `json:"numero,omitempty" validate:"omitempty,min=1,max=10"`
	Category *string      `json:"tipo,omitempty" validate:"omitempty,oneof=SIMPLE DOBLE TRIPLE CUADRUPLE SUITE"`
	BaseRate *types.Money `json:"precio_base,omitempty"`
	State    *string      `json:"estado,omitempty" validate:"omitempty,oneof=DISPONIBLE LIMPIEZA MANTENIMIENTO"`
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID        int64       `json:"id"`
	Number    string      `json:"numero"`
	Category  string      `json:"tipo"`
	BaseRate  types.Money `json:"precio_base"`
	State     string      `json:"estado"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:        r.ID,
		Number:    r.Number,
		Category:  string(r.Category),
		BaseRate:  types.NewMoney(r.BaseRate),
		State:     string(r.State),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список номеров
func FromDomainRoomList(rooms []*domain.Room) []RoomResponse {
	resp := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, *FromDomainRoom(r))
	}
	return resp
}
