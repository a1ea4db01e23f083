package models

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// CreateProductRequest запрос на создание товара.
// Цена может быть отрицательной (предустановленные скидки)
type CreateProductRequest struct {
	Name   string      `json:"nombre" validate:"required,max=100"`
	Price  types.Money `json:"precio"`
	Active *bool       `json:"activo,omitempty"`
}

// UpdateProductRequest частичное обновление товара
type UpdateProductRequest struct {
	Name   *string      `json:"nombre,omitempty" validate:"omitempty,min=1,max=100"`
	Price  *types.Money `json:"precio,omitempty"`
	Active *bool        `json:"activo,omitempty"`
}

// ProductResponse ответ с данными товара
type ProductResponse struct {
	ID     int64       `json:"id"`
	Name   string      `json:"nombre"`
	Price  types.Money `json:"precio"`
	Active bool        `json:"activo"`
}

// FromDomainProduct конвертирует domain модель в DTO
func FromDomainProduct(p *domain.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:     p.ID,
		Name:   p.Name,
		Price:  types.NewMoney(p.Price),
		Active: p.Active,
	}
}

// FromDomainProductList конвертирует список товаров
func FromDomainProductList(products []*domain.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, *FromDomainProduct(p))
	}
	return resp
}
