package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// AddConsumptionRequest начисление по товару из каталога или ручная строка.
// Для товара концепт и цена берутся из каталога
type AddConsumptionRequest struct {
	ProductID *int64       `json:"producto_id,omitempty"`
	Concept   *string      `json:"concepto,omitempty" validate:"omitempty,min=1,max=200"`
	Quantity  int          `json:"cantidad" validate:"required,gt=0"`
	UnitPrice *types.Money `json:"precio_unitario,omitempty"`
	Date      *types.Date  `json:"fecha,omitempty"`
}

// AddPaymentRequest запрос на регистрацию оплаты
type AddPaymentRequest struct {
	Amount types.Money `json:"monto"`
	Method string      `json:"metodo" validate:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA"`
	Note   *string     `json:"nota,omitempty" validate:"omitempty,max=200"`
}

// ConsumptionResponse строка счета
type ConsumptionResponse struct {
	ID            int64       `json:"id"`
	ReservationID int64       `json:"reserva_id"`
	ProductID     *int64      `json:"producto_id"`
	Concept       string      `json:"concepto"`
	Origin        string      `json:"origen"`
	Quantity      int         `json:"cantidad"`
	UnitPrice     types.Money `json:"precio_unitario"`
	Subtotal      types.Money `json:"subtotal"`
	Date          types.Date  `json:"fecha"`
}

// PaymentResponse оплата по бронированию
type PaymentResponse struct {
	ID            int64       `json:"id"`
	ReservationID int64       `json:"reserva_id"`
	Amount        types.Money `json:"monto"`
	Method        string      `json:"metodo"`
	Note          *string     `json:"nota"`
	PaidAt        time.Time   `json:"fecha_pago"`
}

// FromDomainConsumption конвертирует domain модель в DTO
func FromDomainConsumption(c *domain.Consumption) *ConsumptionResponse {
	if c == nil {
		return nil
	}
	return &ConsumptionResponse{
		ID:            c.ID,
		ReservationID: c.ReservationID,
		ProductID:     c.ProductID,
		Concept:       c.Concept,
		Origin:        string(c.Origin),
		Quantity:      c.Quantity,
		UnitPrice:     types.NewMoney(c.UnitPrice),
		Subtotal:      types.NewMoney(c.Subtotal()),
		Date:          c.ConsumedOn,
	}
}

// FromDomainConsumptionList конвертирует список расходов
func FromDomainConsumptionList(list []*domain.Consumption) []ConsumptionResponse {
	resp := make([]ConsumptionResponse, 0, len(list))
	for _, c := range list {
		resp = append(resp, *FromDomainConsumption(c))
	}
	return resp
}

// FromDomainPayment конвертирует domain модель в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        types.NewMoney(p.Amount),
		Method:        string(p.Method),
		Note:          p.Note,
		PaidAt:        p.PaidAt,
	}
}

// FromDomainPaymentList конвертирует список оплат
func FromDomainPaymentList(list []*domain.Payment) []PaymentResponse {
	resp := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, *FromDomainPayment(p))
	}
	return resp
}
