package get_folio

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
	billingModels "github.com/m04kA/SMC-HotelService/internal/service/billing/models"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Request запрос счета. ManualItems не сохраняются, используются только для предпросмотра
type Request struct {
	ReservationID int64
	ManualItems   []ManualItem
}

// ManualItem строка предпросмотра, цена может быть отрицательной (скидка)
type ManualItem struct {
	Concept   string      `json:"concepto" validate:"required,max=200"`
	Quantity  int         `json:"cantidad" validate:"required,gt=0"`
	UnitPrice types.Money `json:"precio_unitario"`
}

// Response счет бронирования
type Response struct {
	Reservation  models.ReservationResponse          `json:"reserva"`
	Nights       int                                 `json:"noches"`
	NightlyRate  types.Money                         `json:"precio_noche"`
	Consumptions []billingModels.ConsumptionResponse `json:"consumos"`
	ManualItems  []ManualItemResponse                `json:"items_manuales"`
	Payments     []billingModels.PaymentResponse     `json:"pagos"`
	Totals       Totals                              `json:"totales"`
}

// ManualItemResponse строка предпросмотра с подытогом
type ManualItemResponse struct {
	Concept   string      `json:"concepto"`
	Quantity  int         `json:"cantidad"`
	UnitPrice types.Money `json:"precio_unitario"`
	Subtotal  types.Money `json:"subtotal"`
}

// Totals итоги калькулятора
type Totals struct {
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

// Folio исходные данные и результат расчета, общий для счета и печатной формы
type Folio struct {
	Reservation  *domain.Reservation
	Consumptions []*domain.Consumption
	ManualItems  []domain.ManualItem
	Payments     []*domain.Payment
	Result       domain.Folio
}

func (m ManualItem) toDomain() domain.ManualItem {
	return domain.ManualItem{
		Concept:   m.Concept,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice.Decimal,
	}
}

func toResponse(f *Folio) *Response {
	manual := make([]ManualItemResponse, 0, len(f.ManualItems))
	for _, m := range f.ManualItems {
		manual = append(manual, ManualItemResponse{
			Concept:   m.Concept,
			Quantity:  m.Quantity,
			UnitPrice: types.NewMoney(m.UnitPrice),
			Subtotal:  types.NewMoney(m.Subtotal()),
		})
	}

	r := f.Result
	return &Response{
		Reservation:  *models.FromDomainReservation(f.Reservation),
		Nights:       r.Nights,
		NightlyRate:  types.NewMoney(r.NightlyRate),
		Consumptions: billingModels.FromDomainConsumptionList(f.Consumptions),
		ManualItems:  manual,
		Payments:     billingModels.FromDomainPaymentList(f.Payments),
		Totals: Totals{
			RoomSubtotal:         types.NewMoney(r.RoomSubtotal),
			ConsumptionsSubtotal: types.NewMoney(r.ConsumptionsSubtotal),
			ManualSubtotal:       types.NewMoney(r.ManualSubtotal),
			GrandTotal:           types.NewMoney(r.GrandTotal),
			Charges:              types.NewMoney(r.Charges),
			Due:                  types.NewMoney(r.Due),
			Paid:                 types.NewMoney(r.Paid),
			Outstanding:          types.NewMoney(r.Outstanding),
			Status:               string(r.Status),
		},
	}
}
