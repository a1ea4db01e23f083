package billing

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/billing/models"
)

type BillingService interface {
	AddConsumption(ctx context.Context, reservationID int64, req *models.AddConsumptionRequest) (*models.ConsumptionResponse, error)
	ListConsumptions(ctx context.Context, reservationID int64) ([]models.ConsumptionResponse, error)
	DeleteConsumption(ctx context.Context, id int64) error
	AddPayment(ctx context.Context, reservationID int64, req *models.AddPaymentRequest) (*models.PaymentResponse, error)
	ListPayments(ctx context.Context, reservationID int64) ([]models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
