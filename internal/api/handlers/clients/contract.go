package clients

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/clients/models"
)

type ClientService interface {
	Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ClientResponse, error)
	List(ctx context.Context, query string) ([]models.ClientResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateClientRequest) (*models.ClientResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
