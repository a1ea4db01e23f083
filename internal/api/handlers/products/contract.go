package products

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/products/models"
)

type ProductService interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ProductResponse, error)
	List(ctx context.Context, onlyActive bool) ([]models.ProductResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.ProductResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
