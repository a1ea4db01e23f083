package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	productRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/product"
	"github.com/m04kA/SMC-HotelService/internal/service/products/models"
)

// Service сервис каталога товаров
type Service struct {
	productRepo ProductRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса товаров
func NewService(productRepo ProductRepository, logger Logger) *Service {
	return &Service{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create создает товар. По умолчанию товар активен
func (s *Service) Create(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, error) {
	product := &domain.Product{
		Name:   strings.TrimSpace(req.Name),
		Price:  req.Price.Decimal,
		Active: true,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	s.logger.Info("Create: creating product name=%s price=%s", product.Name, product.Price.StringFixed(2))

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, s.mapError("Create", err)
	}

	return models.FromDomainProduct(created), nil
}

// GetByID получает товар по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", err)
	}
	return models.FromDomainProduct(product), nil
}

// List возвращает каталог, опционально только активные товары
func (s *Service) List(ctx context.Context, onlyActive bool) ([]models.ProductResponse, error) {
	products, err := s.productRepo.List(ctx, onlyActive)
	if err != nil {
		return nil, s.mapError("List", err)
	}
	return models.FromDomainProductList(products), nil
}

// Update частично обновляет товар. Прошлые расходы хранят снимок цены и не меняются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.ProductResponse, error) {
	s.logger.Info("Update: updating product id=%d", id)

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("Update", err)
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		product.Price = req.Price.Decimal
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		return nil, s.mapError("Update", err)
	}

	return models.FromDomainProduct(updated), nil
}

// Delete удаляет товар. Ссылки из расходов обнуляются, концепт и цена сохраняются
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting product id=%d", id)

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", err)
	}
	return nil
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, productRepo.ErrProductNotFound):
		s.logger.Warn("%s: product not found", op)
		return ErrProductNotFound
	case errors.Is(err, productRepo.ErrNameTaken):
		s.logger.Warn("%s: product name already exists", op)
		return ErrNameTaken
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
