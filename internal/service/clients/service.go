package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	clientRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/client"
	"github.com/m04kA/SMC-HotelService/internal/service/clients/models"
)

// Service сервис для работы с гостями
type Service struct {
	clientRepo      ClientRepository
	reservationRepo ReservationCounter
	logger          Logger
}

// NewService создает новый экземпляр сервиса гостей
func NewService(clientRepo ClientRepository, reservationRepo ReservationCounter, logger Logger) *Service {
	return &Service{
		clientRepo:      clientRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Create регистрирует гостя. Повторный DNI возвращает ErrDNITaken
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	req.DNI = strings.TrimSpace(req.DNI)
	req.FullName = strings.TrimSpace(req.FullName)
	s.logger.Info("Create: registering client dni=%s", req.DNI)

	created, err := s.clientRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, clientRepo.ErrDNITaken) {
			s.logger.Warn("Create: dni=%s already registered", req.DNI)
			return nil, ErrDNITaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: client id=%d registered", created.ID)
	return models.FromDomainClient(created), nil
}

// GetByID получает гостя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClientResponse, error) {
	client, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainClient(client), nil
}

// List возвращает гостей, опционально по подстроке имени или DNI
func (s *Service) List(ctx context.Context, query string) ([]models.ClientResponse, error) {
	clients, err := s.clientRepo.List(ctx, strings.TrimSpace(query))
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainClientList(clients), nil
}

// Update частично обновляет гостя
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Update: updating client id=%d", id)

	client, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if req.DNI != nil {
		client.DNI = strings.TrimSpace(*req.DNI)
	}
	update := domain.ClientContactUpdate{FullName: req.FullName, Email: req.Email, Phone: req.Phone}
	update.Apply(client)

	updated, err := s.clientRepo.Update(ctx, client)
	if err != nil {
		switch {
		case errors.Is(err, clientRepo.ErrClientNotFound):
			return nil, ErrClientNotFound
		case errors.Is(err, clientRepo.ErrDNITaken):
			s.logger.Warn("Update: dni=%s already registered", client.DNI)
			return nil, ErrDNITaken
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(updated), nil
}

// Delete удаляет гостя без неотмененных бронирований
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting client id=%d", id)

	if _, err := s.get(ctx, "Delete", id); err != nil {
		return err
	}

	count, err := s.reservationRepo.Count(ctx, domain.ReservationFilter{
		ClientID: &id,
		Statuses: []domain.ReservationStatus{
			domain.StatusPending,
			domain.StatusCheckedIn,
			domain.StatusCheckedOut,
			domain.StatusFinalized,
		},
	})
	if err != nil {
		s.logger.Error("Delete: count reservations for client id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - count reservations: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: client id=%d has %d reservations", id, count)
		return ErrClientHasReservations
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("%s: client id=%d not found", op, id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("%s: repository error for client id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return client, nil
}
