package frontdesk

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	reservationModels "github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	roomModels "github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Service сервис стойки регистрации: ожидаемые заезды, поиск и свободные номера
type Service struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	logger          Logger
	timeProvider    TimeProvider
}

// NewService создает новый экземпляр сервиса стойки регистрации
func NewService(reservationRepo ReservationRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		logger:          logger,
		timeProvider:    &RealTimeProvider{},
	}
}

// ArrivalsToday возвращает бронирования PENDIENTE с заездом сегодня
func (s *Service) ArrivalsToday(ctx context.Context) ([]reservationModels.ReservationResponse, error) {
	today := types.DateOf(s.timeProvider.Now())

	list, err := s.reservationRepo.List(ctx, domain.ReservationFilter{
		EntryOn:  &today,
		Statuses: []domain.ReservationStatus{domain.StatusPending},
	})
	if err != nil {
		s.logger.Error("ArrivalsToday: repository error: %v", err)
		return nil, fmt.Errorf("%w: ArrivalsToday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ArrivalsToday: %d arrivals on %s", len(list), today)
	return reservationModels.FromDomainReservationList(list), nil
}

// Search ищет бронирования PENDIENTE по номеру бронирования, имени или DNI гостя
func (s *Service) Search(ctx context.Context, query string) ([]reservationModels.ReservationResponse, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < domain.MinSearchQueryLength {
		return nil, ErrQueryTooShort
	}

	list, err := s.reservationRepo.List(ctx, domain.ReservationFilter{
		Query:    query,
		Statuses: []domain.ReservationStatus{domain.StatusPending},
	})
	if err != nil {
		s.logger.Error("Search: repository error for q=%s: %v", query, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return reservationModels.FromDomainReservationList(list), nil
}

// AvailableRooms возвращает номера в состоянии DISPONIBLE
func (s *Service) AvailableRooms(ctx context.Context) ([]roomModels.RoomResponse, error) {
	state := domain.RoomAvailable
	rooms, err := s.roomRepo.List(ctx, &state)
	if err != nil {
		s.logger.Error("AvailableRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: AvailableRooms - repository error: %v", ErrInternal, err)
	}
	return roomModels.FromDomainRoomList(rooms), nil
}
