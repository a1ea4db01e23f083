package pmsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client HTTP клиент API отеля. Перед записью выполняет предварительную
// проверку занятости, после записи перечитывает бронирование.
// Проверка на клиенте не заменяет серверную: при гонке сервер вернет 409
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

func New(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// RoomReservations бронирования номера, пересекающие [from, to)
func (c *Client) RoomReservations(ctx context.Context, roomID int64, from, to types.Date) ([]Reservation, error) {
	q := url.Values{}
	q.Set("habitacion_id", strconv.FormatInt(roomID, 10))
	q.Set("fecha_inicio", from.String())
	q.Set("fecha_fin", to.String())

	var list []Reservation
	if err := c.do(ctx, http.MethodGet, "/reservas?"+q.Encode(), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetReservation получает бронирование по ID
func (c *Client) GetReservation(ctx context.Context, id int64) (*Reservation, error) {
	var res Reservation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reservas/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateReservation проверяет занятость номера и создает бронирование
func (c *Client) CreateReservation(ctx context.Context, req *CreateReservationRequest) (*Reservation, error) {
	if err := domain.ValidateStayRange(req.EntryDate, req.ExitDate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if err := c.precheck(ctx, req.RoomID, 0, req.EntryDate, req.ExitDate); err != nil {
		return nil, err
	}

	var created Reservation
	if err := c.do(ctx, http.MethodPost, "/reservas", req, &created); err != nil {
		return nil, err
	}

	c.log.Info("Reservation created: id=%d, room=%d", created.ID, created.RoomID)
	return c.GetReservation(ctx, created.ID)
}

// CheckIn заселяет гостя, contact может быть nil
func (c *Client) CheckIn(ctx context.Context, id int64, contact *ContactUpdate) (*Reservation, error) {
	var body interface{}
	if contact != nil {
		body = contact
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/checkin/%d", id), body, nil); err != nil {
		return nil, err
	}
	return c.GetReservation(ctx, id)
}

// ChangeRoom переносит бронирование до заселения в другой номер
func (c *Client) ChangeRoom(ctx context.Context, id, roomID int64) (*Reservation, error) {
	current, err := c.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.precheck(ctx, roomID, id, current.EntryDate, current.ExitDate); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/checkin/%d/cambiar-habitacion/%d", id, roomID)
	if err := c.do(ctx, http.MethodPut, path, nil, nil); err != nil {
		return nil, err
	}
	return c.GetReservation(ctx, id)
}

// Checkout выселяет гостя. При досрочном выезде сервер пересчитывает сумму
func (c *Client) Checkout(ctx context.Context, id int64) (*Reservation, error) {
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/reservas/%d/checkout", id), nil, nil); err != nil {
		return nil, err
	}
	return c.GetReservation(ctx, id)
}

// Cancel отменяет бронирование в статусе PENDIENTE
func (c *Client) Cancel(ctx context.Context, id int64) (*Reservation, error) {
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/reservas/%d/cancelar", id), nil, nil); err != nil {
		return nil, err
	}
	return c.GetReservation(ctx, id)
}

// GetFolio получает счет бронирования
func (c *Client) GetFolio(ctx context.Context, id int64) (*Folio, error) {
	var folio Folio
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reservas/%d/cuenta", id), nil, &folio); err != nil {
		return nil, err
	}
	return &folio, nil
}

// precheck ищет конфликт среди активных бронирований номера.
// exclude исключает переносимое бронирование
func (c *Client) precheck(ctx context.Context, roomID, exclude int64, start, end types.Date) error {
	list, err := c.RoomReservations(ctx, roomID, start, end)
	if err != nil {
		return err
	}

	reservations := make([]*domain.Reservation, 0, len(list))
	for i := range list {
		if list[i].ID == exclude {
			continue
		}
		reservations = append(reservations, list[i].toDomain())
	}

	if conflict, found := domain.FindConflict(reservations, start, end); found {
		c.log.Warn("Precheck conflict: room=%d, reservation=%d, date=%s", roomID, conflict.ReservationID, conflict.Date)
		return &ConflictError{ReservationID: conflict.ReservationID, Date: conflict.Date}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.apiError(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) apiError(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var payload ErrorResponse
	message := string(raw)
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		message = payload.Message
	}

	// Обработка статус-кодов
	var kind error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		kind = ErrBadRequest
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusConflict:
		kind = ErrConflict
	default:
		kind = ErrInvalidResponse
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: message, kind: kind}
	if errors.Is(kind, ErrInvalidResponse) {
		c.log.Error("%s %s failed: %v", method, path, apiErr)
	} else {
		c.log.Warn("%s %s rejected: %v", method, path, apiErr)
	}
	return apiErr
}
