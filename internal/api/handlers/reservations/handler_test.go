package reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	reservationsService "github.com/m04kA/SMC-HotelService/internal/service/reservations"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.ReservationResponse)
	return resp, args.Error(1)
}

func (m *mockService) List(ctx context.Context, req *models.ListReservationsRequest) ([]models.ReservationResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).([]models.ReservationResponse)
	return resp, args.Error(1)
}

func (m *mockService) History(ctx context.Context) ([]models.ReservationResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]models.ReservationResponse)
	return resp, args.Error(1)
}

func (m *mockService) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.ReservationResponse)
	return resp, args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc ReservationService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/reservas", h.List).Methods(http.MethodGet)
	r.HandleFunc("/reservas/historial", h.History).Methods(http.MethodGet)
	r.HandleFunc("/reservas/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/reservas/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/reservas/{id}/cancelar", h.Cancel).Methods(http.MethodPut)
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHandler_ListFilters(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, mock.MatchedBy(func(req *models.ListReservationsRequest) bool {
		return req.From != nil && req.From.String() == "2025-03-01" &&
			req.To != nil && req.To.String() == "2025-03-31" &&
			req.RoomID != nil && *req.RoomID == 5 &&
			req.ClientID == nil &&
			req.Status != nil && *req.Status == "PENDIENTE"
	})).Return([]models.ReservationResponse{}, nil)

	rec := serve(newRouter(svc), http.MethodGet,
		"/reservas?fecha_inicio=2025-03-01&fecha_fin=2025-03-31&habitacion_id=5&estado=PENDIENTE")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandler_ListInvalidQuery(t *testing.T) {
	r := newRouter(&mockService{})

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/reservas?fecha_inicio=01/03/2025").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/reservas?cliente_id=abc").Code)
}

func TestHandler_ListUnknownStatus(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, mock.Anything).Return(nil, reservationsService.ErrInvalidInput)

	rec := serve(newRouter(svc), http.MethodGet, "/reservas?estado=PERDIDA")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HistoryRoutedBeforeID(t *testing.T) {
	svc := &mockService{}
	svc.On("History", mock.Anything).Return([]models.ReservationResponse{{ID: 3, Status: "COMPLETADA"}}, nil)

	rec := serve(newRouter(svc), http.MethodGet, "/reservas/historial")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "COMPLETADA")
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestHandler_Cancel(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, int64(1)).Return(&models.ReservationResponse{ID: 1, Status: "CANCELADA"}, nil)
	svc.On("Cancel", mock.Anything, int64(2)).Return(nil, reservationsService.ErrCannotCancel)
	svc.On("Cancel", mock.Anything, int64(3)).Return(nil, reservationsService.ErrReservationNotFound)
	r := newRouter(svc)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPut, "/reservas/1/cancelar").Code)

	rec := serve(r, http.MethodPut, "/reservas/2/cancelar")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgCannotCancel)

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodPut, "/reservas/3/cancelar").Code)
}
