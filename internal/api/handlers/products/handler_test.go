package products

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	productsService "github.com/m04kA/SMC-HotelService/internal/service/products"
	"github.com/m04kA/SMC-HotelService/internal/service/products/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) Create(ctx context.Context, req *models.CreateProductRequest) (*models.ProductResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockService) GetByID(ctx context.Context, id int64) (*models.ProductResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockService) List(ctx context.Context, onlyActive bool) ([]models.ProductResponse, error) {
	args := m.Called(ctx, onlyActive)
	resp, _ := args.Get(0).([]models.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.ProductResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(svc ProductService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/productos", h.List).Methods(http.MethodGet)
	r.HandleFunc("/productos", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/productos/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/productos/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/productos/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestHandler_ListOnlyActive(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, true).Return([]models.ProductResponse{{ID: 1, Name: "Agua", Active: true}}, nil)
	r := newRouter(svc)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/productos?solo_activos=true", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/productos?solo_activos=quizas", "").Code)
	svc.AssertExpectations(t)
}

func TestHandler_CreateNegativePrice(t *testing.T) {
	rec := serve(newRouter(&mockService{}), http.MethodPost, "/productos", `{"nombre":"Agua","precio":-1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgNegativePrice)
}

func TestHandler_CreateNameTaken(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, productsService.ErrNameTaken)

	rec := serve(newRouter(svc), http.MethodPost, "/productos", `{"nombre":"Agua","precio":3.5}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_UpdateNotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("Update", mock.Anything, int64(4), mock.Anything).Return(nil, productsService.ErrProductNotFound)

	rec := serve(newRouter(svc), http.MethodPut, "/productos/4", `{"activo":false}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
