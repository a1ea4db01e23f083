package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	checkoutUC "github.com/m04kA/SMC-HotelService/internal/usecase/checkout"
)

type fakeUseCase struct{ err error }

func (f fakeUseCase) Execute(_ context.Context, req *checkoutUC.Request) (*checkoutUC.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &checkoutUC.Response{
		ReservationResponse: models.ReservationResponse{ID: req.ReservationID, Status: "FINALIZADA"},
		EarlyCheckout:       true,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func call(uc CheckoutUseCase, id string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/api/v1/reservas/"+id+"/checkout", nil), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandler_Checkout(t *testing.T) {
	rec := call(fakeUseCase{}, "4")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"estado":"FINALIZADA"`)
	assert.Contains(t, rec.Body.String(), `"salida_anticipada":true`)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, call(fakeUseCase{}, "0").Code)
	assert.Equal(t, http.StatusNotFound, call(fakeUseCase{err: checkoutUC.ErrReservationNotFound}, "4").Code)
	assert.Equal(t, http.StatusBadRequest, call(fakeUseCase{err: checkoutUC.ErrInvalidStatus}, "4").Code)
	assert.Equal(t, http.StatusInternalServerError, call(fakeUseCase{err: checkoutUC.ErrInternal}, "4").Code)
}
