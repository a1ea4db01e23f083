package check_in

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	checkIn "github.com/m04kA/SMC-HotelService/internal/usecase/check_in"
)

type fakeUseCase struct {
	got *checkIn.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkIn.Request) (*models.ReservationResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationResponse{ID: req.ReservationID, Status: "CHECKIN"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func call(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkin/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_WithoutBody(t *testing.T) {
	uc := &fakeUseCase{}
	rec := call(NewHandler(uc, nopLogger{}), "3", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), uc.got.ReservationID)
	assert.Nil(t, uc.got.Contact)
}

func TestHandler_WithContactUpdate(t *testing.T) {
	uc := &fakeUseCase{}
	rec := call(NewHandler(uc, nopLogger{}), "3", `{"telefono":"+54 11 5555"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got.Contact)
	assert.Equal(t, "+54 11 5555", *uc.got.Contact.Phone)
	assert.Nil(t, uc.got.Contact.FullName)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, call(NewHandler(&fakeUseCase{}, nopLogger{}), "abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, call(NewHandler(&fakeUseCase{}, nopLogger{}), "3", `{"email":"no-es-email"}`).Code)

	tests := map[error]int{
		checkIn.ErrReservationNotFound: http.StatusNotFound,
		checkIn.ErrInvalidStatus:       http.StatusBadRequest,
		checkIn.ErrRoomBlocked:         http.StatusConflict,
		checkIn.ErrInternal:            http.StatusInternalServerError,
	}
	for err, code := range tests {
		rec := call(NewHandler(&fakeUseCase{err: err}, nopLogger{}), "3", "")
		assert.Equal(t, code, rec.Code, err.Error())
	}
}
