package change_room

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
	changeRoom "github.com/m04kA/SMC-HotelService/internal/usecase/change_room"
)

type fakeUseCase struct {
	got *changeRoom.Request
	res *models.ReservationResponse
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *changeRoom.Request) (*models.ReservationResponse, error) {
	f.got = req
	return f.res, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func call(uc ChangeRoomUseCase, id, roomID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/checkin/"+id+"/cambiar-habitacion/"+roomID, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id, "roomId": roomID})
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{res: &models.ReservationResponse{ID: 3, RoomID: 8, RoomNumber: "201"}}

	rec := call(uc, "3", "8")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), uc.got.ReservationID)
	assert.Equal(t, int64(8), uc.got.RoomID)
	assert.Contains(t, rec.Body.String(), `"numero_habitacion":"201"`)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"reserva inexistente", changeRoom.ErrReservationNotFound, http.StatusNotFound},
		{"habitación inexistente", changeRoom.ErrRoomNotFound, http.StatusNotFound},
		{"ya en check-in", changeRoom.ErrInvalidStatus, http.StatusBadRequest},
		{"habitación en limpieza", changeRoom.ErrRoomNotAvailable, http.StatusConflict},
		{"fechas ocupadas", fmt.Errorf("%w: reservation 7", changeRoom.ErrOverlap), http.StatusConflict},
		{"misma habitación", changeRoom.ErrInvalidInput, http.StatusBadRequest},
		{"fallo interno", changeRoom.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(&fakeUseCase{err: tt.err}, "3", "8")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_InvalidPath(t *testing.T) {
	uc := &fakeUseCase{}

	assert.Equal(t, http.StatusBadRequest, call(uc, "x", "8").Code)
	assert.Equal(t, http.StatusBadRequest, call(uc, "3", "0").Code)
	assert.Nil(t, uc.got)
}
