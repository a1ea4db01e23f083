package get_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/m04kA/SMC-HotelService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

type fakeUseCase struct{ got *getAvailability.Request }

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.got = req
	date := types.MustParseDate("2024-06-10")
	if req.Date != nil {
		date = *req.Date
	}
	return &getAvailability.Response{
		Date:  date,
		Rooms: []getAvailability.RoomStatus{{ID: 1, Number: "101", Availability: "OCUPADA"}},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Snapshot(t *testing.T) {
	uc := &fakeUseCase{}
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/disponibilidad?fecha=2024-06-15", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-06-15", uc.got.Date.String())
	assert.Contains(t, rec.Body.String(), `"fecha":"2024-06-15"`)
}

func TestHandler_RoomsReturnsArray(t *testing.T) {
	uc := &fakeUseCase{}
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).HandleRooms(rec, httptest.NewRequest(http.MethodGet, "/api/v1/habitaciones", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.Date)
	assert.Equal(t, byte('['), rec.Body.Bytes()[0])
}

func TestHandler_InvalidDate(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeUseCase{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/disponibilidad?fecha=mañana", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
