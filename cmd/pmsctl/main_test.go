package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/pkg/pmsclient"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newAPI(t *testing.T, h http.Handler) *pmsclient.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return pmsclient.New(srv.URL, 2*time.Second, nopLogger{})
}

func TestRun_Folio(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/reservas/4/cuenta", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"reserva":{"id":4},"noches":2,"precio_noche":80.00,
			"totales":{"total_a_pagar":160.00,"pagado":0,"saldo_pendiente":160.00,"estado_pago":"PENDIENTE"}}`))
	})
	api := newAPI(t, mux)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), api, []string{"folio", "4"}, &out))
	assert.Contains(t, out.String(), `"saldo_pendiente": 160.00`)
}

func TestRun_ReserveSendsRate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/reservas", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writeJSON(w, http.StatusOK, []pmsclient.Reservation{})
			return
		}
		var req pmsclient.CreateReservationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(3), req.RoomID)
		if assert.NotNil(t, req.NightlyRate) {
			assert.Equal(t, "75.5", req.NightlyRate.String())
		}
		writeJSON(w, http.StatusCreated, pmsclient.Reservation{ID: 12})
	})
	mux.HandleFunc("/reservas/12", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, pmsclient.Reservation{ID: 12, RoomID: 3, Status: "PENDIENTE"})
	})
	api := newAPI(t, mux)

	var out bytes.Buffer
	err := run(context.Background(), api, []string{"reserve", "3", "7", "2030-06-01", "2030-06-03", "75.50"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"estado": "PENDIENTE"`)
}

func TestRun_ConflictMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/reservas", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []pmsclient.Reservation{{
			ID: 9, RoomID: 3, Status: "CHECKIN",
			EntryDate: types.MustParseDate("2030-05-30"), ExitDate: types.MustParseDate("2030-06-02"),
		}})
	})
	api := newAPI(t, mux)

	err := run(context.Background(), api, []string{"reserve", "3", "7", "2030-06-01", "2030-06-03"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserva 9")
}

func TestRun_UsageErrors(t *testing.T) {
	api := newAPI(t, http.NotFoundHandler())

	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"delete", "1"}},
		{name: "missing id", args: []string{"folio"}},
		{name: "bad id", args: []string{"cancel", "abc"}},
		{name: "bad date", args: []string{"reserve", "1", "2", "01/06/2030", "2030-06-03"}},
		{name: "sub-cent rate", args: []string{"reserve", "1", "2", "2030-06-01", "2030-06-03", "10.005"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), api, tt.args, &bytes.Buffer{})
			assert.ErrorIs(t, err, errUsage)
		})
	}
}
