package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(fakePinger{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, rec.Body.String())
}

func TestHandler_HandleDatabaseDown(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(fakePinger{err: errors.New("refused")}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "down")
}
