package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// GetRequestID возвращает id запроса из контекста
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// RequestLogger присваивает запросу id (или берет из заголовка) и пишет строку в лог по завершении
func RequestLogger(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))

			duration := time.Since(start)
			switch {
			case rec.statusCode >= http.StatusInternalServerError:
				logger.Error("[%s] %s %s -> %d (%s)", id, r.Method, r.URL.Path, rec.statusCode, duration)
			case rec.statusCode >= http.StatusBadRequest:
				logger.Warn("[%s] %s %s -> %d (%s)", id, r.Method, r.URL.Path, rec.statusCode, duration)
			default:
				logger.Info("[%s] %s %s -> %d (%s)", id, r.Method, r.URL.Path, rec.statusCode, duration)
			}
		})
	}
}
