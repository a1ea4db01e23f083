package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

// Recovery перехватывает панику обработчика и отвечает 500
func Recovery(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			defer func() {
				if err := recover(); err != nil {
					logger.Error("PANIC %s %s: %v\n%s", r.Method, r.URL.Path, err, debug.Stack())
					if !rec.written {
						handlers.RespondInternalError(rec)
					}
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
