package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/m04kA/SMC-HotelService/internal/config"
)

// NewCORS CORS для фронтенда ресепшена
func NewCORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   []string{RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	return c.Handler
}
