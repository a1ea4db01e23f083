package render_invoice

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/usecase/get_folio"
)

// FolioLoader источник рассчитанного счета
type FolioLoader interface {
	Load(ctx context.Context, req *get_folio.Request) (*get_folio.Folio, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
