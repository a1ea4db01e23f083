package export_history

import (
	"context"

	exportHistory "github.com/m04kA/SMC-HotelService/internal/usecase/export_history"
)

type ExportHistoryUseCase interface {
	Execute(ctx context.Context, req *exportHistory.Request) (*exportHistory.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
