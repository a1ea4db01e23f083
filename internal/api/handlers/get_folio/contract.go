package get_folio

import (
	"context"

	getFolio "github.com/m04kA/SMC-HotelService/internal/usecase/get_folio"
)

type GetFolioUseCase interface {
	Execute(ctx context.Context, req *getFolio.Request) (*getFolio.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
