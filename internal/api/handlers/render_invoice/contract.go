package render_invoice

import (
	"context"

	renderInvoice "github.com/m04kA/SMC-HotelService/internal/usecase/render_invoice"
)

type RenderInvoiceUseCase interface {
	Execute(ctx context.Context, req *renderInvoice.Request) (*renderInvoice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
