package render_invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/usecase/get_folio"
)

// UseCase use case печатной формы счета (PDF)
type UseCase struct {
	folios       FolioLoader
	hotel        Hotel
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(folios FolioLoader, hotel Hotel, logger Logger) *UseCase {
	return &UseCase{
		folios:       folios,
		hotel:        hotel,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute рендерит текущий счет бронирования. Ничего не сохраняет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RenderInvoice: reservation id=%d", req.ReservationID)

	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	folio, err := uc.folios.Load(ctx, &get_folio.Request{ReservationID: req.ReservationID})
	if err != nil {
		if errors.Is(err, get_folio.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: failed to load folio: %v", ErrInternal, err)
	}

	content, err := renderPDF(uc.hotel, folio, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("RenderInvoice: failed to render pdf for reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to render pdf: %v", ErrInternal, err)
	}

	uc.logger.Info("RenderInvoice: reservation id=%d, %d bytes", req.ReservationID, len(content))

	return &Response{
		FileName: fmt.Sprintf("factura-%d.pdf", req.ReservationID),
		Content:  content,
	}, nil
}
