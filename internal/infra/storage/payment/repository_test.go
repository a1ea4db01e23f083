package payment

import (
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

func TestSelectByReservation(t *testing.T) {
	query, args, err := selectByReservation(3).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM pagos WHERE reserva_id = $1")
	assert.Contains(t, query, "ORDER BY fecha_pago ASC, id ASC")
	assert.Equal(t, []interface{}{int64(3)}, args)
}

func TestMapWriteError(t *testing.T) {
	// monto, округленный БД до 0.00, нарушает CHECK (monto > 0)
	assert.ErrorIs(t, mapWriteError("Create", &pq.Error{Code: "23514", Constraint: "pagos_monto_check"}), ErrConstraint)
	assert.ErrorIs(t, mapWriteError("Create", &pq.Error{Code: "23503"}), ErrInvalidReference)
	assert.ErrorIs(t, mapWriteError("Create", errors.New("conn reset")), ErrExecQuery)
}

// rowStub отдает значения по порядку колонок, как *sql.Row
type rowStub []interface{}

func (r rowStub) Scan(dest ...interface{}) error {
	if len(dest) != len(r) {
		return errors.New("column count mismatch")
	}
	for i, v := range r {
		if s, ok := dest[i].(sql.Scanner); ok {
			if err := s.Scan(v); err != nil {
				return err
			}
			continue
		}
		target := reflect.ValueOf(dest[i]).Elem()
		target.Set(reflect.ValueOf(v).Convert(target.Type()))
	}
	return nil
}

func TestScanPayment(t *testing.T) {
	paidAt := time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)

	p, err := scanPayment(rowStub{int64(1), int64(3), "100.00", "TARJETA", nil, paidAt})
	require.NoError(t, err)

	assert.True(t, p.Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, domain.PaymentMethod("TARJETA"), p.Method)
	assert.Nil(t, p.Note)
	assert.Equal(t, paidAt, p.PaidAt)
}
