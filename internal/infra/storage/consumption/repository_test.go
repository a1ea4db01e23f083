package consumption

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
	query, args, err := selectByReservation(9).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM consumos WHERE reserva_id = $1")
	assert.Contains(t, query, "ORDER BY fecha_consumo ASC, id ASC")
	assert.Equal(t, []interface{}{int64(9)}, args)
}

func TestMapWriteError(t *testing.T) {
	assert.ErrorIs(t, mapWriteError("Create", &pq.Error{Code: "23503", Constraint: "consumos_reserva_id_fkey"}), ErrInvalidReference)
	assert.ErrorIs(t, mapWriteError("Create", &pq.Error{Code: "23514", Constraint: "consumos_cantidad_check"}), ErrConstraint)
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

func TestScanConsumption_ManualRowWithoutProduct(t *testing.T) {
	day := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	c, err := scanConsumption(rowStub{int64(4), int64(9), nil, "Lavanderia", "MANUAL", 2, "12.50", day, day})
	require.NoError(t, err)

	assert.Nil(t, c.ProductID)
	assert.Equal(t, domain.OriginManual, c.Origin)
	assert.Equal(t, 2, c.Quantity)
	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("25")))
	assert.Equal(t, "2024-06-02", c.ConsumedOn.String())
}
