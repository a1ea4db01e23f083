package room

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
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

func TestSelectByID_LocksInsideTransaction(t *testing.T) {
	query, args, err := selectByID(5, true).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "FROM habitaciones WHERE id = $1 FOR UPDATE")
	assert.Equal(t, []interface{}{int64(5)}, args)

	query, _, err = selectByID(5, false).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "FOR UPDATE")
}

func TestSelectList(t *testing.T) {
	query, args, err := selectList(nil).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY numero ASC")
	assert.Empty(t, args)

	query, args, err = selectList(ptr.Ptr(domain.RoomCleaning)).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE estado = $1")
	assert.Equal(t, []interface{}{domain.RoomCleaning}, args)
}

func TestMapWriteError(t *testing.T) {
	assert.ErrorIs(t, mapWriteError("Create", &pq.Error{Code: "23505"}), ErrRoomNumberTaken)

	err := mapWriteError("Update", errors.New("conn reset"))
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, err.Error(), "Update")
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

func TestScanRoom_ColumnOrder(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	room, err := scanRoom(rowStub{int64(3), "103", "SUITE", "250.00", "LIMPIEZA", now, now})
	require.NoError(t, err)

	assert.Equal(t, int64(3), room.ID)
	assert.Equal(t, "103", room.Number)
	assert.Equal(t, domain.RoomState("LIMPIEZA"), room.State)
	assert.True(t, room.BaseRate.Equal(decimal.NewFromInt(250)))
	assert.Len(t, columns, 7)
}
