package reservation

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

func TestApplyFilter_ActiveOverlapForRoom(t *testing.T) {
	from := types.MustParseDate("2024-06-10")
	to := types.MustParseDate("2024-06-12")

	query, args, err := applyFilter(selectReservations(), domain.ReservationFilter{
		RoomID:   ptr.Ptr(int64(3)),
		From:     &from,
		To:       &to,
		Statuses: domain.ActiveStatuses,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "r.habitacion_id = $1")
	assert.Contains(t, query, "r.fecha_salida > $2")
	assert.Contains(t, query, "r.fecha_entrada < $3")
	assert.Contains(t, query, "r.estado IN ($4,$5)")
	assert.Equal(t, []interface{}{int64(3), "2024-06-10", "2024-06-12", "PENDIENTE", "CHECKIN"}, args)
}

func TestApplyFilter_SearchByIDOrName(t *testing.T) {
	query, args, err := applyFilter(selectReservations(), domain.ReservationFilter{Query: "42"}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "c.nombre_completo ILIKE $1")
	assert.Contains(t, query, "c.dni ILIKE $2")
	assert.Contains(t, query, "r.id = $3")
	assert.Equal(t, []interface{}{"%42%", "%42%", int64(42)}, args)
}

func TestApplyFilter_SearchByNameOnly(t *testing.T) {
	query, _, err := applyFilter(selectReservations(), domain.ReservationFilter{Query: "garcia"}).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "r.id =")
}

func TestApplyFilter_SearchEscapesWildcards(t *testing.T) {
	_, args, err := applyFilter(selectReservations(), domain.ReservationFilter{Query: "%%"}).ToSql()
	require.NoError(t, err)

	// "%%" ищется буквально, а не совпадает со всеми гостями
	assert.Equal(t, []interface{}{`%\%\%%`, `%\%\%%`}, args)
}

func TestMapWriteError(t *testing.T) {
	assert.ErrorIs(t, mapWriteError("Create", &pq.Error{Code: "23P01"}), ErrOverlap)
	assert.ErrorIs(t, mapWriteError("Create", &pq.Error{Code: "40001"}), ErrSerialization)
	assert.ErrorIs(t, mapWriteError("Create", &pq.Error{Code: "23503"}), ErrInvalidReference)
	assert.ErrorIs(t, mapWriteError("Create", errors.New("conn reset")), ErrExecQuery)
}
