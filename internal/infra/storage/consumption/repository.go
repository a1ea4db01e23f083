package consumption

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/pgerrors"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"reserva_id",
	"producto_id",
	"concepto",
	"origen",
	"cantidad",
	"precio_unitario",
	"fecha_consumo",
	"created_at",
}

// Repository репозиторий строк расходов по бронированию
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, c *domain.Consumption) (*domain.Consumption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("consumos").
		Columns("reserva_id", "producto_id", "concepto", "origen", "cantidad", "precio_unitario", "fecha_consumo").
		Values(c.ReservationID, c.ProductID, c.Concept, c.Origin, c.Quantity, c.UnitPrice, c.ConsumedOn).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, mapWriteError("Create", err)
	}

	return c, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Consumption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("consumos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanConsumption(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConsumptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan consumption: %v", ErrScanRow, err)
	}

	return c, nil
}

// ListByReservation возвращает расходы бронирования в порядке добавления
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Consumption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectByReservation(reservationID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Consumption, 0)
	for rows.Next() {
		c, err := scanConsumption(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByReservation - scan row: %v", ErrScanRow, err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("consumos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrConsumptionNotFound
	}

	return nil
}

func selectByReservation(reservationID int64) squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From("consumos").
		Where(squirrel.Eq{"reserva_id": reservationID}).
		OrderBy("fecha_consumo ASC", "id ASC")
}

func mapWriteError(op string, err error) error {
	switch {
	case pgerrors.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s: %s", ErrInvalidReference, op, pgerrors.Constraint(err))
	case pgerrors.IsCheckViolation(err):
		return fmt.Errorf("%w: %s: %s", ErrConstraint, op, pgerrors.Constraint(err))
	default:
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanConsumption(row scanner) (*domain.Consumption, error) {
	var (
		c         domain.Consumption
		productID sql.NullInt64
	)

	err := row.Scan(
		&c.ID,
		&c.ReservationID,
		&productID,
		&c.Concept,
		&c.Origin,
		&c.Quantity,
		&c.UnitPrice,
		&c.ConsumedOn,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if productID.Valid {
		c.ProductID = &productID.Int64
	}

	return &c, nil
}
