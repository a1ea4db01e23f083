package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/pgerrors"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// Repository репозиторий оплат
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pagos").
		Columns("reserva_id", "monto", "metodo", "nota").
		Values(p.ReservationID, p.Amount, p.Method, p.Note).
		Suffix("RETURNING id, fecha_pago").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.PaidAt); err != nil {
		return nil, mapWriteError("Create", err)
	}

	return p, nil
}

func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Payment, error) {
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

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByReservation - scan row: %v", ErrScanRow, err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByReservation - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

func selectByReservation(reservationID int64) squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "reserva_id", "monto", "metodo", "nota", "fecha_pago").
		From("pagos").
		Where(squirrel.Eq{"reserva_id": reservationID}).
		OrderBy("fecha_pago ASC", "id ASC")
}

func mapWriteError(op string, err error) error {
	switch {
	case pgerrors.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s", ErrInvalidReference, op)
	case pgerrors.IsCheckViolation(err):
		return fmt.Errorf("%w: %s: %s", ErrConstraint, op, pgerrors.Constraint(err))
	default:
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row scanner) (*domain.Payment, error) {
	var (
		p    domain.Payment
		note sql.NullString
	)
	if err := row.Scan(&p.ID, &p.ReservationID, &p.Amount, &p.Method, &note, &p.PaidAt); err != nil {
		return nil, err
	}
	if note.Valid {
		p.Note = &note.String
	}
	return &p, nil
}
