package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/pgerrors"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// Колонки бронирования вместе с денормализованными данными гостя и номера
var columns = []string{
	"r.id",
	"r.habitacion_id",
	"r.cliente_id",
	"r.fecha_entrada",
	"r.fecha_salida",
	"r.precio_noche",
	"r.precio_total",
	"r.estado",
	"r.checkin_timestamp",
	"r.checkout_timestamp",
	"r.created_at",
	"r.updated_at",
	"COALESCE(c.nombre_completo, '')",
	"COALESCE(c.dni, '')",
	"COALESCE(h.numero, '')",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectReservations() squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From("reservas r").
		LeftJoin("clientes c ON c.id = r.cliente_id").
		LeftJoin("habitaciones h ON h.id = r.habitacion_id")
}

// Create создает бронирование.
// Пересечение с активным бронированием того же номера отсекается ограничением
// reservas_sin_solapamiento и возвращается как ErrOverlap
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservas").
		Columns(
			"habitacion_id",
			"cliente_id",
			"fecha_entrada",
			"fecha_salida",
			"precio_noche",
			"precio_total",
			"estado",
		).
		Values(
			res.RoomID,
			res.ClientID,
			res.EntryDate,
			res.ExitDate,
			res.NightlyRate,
			res.TotalPrice,
			res.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, mapWriteError("Create", err)
	}

	return res, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции строка бронирования блокируется (FOR UPDATE OF r)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectReservations().Where(squirrel.Eq{"r.id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List получает бронирования с фильтрацией
//
// Примеры:
//
// 1. Активные бронирования номера, пересекающие период [from, to):
//    domain.ReservationFilter{RoomID: &id, From: &from, To: &to, Statuses: domain.ActiveStatuses}
//
// 2. Заезды сегодня:
//    domain.ReservationFilter{EntryOn: &today, Statuses: []domain.ReservationStatus{domain.StatusPending}}
//
// 3. История:
//    domain.ReservationFilter{Statuses: domain.HistoryStatuses, NewestFirst: true}
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := applyFilter(selectReservations(), filter)
	if filter.NewestFirst {
		builder = builder.OrderBy("r.id DESC")
	} else {
		builder = builder.OrderBy("r.fecha_entrada ASC", "r.id ASC")
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// Count считает бронирования по фильтру
func (r *Repository) Count(ctx context.Context, filter domain.ReservationFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := applyFilter(
		psqlbuilder.Select("COUNT(*)").
			From("reservas r").
			LeftJoin("clientes c ON c.id = r.cliente_id"),
		filter,
	)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update сохраняет изменяемые поля бронирования (номер, даты, цены, статус, отметки времени)
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("habitacion_id", res.RoomID).
		Set("fecha_entrada", res.EntryDate).
		Set("fecha_salida", res.ExitDate).
		Set("precio_noche", res.NightlyRate).
		Set("precio_total", res.TotalPrice).
		Set("estado", res.Status).
		Set("checkin_timestamp", res.CheckInAt).
		Set("checkout_timestamp", res.CheckOutAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrReservationNotFound
	}
	if err != nil {
		return mapWriteError("Update", err)
	}

	return nil
}

// UpdateStatus меняет только статус
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("estado", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError("UpdateStatus", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// FinalizeOverdue закрывает заселенные бронирования, дата выезда которых уже прошла
func (r *Repository) FinalizeOverdue(ctx context.Context, today types.Date) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservas").
		Set("estado", domain.StatusFinalized).
		Set("checkout_timestamp", squirrel.Expr("COALESCE(checkout_timestamp, NOW())")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"estado": domain.StatusCheckedIn}).
		Where(squirrel.Lt{"fecha_salida": today}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: FinalizeOverdue - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: FinalizeOverdue - execute update: %v", ErrExecQuery, err)
	}

	return result.RowsAffected()
}

// Delete удаляет бронирование вместе с его расходами и оплатами (ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservas").
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
		return ErrReservationNotFound
	}

	return nil
}

func applyFilter(builder squirrel.SelectBuilder, filter domain.ReservationFilter) squirrel.SelectBuilder {
	if filter.RoomID != nil {
		builder = builder.Where(squirrel.Eq{"r.habitacion_id": *filter.RoomID})
	}
	if filter.ClientID != nil {
		builder = builder.Where(squirrel.Eq{"r.cliente_id": *filter.ClientID})
	}
	// Пересечение с периодом: выезд после начала и заезд до конца
	if filter.From != nil {
		builder = builder.Where(squirrel.Gt{"r.fecha_salida": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"r.fecha_entrada": *filter.To})
	}
	if filter.EntryOn != nil {
		builder = builder.Where(squirrel.Eq{"r.fecha_entrada": *filter.EntryOn})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		builder = builder.Where(squirrel.Eq{"r.estado": statuses})
	}
	if filter.Query != "" {
		pattern := psqlbuilder.Contains(filter.Query)
		or := squirrel.Or{
			squirrel.ILike{"c.nombre_completo": pattern},
			squirrel.ILike{"c.dni": pattern},
		}
		if id, err := strconv.ParseInt(filter.Query, 10, 64); err == nil {
			or = append(or, squirrel.Eq{"r.id": id})
		}
		builder = builder.Where(or)
	}
	return builder
}

func mapWriteError(op string, err error) error {
	switch {
	case pgerrors.IsExclusionViolation(err):
		return ErrOverlap
	case pgerrors.IsSerializationFailure(err):
		return ErrSerialization
	case pgerrors.IsForeignKeyViolation(err):
		return ErrInvalidReference
	default:
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row scanner) (*domain.Reservation, error) {
	var (
		res        domain.Reservation
		checkInAt  sql.NullTime
		checkOutAt sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.RoomID,
		&res.ClientID,
		&res.EntryDate,
		&res.ExitDate,
		&res.NightlyRate,
		&res.TotalPrice,
		&res.Status,
		&checkInAt,
		&checkOutAt,
		&res.CreatedAt,
		&res.UpdatedAt,
		&res.ClientName,
		&res.ClientDNI,
		&res.RoomNumber,
	)
	if err != nil {
		return nil, err
	}

	if checkInAt.Valid {
		res.CheckInAt = &checkInAt.Time
	}
	if checkOutAt.Valid {
		res.CheckOutAt = &checkOutAt.Time
	}

	return &res, nil
}
