package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Cameron8325/teahouse-booking/internal/domain"
	"github.com/Cameron8325/teahouse-booking/pkg/dbmetrics"
	"github.com/Cameron8325/teahouse-booking/pkg/psqlbuilder"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// Repository репозиторий для работы с доступными днями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступных дней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все доступные дни, отсортированные по дате по возрастанию
func (r *Repository) List(ctx context.Context) ([]*domain.AvailableDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"day_type",
		"created_at",
		"updated_at",
	).
		From("available_days").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDays(rows)
}

// ListRange получает доступные дни закрытого интервала [start, end]
// Внутри транзакции добавляет FOR UPDATE для блокировки диапазона
// (используется в usecase назначения доступности для check-then-write)
func (r *Repository) ListRange(ctx context.Context, start, end types.DateString) ([]*domain.AvailableDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"date",
		"day_type",
		"created_at",
		"updated_at",
	).
		From("available_days").
		Where(squirrel.GtOrEq{"date": start.String()}).
		Where(squirrel.LtOrEq{"date": end.String()}).
		OrderBy("date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDays(rows)
}

// GetByDate получает доступный день по дате
func (r *Repository) GetByDate(ctx context.Context, date types.DateString) (*domain.AvailableDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"day_type",
		"created_at",
		"updated_at",
	).
		From("available_days").
		Where(squirrel.Eq{"date": date.String()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var day domain.AvailableDay
	var dbDate time.Time
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.ID,
		&dbDate,
		&day.Type,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan day: %v", ErrScanRow, err)
	}

	day.Date = types.NewDateString(dbDate)
	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return &day, nil
}

// Upsert создает доступный день или обновляет его тип, если день уже существует
// Семантика upsert гарантирует инвариант "не более одной записи на дату"
func (r *Repository) Upsert(ctx context.Context, date types.DateString, dayType domain.DayType) (*domain.AvailableDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("available_days").
		Columns("date", "day_type").
		Values(date.String(), dayType).
		Suffix("ON CONFLICT (date) DO UPDATE SET day_type = EXCLUDED.day_type, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	day := domain.AvailableDay{
		Date: date,
		Type: dayType,
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	day.CreatedAt = createdAt.Time
	day.UpdatedAt = updatedAt.Time

	return &day, nil
}

// Delete удаляет доступный день по дате
func (r *Repository) Delete(ctx context.Context, date types.DateString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("available_days").
		Where(squirrel.Eq{"date": date.String()}).
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
		return ErrDayNotFound
	}

	return nil
}

// scanDays сканирует результаты запроса в слайс доступных дней
func (r *Repository) scanDays(rows *sql.Rows) ([]*domain.AvailableDay, error) {
	days := make([]*domain.AvailableDay, 0)

	for rows.Next() {
		var day domain.AvailableDay
		var dbDate time.Time
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&day.ID,
			&dbDate,
			&day.Type,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanDays - scan row: %v", ErrScanRow, err)
		}

		day.Date = types.NewDateString(dbDate)
		day.CreatedAt = createdAt.Time
		day.UpdatedAt = updatedAt.Time

		days = append(days, &day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDays - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}
