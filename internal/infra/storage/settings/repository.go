package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Cameron8325/teahouse-booking/pkg/dbmetrics"
	"github.com/Cameron8325/teahouse-booking/pkg/psqlbuilder"
	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// CapacityOverride переопределение вместимости для конкретной даты
// Позволяет администратору поднять или опустить потолок записей на день
type CapacityOverride struct {
	ID        int64
	Date      types.DateString
	Capacity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository репозиторий переопределений вместимости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает переопределение вместимости для даты
func (r *Repository) GetByDate(ctx context.Context, date types.DateString) (*CapacityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"capacity",
		"created_at",
		"updated_at",
	).
		From("day_capacity_overrides").
		Where(squirrel.Eq{"date": date.String()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var override CapacityOverride
	var dbDate time.Time
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&dbDate,
		&override.Capacity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan override: %v", ErrScanRow, err)
	}

	override.Date = types.NewDateString(dbDate)
	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

// ListAll получает все переопределения вместимости
// Используется при композиции календаря, чтобы не ходить в БД по каждой дате
func (r *Repository) ListAll(ctx context.Context) ([]*CapacityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"capacity",
		"created_at",
		"updated_at",
	).
		From("day_capacity_overrides").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*CapacityOverride, 0)
	for rows.Next() {
		var override CapacityOverride
		var dbDate time.Time
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&override.ID,
			&dbDate,
			&override.Capacity,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}

		override.Date = types.NewDateString(dbDate)
		override.CreatedAt = createdAt.Time
		override.UpdatedAt = updatedAt.Time

		overrides = append(overrides, &override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// Upsert создает или обновляет переопределение вместимости для даты
func (r *Repository) Upsert(ctx context.Context, date types.DateString, capacity int) (*CapacityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("day_capacity_overrides").
		Columns("date", "capacity").
		Values(date.String(), capacity).
		Suffix("ON CONFLICT (date) DO UPDATE SET capacity = EXCLUDED.capacity, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	override := CapacityOverride{
		Date:     date,
		Capacity: capacity,
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

// Delete удаляет переопределение вместимости для даты
func (r *Repository) Delete(ctx context.Context, date types.DateString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("day_capacity_overrides").
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
		return ErrOverrideNotFound
	}

	return nil
}
