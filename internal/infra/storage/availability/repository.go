package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TaxiBooking/pkg/psqlbuilder"
)

var columns = []string{
	"date",
	"morning_open",
	"evening_open",
	"max_bookings",
	"current_bookings",
	"created_at",
	"updated_at",
}

// Repository хранилище доступности слотов по датам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Ensure создает запись с открытыми слотами, если её ещё нет
// Конкурентные вызовы безопасны: существующая запись не меняется
func (r *Repository) Ensure(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability").
		Columns("date", "morning_open", "evening_open", "max_bookings", "current_bookings").
		Values(date.Format(domain.DateFormat), true, true, domain.DefaultMaxBookings, 0).
		Suffix("ON CONFLICT (date) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Ensure - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Ensure - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByDate получает запись доступности на дату
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.AvailabilityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("availability").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	record, err := scanRecord(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan record: %v", ErrScanRow, err)
	}

	return record, nil
}

// GetRange получает сохранённые записи в диапазоне дат включительно
// Даты без записи в результат не попадают
func (r *Repository) GetRange(ctx context.Context, from, to time.Time) ([]*domain.AvailabilityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("availability").
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": to.Format(domain.DateFormat)}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.AvailabilityRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRange - scan row: %v", ErrScanRow, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRange - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

// CloseSlot атомарно закрывает открытый слот под новое бронирование
// Возвращает false, если слот уже закрыт или записи нет
func (r *Repository) CloseSlot(ctx context.Context, date time.Time, slot domain.Slot) (bool, error) {
	if !slot.IsValid() {
		return false, ErrInvalidSlot
	}

	query, args, err := psqlbuilder.Update("availability").
		Set(slot.Column(), false).
		Set("current_bookings", squirrel.Expr("current_bookings + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{slot.Column(): true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CloseSlot - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, "CloseSlot", query, args)
}

// OpenSlot атомарно открывает закрытый слот
// releaseOccupant уменьшает счётчик бронирований (не ниже нуля)
func (r *Repository) OpenSlot(ctx context.Context, date time.Time, slot domain.Slot, releaseOccupant bool) (bool, error) {
	if !slot.IsValid() {
		return false, ErrInvalidSlot
	}

	updateBuilder := psqlbuilder.Update("availability").
		Set(slot.Column(), true)

	if releaseOccupant {
		updateBuilder = updateBuilder.Set("current_bookings", squirrel.Expr("GREATEST(current_bookings - 1, 0)"))
	}

	query, args, err := updateBuilder.
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{slot.Column(): false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: OpenSlot - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, "OpenSlot", query, args)
}

// BlockSlot закрывает слот вручную оператором, счётчик не меняется
func (r *Repository) BlockSlot(ctx context.Context, date time.Time, slot domain.Slot) (bool, error) {
	if !slot.IsValid() {
		return false, ErrInvalidSlot
	}

	query, args, err := psqlbuilder.Update("availability").
		Set(slot.Column(), false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{slot.Column(): true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: BlockSlot - build update query: %v", ErrBuildQuery, err)
	}

	return r.execConditional(ctx, "BlockSlot", query, args)
}

func (r *Repository) execConditional(ctx context.Context, op, query string, args []interface{}) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return rowsAffected == 1, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*domain.AvailabilityRecord, error) {
	var record domain.AvailabilityRecord
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&record.Date,
		&record.MorningOpen,
		&record.EveningOpen,
		&record.MaxBookings,
		&record.CurrentBookings,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return &record, nil
}
