package promo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TaxiBooking/pkg/psqlbuilder"
)

const (
	uniqueViolation = pq.ErrorCode("23505")
	checkViolation  = pq.ErrorCode("23514")
)

var columns = []string{
	"id",
	"code",
	"discount_percent",
	"discount_flat",
	"max_uses",
	"used_count",
	"active",
	"valid_from",
	"valid_to",
	"created_at",
	"updated_at",
}

// Repository репозиторий промокодов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает промокод
func (r *Repository) Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promo_codes").
		Columns(
			"code",
			"discount_percent",
			"discount_flat",
			"max_uses",
			"active",
			"valid_from",
			"valid_to",
		).
		Values(
			promo.Code,
			promo.DiscountPercent,
			promo.DiscountFlat,
			promo.MaxUses,
			promo.Active,
			promo.ValidFrom,
			promo.ValidTo,
		).
		Suffix("RETURNING id, used_count, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&promo.ID,
		&promo.UsedCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrPromoAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return promo, nil
}

// Update обновляет условия промокода по коду, used_count не меняется
func (r *Repository) Update(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promo_codes").
		Set("discount_percent", promo.DiscountPercent).
		Set("discount_flat", promo.DiscountFlat).
		Set("max_uses", promo.MaxUses).
		Set("active", promo.Active).
		Set("valid_from", promo.ValidFrom).
		Set("valid_to", promo.ValidTo).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"code": promo.Code}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanPromo(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == checkViolation {
			return nil, ErrUsageBelowCount
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// GetByCode получает промокод по коду
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("promo_codes").
		Where(squirrel.Eq{"code": code})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	promo, err := scanPromo(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan promo: %v", ErrScanRow, err)
	}

	return promo, nil
}

// List получает все промокоды, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("promo_codes").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	promos := make([]*domain.PromoCode, 0)
	for rows.Next() {
		promo, err := scanPromo(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		promos = append(promos, promo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return promos, nil
}

// IncrementUsage увеличивает used_count на единицу, если лимит не исчерпан
// Проверка лимита выполняется в том же UPDATE, возвращает новое значение used_count
func (r *Repository) IncrementUsage(ctx context.Context, id int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promo_codes").
		Set("used_count", squirrel.Expr("used_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Or{
			squirrel.Eq{"max_uses": 0},
			squirrel.Expr("used_count < max_uses"),
		}).
		Suffix("RETURNING used_count").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	var usedCount int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&usedCount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrLimitReached
	}
	if err != nil {
		return 0, fmt.Errorf("%w: IncrementUsage - execute update: %v", ErrExecQuery, err)
	}

	return usedCount, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPromo(row rowScanner) (*domain.PromoCode, error) {
	var promo domain.PromoCode
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&promo.ID,
		&promo.Code,
		&promo.DiscountPercent,
		&promo.DiscountFlat,
		&promo.MaxUses,
		&promo.UsedCount,
		&promo.Active,
		&promo.ValidFrom,
		&promo.ValidTo,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return &promo, nil
}
