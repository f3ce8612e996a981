package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
	"github.com/m04kA/SMC-TaxiBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TaxiBooking/pkg/psqlbuilder"
)

const (
	uniqueViolation     = pq.ErrorCode("23505")
	activeSlotIndex     = "bookings_active_slot_uniq"
	bookingNumberUnique = "bookings_booking_number_key"
)

var columns = []string{
	"id",
	"booking_number",
	"customer_name",
	"customer_email",
	"customer_phone",
	"pickup_address",
	"flight_number",
	"passengers",
	"notes",
	"pickup_date",
	"pickup_time",
	"trip_type",
	"status",
	"payment_status",
	"base_price",
	"price",
	"promo_code",
	"promo_discount_amount",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование
// Частичный уникальный индекс по (pickup_date, pickup_time) не даёт создать второе активное
// бронирование на слот, нарушение возвращается как ErrSlotTaken
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"booking_number",
			"customer_name",
			"customer_email",
			"customer_phone",
			"pickup_address",
			"flight_number",
			"passengers",
			"notes",
			"pickup_date",
			"pickup_time",
			"trip_type",
			"status",
			"payment_status",
			"base_price",
			"price",
			"promo_code",
			"promo_discount_amount",
		).
		Values(
			booking.ID,
			booking.BookingNumber,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.PickupAddress,
			booking.FlightNumber,
			booking.Passengers,
			booking.Notes,
			booking.PickupDate.Format(domain.DateFormat),
			booking.PickupTime,
			booking.TripType,
			booking.Status,
			booking.PaymentStatus,
			booking.BasePrice,
			booking.Price,
			booking.PromoCode,
			booking.PromoDiscountAmount,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			switch pqErr.Constraint {
			case activeSlotIndex:
				return nil, fmt.Errorf("%w: Create - %s", ErrSlotTaken, pqErr.Constraint)
			case bookingNumberUnique:
				return nil, fmt.Errorf("%w: Create - %s", ErrDuplicateBookingNumber, pqErr.Constraint)
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetSlotOccupants получает неотменённые бронирования слота (включая завершённые)
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) GetSlotOccupants(ctx context.Context, date time.Time, slot domain.Slot) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"pickup_date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"pickup_time": slot}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.query(ctx, "GetSlotOccupants", selectBuilder)
}

// UpdateStatus переводит бронирование из статуса from в статус to
// При переходе в CANCELLED проставляется cancelled_at
// Если статус уже не from, возвращает ErrStatusConflict
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) error {
	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()"))

	if to == domain.StatusCancelled {
		updateBuilder = updateBuilder.Set("cancelled_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	changed, err := r.exec(ctx, "UpdateStatus", query, args)
	if err != nil {
		return err
	}
	if !changed {
		return ErrStatusConflict
	}

	return nil
}

// CancelAndRefund отменяет бронирование с возвратом оплаты
// Возвращает false, если бронирование уже отменено
func (r *Repository) CancelAndRefund(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("payment_status", domain.PaymentRefunded).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CancelAndRefund - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "CancelAndRefund", query, args)
}

// List получает бронирования для админки с фильтрацией по дате подачи и статусу
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"pickup_date": filter.From.Format(domain.DateFormat)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"pickup_date": filter.To.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	selectBuilder = selectBuilder.OrderBy("pickup_date DESC", "pickup_time ASC", "created_at DESC")

	return r.query(ctx, "List", selectBuilder)
}

// ListCreatedBetween получает бронирования, созданные в полуинтервале [from, to)
func (r *Repository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.Lt{"created_at": to}).
		OrderBy("created_at ASC")

	return r.query(ctx, "ListCreatedBetween", selectBuilder)
}

func (r *Repository) query(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

func (r *Repository) exec(ctx context.Context, op, query string, args []interface{}) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BookingNumber,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.PickupAddress,
		&booking.FlightNumber,
		&booking.Passengers,
		&booking.Notes,
		&booking.PickupDate,
		&booking.PickupTime,
		&booking.TripType,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.BasePrice,
		&booking.Price,
		&booking.PromoCode,
		&booking.PromoDiscountAmount,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
