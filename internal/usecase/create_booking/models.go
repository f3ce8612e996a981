package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName  string    // Имя клиента
	CustomerEmail string    // Email клиента
	CustomerPhone string    // Телефон клиента
	PickupAddress string    // Адрес подачи
	FlightNumber  *string   // Номер рейса (опционально)
	Passengers    int       // Количество пассажиров
	Notes         *string   // Комментарий (опционально)
	PickupDate    time.Time // Дата подачи (без времени)
	PickupTime    string    // Слот: morning или evening
	TripType      string    // Направление поездки
	PromoCode     *string   // Промокод (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}

// Settings тарифы и ограничения, читаются из конфигурации
type Settings struct {
	Location           *time.Location
	AdvanceBookingDays int // 0 - без ограничения
	Tariffs            map[domain.TripType]decimal.Decimal
}
