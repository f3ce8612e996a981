package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Redis     RedisConfig     `toml:"redis"`
	Auth      AuthConfig      `toml:"auth"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Booking   BookingConfig   `toml:"booking"`
	Dashboard DashboardConfig `toml:"dashboard"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки кеша дашборда
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// AuthConfig настройки проверки JWT администратора
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
}

// RateLimitConfig лимит публичных запросов на изменение для одного IP
// TrustProxy включает X-Forwarded-For и X-Real-IP, только за доверенным прокси
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	TrustProxy        bool    `toml:"trust_proxy"`
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	Timezone           string             `toml:"timezone"`
	AdvanceBookingDays int                `toml:"advance_booking_days"`
	Tariffs            map[string]float64 `toml:"tariffs"`
}

// Location возвращает часовой пояс сервиса
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// TariffTable возвращает базовые цены по типам поездки
func (c BookingConfig) TariffTable() map[domain.TripType]decimal.Decimal {
	table := make(map[domain.TripType]decimal.Decimal, len(c.Tariffs))
	for trip, price := range c.Tariffs {
		table[domain.TripType(trip)] = domain.RoundMoney(decimal.NewFromFloat(price))
	}
	return table
}

// DashboardConfig настройки дашборда
type DashboardConfig struct {
	DefaultDays int `toml:"default_days"`
	CacheTTL    int `toml:"cache_ttl"` // секунды, 0 отключает кеш
}

// Load загружает конфигурацию из TOML файла
// CONFIG_PATH в окружении имеет приоритет над path
func Load(path string) (*Config, error) {
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		path = env
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Booking.AdvanceBookingDays <= 0 {
		return fmt.Errorf("%w: booking.advance_booking_days must be positive", ErrInvalidConfig)
	}
	for _, trip := range domain.TripTypes {
		price, ok := c.Booking.Tariffs[string(trip)]
		if !ok || price <= 0 {
			return fmt.Errorf("%w: booking.tariffs.%s must be positive", ErrInvalidConfig, trip)
		}
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	if c.Dashboard.DefaultDays <= 0 || c.Dashboard.DefaultDays > domain.MaxAnalyticsRangeDays {
		return fmt.Errorf("%w: dashboard.default_days out of range", ErrInvalidConfig)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "taxi_booking",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1,
			Burst:             5,
		},
		Booking: BookingConfig{
			Timezone:           "UTC",
			AdvanceBookingDays: 90,
		},
		Dashboard: DashboardConfig{
			DefaultDays: domain.DefaultDashboardDays,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}
