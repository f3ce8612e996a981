package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TaxiBooking/internal/domain"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
user = "taxi"
password = "from-file"
dbname = "taxi"

[auth]
jwt_secret = "file-secret"

[booking]
timezone = "Europe/London"
advance_booking_days = 60

[booking.tariffs]
home_to_airport = 45.5
airport_to_home = 50
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, domain.DefaultDashboardDays, cfg.Dashboard.DefaultDays)
	assert.Contains(t, cfg.Database.DSN(), "host=db port=5432 user=taxi password=from-file")

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", loc.String())

	tariffs := cfg.Booking.TariffTable()
	assert.True(t, tariffs[domain.TripHomeToAirport].Equal(decimal.RequireFromString("45.5")))
	assert.True(t, tariffs[domain.TripAirportToHome].Equal(decimal.NewFromInt(50)))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, sampleConfig))

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown timezone", func(c *Config) { c.Booking.Timezone = "Mars/Olympus" }},
		{"missing tariff", func(c *Config) { delete(c.Booking.Tariffs, string(domain.TripAirportToHome)) }},
		{"non-positive tariff", func(c *Config) { c.Booking.Tariffs[string(domain.TripHomeToAirport)] = 0 }},
		{"missing jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }},
		{"bad rate limit", func(c *Config) { c.RateLimit.Enabled = true; c.RateLimit.Burst = 0 }},
		{"bad advance days", func(c *Config) { c.Booking.AdvanceBookingDays = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.Auth.JWTSecret = "secret"
			cfg.Booking.Tariffs = map[string]float64{
				string(domain.TripHomeToAirport): 40,
				string(domain.TripAirportToHome): 45,
			}
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
