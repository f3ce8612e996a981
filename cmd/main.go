package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-TaxiBooking/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/create_booking"
	createPromoHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/create_promo"
	getAnalyticsHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/get_analytics"
	getAvailabilityHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/get_dashboard"
	listBookingsHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/list_bookings"
	listPromoHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/list_promo"
	updateAvailabilityHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/update_availability"
	updateBookingStatusHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/update_booking_status"
	updatePromoHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/update_promo"
	validatePromoHandler "github.com/m04kA/SMC-TaxiBooking/internal/api/handlers/validate_promo"
	"github.com/m04kA/SMC-TaxiBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TaxiBooking/internal/config"
	dashboardCache "github.com/m04kA/SMC-TaxiBooking/internal/infra/cache/dashboard"
	availabilityRepo "github.com/m04kA/SMC-TaxiBooking/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-TaxiBooking/internal/infra/storage/booking"
	promoRepo "github.com/m04kA/SMC-TaxiBooking/internal/infra/storage/promo"
	availabilityService "github.com/m04kA/SMC-TaxiBooking/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-TaxiBooking/internal/service/bookings"
	dashboardService "github.com/m04kA/SMC-TaxiBooking/internal/service/dashboard"
	promoService "github.com/m04kA/SMC-TaxiBooking/internal/service/promo"
	reopenService "github.com/m04kA/SMC-TaxiBooking/internal/service/reopen"
	slotsService "github.com/m04kA/SMC-TaxiBooking/internal/service/slots"
	createBookingUC "github.com/m04kA/SMC-TaxiBooking/internal/usecase/create_booking"
	updateAvailabilityUC "github.com/m04kA/SMC-TaxiBooking/internal/usecase/update_availability"
	updateBookingStatusUC "github.com/m04kA/SMC-TaxiBooking/internal/usecase/update_booking_status"
	"github.com/m04kA/SMC-TaxiBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TaxiBooking/pkg/logger"
	"github.com/m04kA/SMC-TaxiBooking/pkg/metrics"
	"github.com/m04kA/SMC-TaxiBooking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TaxiBooking...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}
	tariffs := cfg.Booking.TariffTable()

	// Метрики: nil означает выключенный сбор, методы *metrics.Metrics безопасны на nil
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	promoRepository := promoRepo.NewRepository(wrappedDB)

	// Кеш дашборда (опционально)
	var statsCache dashboardService.Cache
	if cfg.Redis.Enabled && cfg.Dashboard.CacheTTL > 0 {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis unavailable at %s, dashboard cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			statsCache = dashboardCache.NewCache(redisClient, time.Duration(cfg.Dashboard.CacheTTL)*time.Second)
			log.Info("Dashboard cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Dashboard.CacheTTL)
		}
	}

	// Сервисы
	slotSvc := slotsService.NewService(availabilityRepository, txMgr, metricsCollector, log)
	reopenSvc := reopenService.NewService(availabilityRepository, bookingRepository, txMgr, metricsCollector, log)
	promoSvc := promoService.NewService(promoRepository, txMgr, metricsCollector, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	dashboardSvc := dashboardService.NewService(
		bookingRepository,
		availabilityRepository,
		txMgr,
		statsCache,
		location,
		cfg.Dashboard.DefaultDays,
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotSvc,
		promoSvc,
		txMgr,
		createBookingUC.Settings{
			Location:           location,
			AdvanceBookingDays: cfg.Booking.AdvanceBookingDays,
			Tariffs:            tariffs,
		},
		log,
	)
	updateStatusUseCase := updateBookingStatusUC.NewUseCase(bookingRepository, slotSvc, txMgr, log)
	updateAvailabilityUseCase := updateAvailabilityUC.NewUseCase(availabilityRepository, reopenSvc, txMgr, log)

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(updateAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(updateStatusUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateStatusUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	validatePromo := validatePromoHandler.NewHandler(promoSvc, tariffs, log)
	listPromo := listPromoHandler.NewHandler(promoSvc, log)
	createPromo := createPromoHandler.NewHandler(promoSvc, log)
	updatePromo := updatePromoHandler.NewHandler(promoSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)
	getAnalytics := getAnalyticsHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Публичные изменения ограничены по IP
	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			cfg.RateLimit.TrustProxy,
			log,
		)
		public.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.2f rps, burst=%d, trust_proxy=%t",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
	}

	public.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	public.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	public.HandleFunc("/promo/validate", validatePromo.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <JWT>)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, log))

	// --- Доступность ---
	admin.HandleFunc("/availability/{date}", updateAvailability.Handle).Methods(http.MethodPatch)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Промокоды ---
	admin.HandleFunc("/promo", listPromo.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/promo", createPromo.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/promo/{code}", updatePromo.Handle).Methods(http.MethodPut)

	// --- Аналитика ---
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/analytics", getAnalytics.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (timezone=%s)", addr, location)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
