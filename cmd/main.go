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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	advanceStageHandler "github.com/m04kA/SkillSlot-BookingService/internal/api/handlers/advance_stage"
	changeMonthHandler "github.com/m04kA/SkillSlot-BookingService/internal/api/handlers/change_month"
	closeSessionHandler "github.com/m04kA/SkillSlot-BookingService/internal/api/handlers/close_session"
	createSessionHandler "github.com/m04kA/SkillSlot-BookingService/internal/api/handlers/create_session"
	getCalendarHandler "github.com/m04kA/SkillSlot-BookingService/internal/api/handlers/get_calendar"
	getConfirmationHandler "github.com/m04kA/SkillSlot-BookingService/internal/api/handlers/get_confirmation"
	getSessionHandler "github.com/m04kA/SkillSlot-BookingService/internal/api/handlers/get_session"
	listTalentConfirmationsHandler "github.com/m04kA/SkillSlot-BookingService/internal/api/handlers/list_talent_confirmations"
	retreatStageHandler "github.com/m04kA/SkillSlot-BookingService/internal/api/handlers/retreat_stage"
	selectDateHandler "github.com/m04kA/SkillSlot-BookingService/internal/api/handlers/select_date"
	selectDurationHandler "github.com/m04kA/SkillSlot-BookingService/internal/api/handlers/select_duration"
	selectTimeHandler "github.com/m04kA/SkillSlot-BookingService/internal/api/handlers/select_time"
	"github.com/m04kA/SkillSlot-BookingService/internal/api/middleware"
	"github.com/m04kA/SkillSlot-BookingService/internal/config"
	confirmationRepo "github.com/m04kA/SkillSlot-BookingService/internal/infra/storage/confirmation"
	"github.com/m04kA/SkillSlot-BookingService/internal/infra/storage/migrations"
	sessionRepo "github.com/m04kA/SkillSlot-BookingService/internal/infra/storage/session"
	availabilityServiceClient "github.com/m04kA/SkillSlot-BookingService/internal/integrations/availabilityservice"
	bookingSessionService "github.com/m04kA/SkillSlot-BookingService/internal/service/bookingsession"
	resolveAvailabilityUC "github.com/m04kA/SkillSlot-BookingService/internal/usecase/resolve_availability"
	"github.com/m04kA/SkillSlot-BookingService/pkg/logger"
	"github.com/m04kA/SkillSlot-BookingService/pkg/metrics"
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

	log.Info("Starting SkillSlot-BookingService...")

	// Инициализируем метрики (если включены).
	// Интерфейс остается nil при выключенных метриках, чтобы сервис не получил typed nil.
	var (
		metricsCollector *metrics.Metrics
		serviceMetrics   bookingSessionService.MetricsCollector
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		serviceMetrics = metricsCollector
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

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Интеграция с сервисом доступности
	availabilityClient := availabilityServiceClient.NewClient(
		cfg.AvailabilityService.URL,
		time.Duration(cfg.AvailabilityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (AvailabilityService=%s timeout=%ds)",
		cfg.AvailabilityService.URL, cfg.AvailabilityService.Timeout)

	// Репозитории
	sessionRepository := sessionRepo.NewRepository()
	confirmationRepository := confirmationRepo.NewRepository(db)

	// Use cases и сервисы
	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUseCase(availabilityClient, log)

	bookingSvc := bookingSessionService.NewService(
		sessionRepository,
		confirmationRepository,
		resolveAvailabilityUseCase,
		serviceMetrics,
		bookingSessionService.Config{
			ResolveTimeout: cfg.Booking.ResolveTimeoutDuration(),
			SessionTTL:     cfg.Booking.SessionTTLDuration(),
		},
		log,
	)

	// Очистка простаивающих сессий
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go bookingSvc.RunJanitor(janitorCtx, cfg.Booking.JanitorIntervalDuration())
	log.Info("Session janitor started (ttl=%dm, interval=%ds)",
		cfg.Booking.SessionTTL, cfg.Booking.JanitorInterval)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(bookingSvc, log)
	createSession := createSessionHandler.NewHandler(bookingSvc, log)
	getSession := getSessionHandler.NewHandler(bookingSvc, log)
	closeSession := closeSessionHandler.NewHandler(bookingSvc, log)
	selectDate := selectDateHandler.NewHandler(bookingSvc, log)
	selectTime := selectTimeHandler.NewHandler(bookingSvc, log)
	selectDuration := selectDurationHandler.NewHandler(bookingSvc, log)
	changeMonth := changeMonthHandler.NewHandler(bookingSvc, log)
	advanceStage := advanceStageHandler.NewHandler(bookingSvc, log)
	retreatStage := retreatStageHandler.NewHandler(bookingSvc, log)
	getConfirmation := getConfirmationHandler.NewHandler(bookingSvc, log)
	listTalentConfirmations := listTalentConfirmationsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, middleware.DefaultLimiterIdleTTL)
		protected.Use(limiter.Middleware())
		log.Info("Rate limit enabled (%.1f rps, burst %d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// --- Сессии бронирования ---
	protected.HandleFunc("/talents/{talentId}/booking-sessions", createSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking-sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking-sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)

	// --- Выбор даты, времени и длительности ---
	protected.HandleFunc("/booking-sessions/{sessionId}/date", selectDate.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/booking-sessions/{sessionId}/time", selectTime.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/booking-sessions/{sessionId}/duration", selectDuration.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/booking-sessions/{sessionId}/month", changeMonth.Handle).Methods(http.MethodPost)

	// --- Этапы ---
	protected.HandleFunc("/booking-sessions/{sessionId}/advance", advanceStage.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking-sessions/{sessionId}/retreat", retreatStage.Handle).Methods(http.MethodPost)

	// --- Подтверждения ---
	protected.HandleFunc("/booking-sessions/{sessionId}/confirmation", getConfirmation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/talents/{talentId}/confirmations", listTalentConfirmations.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	stopJanitor()

	// Отменяем незавершенные запросы доступности
	if err := bookingSvc.Shutdown(shutdownCtx); err != nil {
		log.Error("Availability resolutions did not finish: %v", err)
	}

	log.Info("Server stopped gracefully")
}
