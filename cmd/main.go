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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers"
	addBlockedRangeHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/add_blocked_range"
	createBookingHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/create_booking"
	deleteBlockedRangeHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/delete_blocked_range"
	getAvailableSlotsHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/get_booking"
	getInstructorBookingsHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/get_instructor_bookings"
	getProfileHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/get_profile"
	getScheduleHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/get_schedule"
	healthHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/health"
	loginHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/login"
	registerHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/register"
	replaceWorkingHoursHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/replace_working_hours"
	setLessonSettingsHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/set_lesson_settings"
	updateBookingStatusHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/update_booking_status"
	updateSubscriptionHandler "github.com/m04kA/SMC-InstructorScheduler/internal/api/handlers/update_subscription"
	"github.com/m04kA/SMC-InstructorScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InstructorScheduler/internal/config"
	"github.com/m04kA/SMC-InstructorScheduler/internal/infra/migrations"
	bookingRepo "github.com/m04kA/SMC-InstructorScheduler/internal/infra/storage/booking"
	instructorRepo "github.com/m04kA/SMC-InstructorScheduler/internal/infra/storage/instructor"
	scheduleRepo "github.com/m04kA/SMC-InstructorScheduler/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-InstructorScheduler/internal/jobs/trialexpiry"
	"github.com/m04kA/SMC-InstructorScheduler/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-InstructorScheduler/internal/service/bookings"
	instructorsService "github.com/m04kA/SMC-InstructorScheduler/internal/service/instructors"
	scheduleService "github.com/m04kA/SMC-InstructorScheduler/internal/service/schedule"
	createBookingUC "github.com/m04kA/SMC-InstructorScheduler/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-InstructorScheduler/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/auth"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/logger"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/metrics"
	"github.com/m04kA/SMC-InstructorScheduler/pkg/txmanager"
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

	log.Info("Starting SMC-InstructorScheduler...")

	location := cfg.Booking.Location()
	log.Info("Booking window: %d days, timezone=%s", cfg.Booking.WindowDays, location)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		bookingMetrics   createBookingUC.Metrics = metrics.Nop{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		bookingMetrics = metricsCollector
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		migrator, err := migrations.NewMigrator(db)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := migrator.Up(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrator.Version(context.Background())
		if err != nil {
			log.Warn("Failed to read schema version: %v", err)
		}
		log.Info("Migrations applied, schema version=%d", version)
	}

	// Обёртка собирает метрики запросов; без коллектора запросы проходят как есть
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	instructorRepository := instructorRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	sessionCookie := handlers.SessionCookie{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure}

	// Инициализируем сервисы
	conflictChecker := availability.NewChecker(bookingRepository)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, location, log)
	instructorSvc := instructorsService.NewService(
		instructorRepository,
		scheduleRepository,
		tokens,
		txMgr,
		&instructorsService.RealTimeProvider{},
		cfg.Booking.TrialDays,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		instructorRepository,
		scheduleRepository,
		bookingRepository,
		conflictChecker,
		txMgr,
		bookingMetrics,
		cfg.Booking.WindowDays,
		location,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		instructorRepository,
		scheduleRepository,
		bookingRepository,
		txMgr,
		cfg.Booking.WindowDays,
		location,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	register := registerHandler.NewHandler(instructorSvc, sessionCookie, log)
	login := loginHandler.NewHandler(instructorSvc, sessionCookie, log)
	getProfile := getProfileHandler.NewHandler(instructorSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getInstructorBookings := getInstructorBookingsHandler.NewHandler(bookingSvc, location, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	replaceWorkingHours := replaceWorkingHoursHandler.NewHandler(scheduleSvc, log)
	addBlockedRange := addBlockedRangeHandler.NewHandler(scheduleSvc, log)
	deleteBlockedRange := deleteBlockedRangeHandler.NewHandler(scheduleSvc, log)
	setLessonSettings := setLessonSettingsHandler.NewHandler(scheduleSvc, log)
	updateSubscription := updateSubscriptionHandler.NewHandler(instructorSvc, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиенты и регистрация)
	// ============================================================

	// Открытые дни и свободные слоты инструктора
	api.HandleFunc("/instructors/{slug}/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования клиентом
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (сессия инструктора)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, cfg.Auth.CookieName))

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Кабинет инструктора ---
	protected.HandleFunc("/me", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/bookings", getInstructorBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/working-hours", replaceWorkingHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/me/blocked-ranges", addBlockedRange.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/me/blocked-ranges/{rangeId}", deleteBlockedRange.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/me/lesson-settings", setLessonSettings.Handle).Methods(http.MethodPut)

	// ============================================================
	// INTERNAL ROUTES (биллинг, X-Internal-Token)
	// ============================================================

	internalAPI := api.PathPrefix("/internal").Subrouter()
	internalAPI.Use(middleware.InternalToken(cfg.Auth.InternalToken))
	internalAPI.HandleFunc("/instructors/{instructorId}/subscription", updateSubscription.Handle).Methods(http.MethodPut)

	// Фоновая задача истечения пробного периода
	var trialJob *trialexpiry.Job
	if cfg.Jobs.TrialExpiryEnabled {
		trialJob = trialexpiry.NewJob(instructorSvc, cfg.Jobs.TrialExpirySchedule, 30*time.Second, log)
		if err := trialJob.Start(); err != nil {
			log.Fatal("Failed to start trial expiry job: %v", err)
		}
	}

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

	if trialJob != nil {
		trialJob.Stop(shutdownCtx)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
