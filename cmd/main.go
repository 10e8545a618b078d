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

	assignAvailabilityHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/assign_availability"
	createAppointmentHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/create_appointment"
	flagAppointmentHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/flag_appointment"
	getAppointmentHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/get_appointment"
	getCalendarHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/get_calendar"
	getUserAppointmentsHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/get_user_appointments"
	listAppointmentsHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/list_appointments"
	listAvailableDaysHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/list_available_days"
	listAvailabilityBlocksHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/list_availability_blocks"
	listCapacityOverridesHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/list_capacity_overrides"
	removeAvailabilityHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/remove_availability"
	removeDayCapacityHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/remove_day_capacity"
	setDayCapacityHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/set_day_capacity"
	updateAppointmentStatusHandler "github.com/Cameron8325/teahouse-booking/internal/api/handlers/update_appointment_status"
	"github.com/Cameron8325/teahouse-booking/internal/api/middleware"
	"github.com/Cameron8325/teahouse-booking/internal/config"
	appointmentRepo "github.com/Cameron8325/teahouse-booking/internal/infra/storage/appointment"
	availabilityRepo "github.com/Cameron8325/teahouse-booking/internal/infra/storage/availability"
	settingsRepo "github.com/Cameron8325/teahouse-booking/internal/infra/storage/settings"
	identityServiceClient "github.com/Cameron8325/teahouse-booking/internal/integrations/identityservice"
	appointmentsService "github.com/Cameron8325/teahouse-booking/internal/service/appointments"
	availabilityService "github.com/Cameron8325/teahouse-booking/internal/service/availability"
	settingsService "github.com/Cameron8325/teahouse-booking/internal/service/settings"
	assignAvailabilityUC "github.com/Cameron8325/teahouse-booking/internal/usecase/assign_availability"
	composeCalendarUC "github.com/Cameron8325/teahouse-booking/internal/usecase/compose_calendar"
	createAppointmentUC "github.com/Cameron8325/teahouse-booking/internal/usecase/create_appointment"
	removeAvailabilityUC "github.com/Cameron8325/teahouse-booking/internal/usecase/remove_availability"
	"github.com/Cameron8325/teahouse-booking/pkg/dbmetrics"
	"github.com/Cameron8325/teahouse-booking/pkg/logger"
	"github.com/Cameron8325/teahouse-booking/pkg/metrics"
	"github.com/Cameron8325/teahouse-booking/pkg/simpletxmanager"
	"github.com/Cameron8325/teahouse-booking/pkg/txmanager"
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

	log.Info("Starting Teahouse-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционного клиента
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (IdentityService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		availabilityRepository *availabilityRepo.Repository
		appointmentRepository  *appointmentRepo.Repository
		settingsRepository     *settingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	assignAvailabilityUseCase := assignAvailabilityUC.NewUseCase(
		availabilityRepository,
		txMgr,
		log,
	)

	removeAvailabilityUseCase := removeAvailabilityUC.NewUseCase(
		availabilityRepository,
		log,
	)

	composeCalendarUseCase := composeCalendarUC.NewUseCase(
		availabilityRepository,
		appointmentRepository,
		settingsRepository,
		cfg.Booking.DayCapacity,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		settingsRepository,
		identityClient,
		txMgr,
		cfg.Booking.DayCapacity,
		log,
	)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(composeCalendarUseCase, log)
	listAvailableDays := listAvailableDaysHandler.NewHandler(availabilitySvc, log)
	listAvailabilityBlocks := listAvailabilityBlocksHandler.NewHandler(availabilitySvc, log)
	assignAvailability := assignAvailabilityHandler.NewHandler(assignAvailabilityUseCase, log)
	removeAvailability := removeAvailabilityHandler.NewHandler(removeAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	flagAppointment := flagAppointmentHandler.NewHandler(appointmentsSvc, log)
	setDayCapacity := setDayCapacityHandler.NewHandler(settingsSvc, log)
	removeDayCapacity := removeDayCapacityHandler.NewHandler(settingsSvc, log)
	listCapacityOverrides := listCapacityOverridesHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь: события типов дней и вместимости
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Доступные дни
	api.HandleFunc("/availability/days", listAvailableDays.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на посещение ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список всех записей (для администратора)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Переходы статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/{action:approve|deny|to-completion}",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Пометка записи флагом
	protected.HandleFunc("/appointments/{appointmentId}/flag", flagAppointment.Handle).Methods(http.MethodPatch)

	// История записей пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Управление доступностью (для администратора) ---
	// Блоки доступности (сгруппированные диапазоны)
	protected.HandleFunc("/availability/blocks", listAvailabilityBlocks.Handle).Methods(http.MethodGet)

	// Назначение диапазона доступности
	protected.HandleFunc("/availability", assignAvailability.Handle).Methods(http.MethodPut)

	// Удаление дат из доступности
	protected.HandleFunc("/availability", removeAvailability.Handle).Methods(http.MethodDelete)

	// --- Управление вместимостью дней ---
	protected.HandleFunc("/days/capacity-overrides", listCapacityOverrides.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/days/{date}/capacity", setDayCapacity.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/days/{date}/capacity", removeDayCapacity.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
