package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saikiran2022/Health-care/config"
	deliveryHttp "github.com/saikiran2022/Health-care/internal/delivery/http"
	"github.com/saikiran2022/Health-care/internal/delivery/http/handler"
	"github.com/saikiran2022/Health-care/internal/delivery/http/middleware"
	domainRepo "github.com/saikiran2022/Health-care/internal/domain/repository"
	"github.com/saikiran2022/Health-care/internal/infrastructure/cache"
	"github.com/saikiran2022/Health-care/internal/infrastructure/database"
	"github.com/saikiran2022/Health-care/internal/infrastructure/messaging"
	"github.com/saikiran2022/Health-care/internal/job"
	"github.com/saikiran2022/Health-care/internal/repository"
	"github.com/saikiran2022/Health-care/internal/repository/memory"
	"github.com/saikiran2022/Health-care/internal/service"
	"github.com/saikiran2022/Health-care/internal/usecase"
	"github.com/saikiran2022/Health-care/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Publisher   *messaging.Publisher
	Cron        *cron.Cron
	Server      *http.Server
}

type repositories struct {
	doctors      domainRepo.DoctorRepository
	appointments domainRepo.AppointmentRepository
	auditLogs    domainRepo.AuditLogRepository
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()
	log := logrus.StandardLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	log.Info("Configuration loaded successfully")

	// Initialize storage
	repos, err := app.initializeRepositories(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	// Initialize Redis, optional
	doctorCache := service.NewNoopDoctorCache()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		doctorCache = service.NewRedisDoctorCache(redisClient, log, cfg.Redis.CacheTTL)
		log.Info("Redis connected successfully")
	} else {
		log.Info("REDIS_HOST not set, doctor cache disabled")
	}

	// Initialize RabbitMQ, optional
	var publisher service.EventPublisher = service.NewNoopEventPublisher()
	if cfg.AMQP.Enabled() {
		mqPublisher, err := messaging.NewRabbitMQPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		app.Publisher = mqPublisher
		publisher = mqPublisher
	} else {
		log.Info("AMQP_URL not set, appointment events disabled")
	}

	// Schedule reminder job
	if cfg.Reminder.Enabled {
		c := cron.New()
		reminderJob := job.NewReminderJob(log, repos.appointments, publisher)
		if _, err := reminderJob.Schedule(c, cfg.Reminder.Schedule); err != nil {
			app.Close()
			return nil, fmt.Errorf("invalid REMINDER_CRON %q: %w", cfg.Reminder.Schedule, err)
		}
		app.Cron = c
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, log, repos, doctorCache, publisher)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func (app *App) initializeRepositories(cfg *config.Config) (*repositories, error) {
	if cfg.DB.Driver == config.DriverMemory {
		logrus.Warn("DB_DRIVER=memory, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			doctors:      store.Doctors(),
			appointments: store.Appointments(),
			auditLogs:    store.AuditLogs(),
		}, nil
	}

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(cfg.DB); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	return &repositories{
		doctors:      repository.NewDoctorRepository(db),
		appointments: repository.NewAppointmentRepository(db),
		auditLogs:    repository.NewAuditLogRepository(db),
	}, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	repos *repositories,
	doctorCache service.DoctorCache,
	publisher service.EventPublisher,
) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize services
	auditService := service.NewAuditService(log, repos.auditLogs)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(log, repos.doctors, doctorCache, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, customValidator, repos.appointments, auditService, publisher)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, repos.auditLogs)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, appointmentHandler, auditLogHandler, loggingMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	if app.Cron != nil {
		app.Cron.Start()
		logrus.Infof("Reminder job scheduled: %s", app.Config.Reminder.Schedule)
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Let a running reminder job finish
	if app.Cron != nil {
		select {
		case <-app.Cron.Stop().Done():
		case <-ctx.Done():
		}
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, rabbitmq)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	// Close RabbitMQ channel and connection
	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			logrus.Warnf("Failed to close RabbitMQ connection: %v", err)
		}
	}
}
