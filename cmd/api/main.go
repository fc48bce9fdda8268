package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/cmlabs-hris/jornada-backend-go/internal/config"
	"github.com/cmlabs-hris/jornada-backend-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/jornada-backend-go/internal/handler/http"
	awsPkg "github.com/cmlabs-hris/jornada-backend-go/internal/pkg/aws"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/jornada-backend-go/internal/pkg/utils"
	"github.com/cmlabs-hris/jornada-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/jornada-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/jornada-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/jornada-backend-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/jornada-backend-go/internal/service/employee"
	"github.com/cmlabs-hris/jornada-backend-go/internal/service/file"
	notificationService "github.com/cmlabs-hris/jornada-backend-go/internal/service/notification"
	reportService "github.com/cmlabs-hris/jornada-backend-go/internal/service/report"
	sedeService "github.com/cmlabs-hris/jornada-backend-go/internal/service/sede"
	timeRecordService "github.com/cmlabs-hris/jornada-backend-go/internal/service/timerecord"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	log := logger.New(logger.Options{
		App:       cfg.App.Name,
		Version:   cfg.App.Version,
		Env:       cfg.App.Env,
		Level:     cfg.App.LogLevel,
		Concise:   !cfg.IsProduction(),
		AsDefault: true,
	})
	location := cfg.Location()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err := postgresql.Migrate(ctx, db); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	// Repositories
	employeeRepo := postgresql.NewEmployeeRepository(db)
	sedeRepo := postgresql.NewSedeRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db, location)
	notificationRepo := postgresql.NewNotificationRepository(db)
	transactor := postgresql.NewTransactor(db)

	if cfg.Seed.Enabled {
		seeder := fixtures.NewSeeder(transactor, employeeRepo, sedeRepo, fixtures.AdminDefaults{
			Cedula:   cfg.Seed.AdminCedula,
			Name:     cfg.Seed.AdminName,
			LastName: cfg.Seed.AdminLastName,
		})
		if _, err := seeder.SeedIfEmpty(ctx); err != nil {
			return fmt.Errorf("error seeding database: %w", err)
		}
	}

	// Storage
	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
	default:
		return fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
	fileService := file.NewFileService(fileStorage, cfg.Storage.BaseURL)

	// Notifications
	channelOpts := notificationService.ChannelOptions{
		Type:        cfg.Notification.Channel,
		Logger:      log,
		SQSQueueURL: cfg.AWS.SQSQueueURL,
	}
	if cfg.Notification.Channel == notificationService.ChannelSQS {
		awsCfg, err := awsPkg.NewAWSConfig(ctx, cfg.AWS)
		if err != nil {
			return fmt.Errorf("failed to load aws config: %w", err)
		}
		channelOpts.SQSClient = awsPkg.NewSQSClient(awsCfg, cfg.AWS.Endpoint)
	}

	if cfg.Notification.Store {
		channelOpts.Store = notificationRepo
	}

	channel, err := notificationService.NewChannel(channelOpts)
	if err != nil {
		return fmt.Errorf("failed to build notification channel: %w", err)
	}
	notifier := notificationService.NewNotificationService(channel, notificationService.Config{
		SendTimeout: cfg.Notification.SendTimeout,
		WorkerCount: cfg.Notification.WorkerCount,
	})
	defer notifier.Stop()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	// Services
	aggregator := attendanceService.NewAggregator(location)
	overtime := timeRecordService.NewBasicOvertimeCalculator(cfg.Jornada.StandardShiftMinutes)
	geoFence := utils.NewGeoFence(cfg.Jornada.GeofenceRadiusMeters)

	authSvc := serviceAuth.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, sedeRepo)
	sedeSvc := sedeService.NewSedeService(sedeRepo)
	recordSvc := timeRecordService.NewTimeRecordService(
		transactor,
		timeRecordRepo,
		employeeRepo,
		sedeRepo,
		fileService,
		notifier,
		overtime,
		geoFence,
		location,
	)
	attendanceSvc := attendanceService.NewAttendanceService(timeRecordRepo, aggregator, location)
	dashboardSvc := dashboardService.NewDashboardService(
		employeeRepo,
		sedeRepo,
		timeRecordRepo,
		aggregator,
		cfg.Jornada.StandardShiftMinutes,
		location,
	)
	reportSvc := reportService.NewReportService(timeRecordRepo, location)
	inboxSvc := notificationService.NewInboxService(notificationRepo)

	// Background jobs
	scheduler := cron.NewScheduler()
	cron.NewMaintenanceJobs(JWTService, 15*time.Minute).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Sede:      appHTTP.NewSedeHandler(sedeSvc),
		Record:    appHTTP.NewRecordHandler(recordSvc, attendanceSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
		Report:    appHTTP.NewReportHandler(reportSvc, location),
		Health:    appHTTP.NewHealthHandler(db),

		Notification: appHTTP.NewNotificationHandler(inboxSvc),
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         log,
		AllowedOrigins: cfg.App.FrontendURLs,
		RequestTimeout: cfg.App.RequestTimeout,
		UploadsDir:     cfg.Storage.BasePath,
	}, JWTService, handlers)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.App.RequestTimeout + 15*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", location.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Graceful shutdown timed out, closing connections", "error", err)
		return server.Close()
	}
	return nil
}
