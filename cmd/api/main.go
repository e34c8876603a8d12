package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gymrepublic/gym-console/internal/config"
	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/inventory"
	"github.com/gymrepublic/gym-console/internal/domain/staff"
	appHTTP "github.com/gymrepublic/gym-console/internal/handler/http"
	"github.com/gymrepublic/gym-console/internal/pkg/cache"
	"github.com/gymrepublic/gym-console/internal/pkg/cron"
	"github.com/gymrepublic/gym-console/internal/pkg/database"
	"github.com/gymrepublic/gym-console/internal/pkg/document"
	"github.com/gymrepublic/gym-console/internal/pkg/jwt"
	"github.com/gymrepublic/gym-console/internal/pkg/metrics"
	"github.com/gymrepublic/gym-console/internal/pkg/sse"
	"github.com/gymrepublic/gym-console/internal/pkg/storage"
	"github.com/gymrepublic/gym-console/internal/repository/cached"
	"github.com/gymrepublic/gym-console/internal/repository/gymapi"
	"github.com/gymrepublic/gym-console/internal/repository/postgresql"
	attendanceService "github.com/gymrepublic/gym-console/internal/service/attendance"
	serviceAuth "github.com/gymrepublic/gym-console/internal/service/auth"
	customerService "github.com/gymrepublic/gym-console/internal/service/customer"
	dashboardService "github.com/gymrepublic/gym-console/internal/service/dashboard"
	"github.com/gymrepublic/gym-console/internal/service/file"
	inventoryService "github.com/gymrepublic/gym-console/internal/service/inventory"
	notificationService "github.com/gymrepublic/gym-console/internal/service/notification"
	payrollService "github.com/gymrepublic/gym-console/internal/service/payroll"
	reportService "github.com/gymrepublic/gym-console/internal/service/report"
	salesService "github.com/gymrepublic/gym-console/internal/service/sales"
	staffService "github.com/gymrepublic/gym-console/internal/service/staff"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})).With(
		slog.String("app", "gym-console"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Gym API
	client := gymapi.NewClient(cfg.GymAPI.BaseURL, cfg.GymAPI.Timeout, appMetrics)
	authGateway := gymapi.NewAuthGateway(client)
	apiAttendanceRepo := gymapi.NewAttendanceRepository(client)
	var staffRepo staff.StaffRepository = gymapi.NewStaffRepository(client)
	var inventoryRepo inventory.InventoryRepository = gymapi.NewInventoryRepository(client)
	payrollRepo := gymapi.NewPayrollRepository(client)
	salesRepo := gymapi.NewSalesRepository(client)
	customerRepo := gymapi.NewCustomerRepository(client)
	dashboardRepo := gymapi.NewDashboardRepository(client)

	var attendanceReader attendance.Reader = apiAttendanceRepo
	if cfg.DataSource == config.DataSourcePostgres {
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{})
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()
		attendanceReader = postgresql.NewAttendanceRepository(db)
		slog.Info("Reading attendance from database replica", "host", cfg.Database.Host, "database", cfg.Database.Name)
	}

	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cache.Options{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			Namespace: "gym-console",
		})
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			slog.Warn("Redis not reachable, lists will be fetched on every request", "addr", cfg.Redis.Addr, "error", err)
		}
		staffRepo = cached.NewStaffRepository(staffRepo, redisCache, cfg.Redis.TTL)
		inventoryRepo = cached.NewInventoryRepository(inventoryRepo, redisCache, cfg.Redis.TTL)
	}

	// Storage
	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			return fmt.Errorf("initialize local storage: %w", err)
		}
	default:
		return fmt.Errorf("unsupported storage type %q", cfg.Storage.Type)
	}
	fileSvc := file.NewFileService(fileStorage)

	// Services
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()
	notifier := notificationService.NewNotificationService(hub)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceReader, apiAttendanceRepo, notifier, appMetrics, attendanceService.Options{
		Thresholds: attendanceService.Thresholds{
			FullDayHours:      cfg.Attendance.FullDayHours,
			HalfDayFloorHours: cfg.Attendance.HalfDayFloorHours,
		},
		Location: cfg.Attendance.Location,
	})
	authSvc := serviceAuth.NewAuthService(authGateway, JWTService, attendanceSvc)
	staffSvc := staffService.NewStaffService(staffRepo, notifier)
	customerSvc := customerService.NewCustomerService(customerRepo, notifier)
	inventorySvc := inventoryService.NewInventoryService(inventoryRepo, notifier)
	salesSvc := salesService.NewSalesService(salesRepo, notifier)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, notifier)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, notifier)
	reportSvc := reportService.NewReportService(
		attendanceSvc,
		inventorySvc,
		salesSvc,
		payrollSvc,
		fileSvc,
		appMetrics,
		document.Letterhead{Name: cfg.Company.Name, Address: cfg.Company.Address},
	)

	// Background jobs
	scheduler := cron.NewScheduler()
	if err := scheduler.AddJob("attendance-refresh", cfg.Attendance.RefreshInterval, attendanceSvc.RefreshActive); err != nil {
		return err
	}
	if err := scheduler.AddJob("revoked-token-purge", time.Hour, func(ctx context.Context) error {
		if n := JWTService.PurgeRevoked(time.Now()); n > 0 {
			slog.Info("Purged revoked tokens", "count", n)
		}
		return nil
	}); err != nil {
		return err
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
		Metrics:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Staff:        appHTTP.NewStaffHandler(staffSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc, reportSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc, reportSvc),
		Inventory:    appHTTP.NewInventoryHandler(inventorySvc, reportSvc),
		Sales:        appHTTP.NewSalesHandler(salesSvc, reportSvc),
		Customer:     appHTTP.NewCustomerHandler(customerSvc),
		Notification: appHTTP.NewNotificationHandler(notifier, JWTService),
		Export:       appHTTP.NewExportHandler(fileSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Open alert streams end when the process is asked to stop.
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "gym_api", cfg.GymAPI.BaseURL, "data_source", cfg.DataSource)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
