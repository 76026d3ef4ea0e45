package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transaction-coordinator/config"
	_ "transaction-coordinator/docs" // Swagger docs
	authRepo "transaction-coordinator/internal/auth/repository/memory"
	authUC "transaction-coordinator/internal/auth/usecase"
	"transaction-coordinator/internal/checklist"
	dashboardUC "transaction-coordinator/internal/dashboard/usecase"
	"transaction-coordinator/internal/fixture"
	"transaction-coordinator/internal/httpserver"
	"transaction-coordinator/internal/model"
	notificationRepo "transaction-coordinator/internal/notification/repository/memory"
	notificationUC "transaction-coordinator/internal/notification/usecase"
	taskRepo "transaction-coordinator/internal/task/repository/memory"
	taskUC "transaction-coordinator/internal/task/usecase"
	txRepo "transaction-coordinator/internal/transaction/repository/memory"
	txUC "transaction-coordinator/internal/transaction/usecase"
	"transaction-coordinator/pkg/datemath"
	"transaction-coordinator/pkg/log"
	"transaction-coordinator/pkg/scope"
)

// @title       Transaction Coordinator API
// @description Real-estate transaction checklists, deadlines, notifications and dashboards.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Transaction Coordinator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Shared services
	dateMath, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "datemath.NewParser: %v", err)
	}
	checklistSvc, err := checklist.New(checklist.DefaultCatalog())
	if err != nil {
		logger.Fatalf(ctx, "checklist.New: %v", err)
	}
	tokens, err := scope.NewManager(cfg.Session.JWTSecret, cfg.Session.TTL)
	if err != nil {
		logger.Fatalf(ctx, "scope.NewManager: %v", err)
	}

	// 4. Repositories
	transactions := txRepo.New(logger)
	taskStates := taskRepo.New()
	sessions := authRepo.New(authRepo.DemoUsers(), cfg.Session.MaxSessions, cfg.Session.TTL)

	notificationDefaults := model.DefaultNotificationSettings()
	notificationDefaults.ReminderDays = cfg.Notification.ReminderDays
	notificationDefaults.DigestTime = cfg.Notification.DigestTime
	notifications := notificationRepo.New(notificationDefaults)

	// 5. Use cases
	auth := authUC.New(logger, sessions, tokens)
	txs := txUC.New(transactions, taskStates, logger)
	tasks := taskUC.New(logger, txs, checklistSvc, taskStates, dateMath, taskUC.Config{
		UpcomingWindowDays: cfg.Calendar.UpcomingWindowDays,
		ReminderMinutes:    cfg.Calendar.ReminderMinutes,
		UIDDomain:          cfg.Calendar.UIDDomain,
		CalendarName:       cfg.Calendar.Name,
	})
	notificationUseCase := notificationUC.New(logger, notifications, tasks, nil)
	dashboardUseCase := dashboardUC.New(logger, tasks, auth, checklistSvc)

	// 6. Demo data
	if cfg.Demo.Seed {
		now := time.Now()
		demo, err := fixture.Build(checklistSvc, dateMath.Today(now), now, cfg.Demo.RandomSeed)
		if err != nil {
			logger.Fatalf(ctx, "fixture.Build: %v", err)
		}
		if err := fixture.Load(ctx, logger, transactions, taskStates, demo); err != nil {
			logger.Fatalf(ctx, "fixture.Load: %v", err)
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		ShutdownTimeout:     cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:      cfg.CORS.AllowedOrigins,
		LoginRatePerMinute:  cfg.RateLimit.LoginPerMinute,
		RateLimiterCapacity: cfg.RateLimit.Capacity,
		AuthUC:              auth,
		TransactionUC:       txs,
		TaskUC:              tasks,
		NotificationUC:      notificationUseCase,
		DashboardUC:         dashboardUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
