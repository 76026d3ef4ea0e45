package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/auth"
	"transaction-coordinator/internal/dashboard"
	"transaction-coordinator/internal/notification"
	"transaction-coordinator/internal/task"
	"transaction-coordinator/internal/transaction"
	"transaction-coordinator/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// CORS
	allowedOrigins []string

	// Login rate limiting
	loginRatePerMinute  int
	rateLimiterCapacity int

	// Domains
	authUC         auth.UseCase
	transactionUC  transaction.UseCase
	taskUC         task.UseCase
	notificationUC notification.UseCase
	dashboardUC    dashboard.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	AllowedOrigins      []string
	LoginRatePerMinute  int
	RateLimiterCapacity int

	AuthUC         auth.UseCase
	TransactionUC  transaction.UseCase
	TaskUC         task.UseCase
	NotificationUC notification.UseCase
	DashboardUC    dashboard.UseCase
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		shutdownTimeout:     timeout,
		allowedOrigins:      cfg.AllowedOrigins,
		loginRatePerMinute:  cfg.LoginRatePerMinute,
		rateLimiterCapacity: cfg.RateLimiterCapacity,
		authUC:              cfg.AuthUC,
		transactionUC:       cfg.TransactionUC,
		taskUC:              cfg.TaskUC,
		notificationUC:      cfg.NotificationUC,
		dashboardUC:         cfg.DashboardUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authUC == nil || srv.transactionUC == nil || srv.taskUC == nil ||
		srv.notificationUC == nil || srv.dashboardUC == nil {
		return errors.New("all domain use cases are required")
	}
	return nil
}
