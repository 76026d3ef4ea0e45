package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "transaction-coordinator/internal/auth/delivery/http"
	dashboardHTTP "transaction-coordinator/internal/dashboard/delivery/http"
	"transaction-coordinator/internal/middleware"
	"transaction-coordinator/internal/model"
	notificationHTTP "transaction-coordinator/internal/notification/delivery/http"
	taskHTTP "transaction-coordinator/internal/task/delivery/http"
	transactionHTTP "transaction-coordinator/internal/transaction/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, middleware.Config{
		Sessions:            srv.authUC,
		LoginRatePerMinute:  srv.loginRatePerMinute,
		RateLimiterCapacity: srv.rateLimiterCapacity,
	})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.AccessLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins %v", srv.allowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins %v", srv.environment, srv.allowedOrigins)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts every domain under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, srv.authUC), mw)
	transactionHTTP.RegisterRoutes(api, transactionHTTP.New(srv.l, srv.transactionUC), mw)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC), mw)
	notificationHTTP.RegisterRoutes(api, notificationHTTP.New(srv.l, srv.notificationUC), mw)
	dashboardHTTP.RegisterRoutes(api, dashboardHTTP.New(srv.l, srv.dashboardUC), mw)

	srv.l.Infof(ctx, "Domain routes registered: auth, transactions, tasks, notifications, dashboard")
}
