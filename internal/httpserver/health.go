package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "transaction-coordinator/pkg/errors"
	"transaction-coordinator/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Transaction Coordinator API"
	HealthVersion = "1.0.0"
	ServiceName   = "transaction-coordinator"
)

func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck reports ready once the user directory can be served, since every
// authenticated route depends on it.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Directory unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := srv.authUC.Directory(ctx)
	if err != nil || len(users) == 0 {
		srv.l.Warnf(ctx, "httpserver.readyCheck: directory users=%d err=%v", len(users), err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "user directory unavailable"))
		return
	}

	body := healthBody("ready")
	body["users"] = len(users)
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}
