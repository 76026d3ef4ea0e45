package http

import (
	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Login is rate limited per client IP; the rest require a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	a := rg.Group("/auth")
	{
		a.POST("/login", mw.LoginRateLimit(), h.Login)
		a.POST("/logout", mw.Auth(), h.Logout)
		a.GET("/me", mw.Auth(), h.Me)
	}

	rg.GET("/users", mw.Auth(), h.ListUsers)
}
