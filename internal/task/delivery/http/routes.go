package http

import (
	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Checklist routes nest under /transactions/:id; calendar views live under /calendar.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/transactions/:id/tasks", mw.Auth())
	{
		tasks.GET("", h.List)
		tasks.POST("/:template_id/toggle", h.Toggle)
		tasks.PUT("/:template_id/status", h.SetStatus)
		tasks.PUT("/:template_id/notes", h.UpdateNotes)
	}

	cal := rg.Group("/calendar", mw.Auth())
	{
		cal.GET("", h.Calendar)
		cal.GET("/range", h.Range)
		cal.GET("/export.ics", h.ExportICS)
		cal.GET("/export/google", h.ExportGoogle)
	}
}
