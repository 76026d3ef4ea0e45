package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"transaction-coordinator/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags the request context with an id, reusing an inbound one when present.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog writes one line per request after it completes.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s errors=%s", c.Request.Method, c.Request.URL.Path, status, latency, c.Errors.String())
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
