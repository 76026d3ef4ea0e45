package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/response"
)

const (
	scopeKey     = "scope"
	bearerPrefix = "Bearer "
)

// Auth resolves the Authorization header into a model.Scope and aborts with 401 otherwise.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}
		token := strings.TrimSpace(header[len(bearerPrefix):])
		if token == "" || m.sessions == nil {
			response.Unauthorized(c)
			return
		}

		sc, err := m.sessions.Resolve(ctx, token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		SetScope(c, sc)
		c.Next()
	}
}

// SetScope stores sc on the request.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	if !ok || sc.IsZero() {
		return model.Scope{}, false
	}
	return sc, true
}
