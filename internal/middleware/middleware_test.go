package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"transaction-coordinator/internal/model"
	"transaction-coordinator/pkg/log"
)

type stubResolver struct {
	sc  model.Scope
	err error
}

func (s stubResolver) Resolve(ctx context.Context, token string) (model.Scope, error) {
	if token != "good" {
		return model.Scope{}, errors.New("bad token")
	}
	return s.sc, s.err
}

func newEngine(m Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.RequestID())
	r.GET("/me", m.Auth(), func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, sc.UserID+":"+log.RequestIDFromContext(c.Request.Context()))
	})
	r.POST("/login", m.LoginRateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAuth(t *testing.T) {
	m := New(log.NewNop(), Config{Sessions: stubResolver{sc: model.Scope{SessionID: "s", UserID: "2", Role: model.Admin{}}}})
	r := newEngine(m)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"good token", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			req.Header.Set(RequestIDHeader, "req-1")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("code = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusOK && w.Body.String() != "2:req-1" {
				t.Errorf("body = %q", w.Body.String())
			}
			if w.Header().Get(RequestIDHeader) != "req-1" {
				t.Errorf("request id header = %q", w.Header().Get(RequestIDHeader))
			}
		})
	}
}

func TestLoginRateLimit(t *testing.T) {
	m := New(log.NewNop(), Config{LoginRatePerMinute: 10})
	r := newEngine(m)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	// burst of 1 at 10/min
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes = %v", codes)
	}

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("other client code = %d", w.Code)
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := newRateLimiter(0, 0)
	if rl.burst != 1 {
		t.Errorf("burst = %d", rl.burst)
	}
	if err := rl.Allow("k"); err != nil {
		t.Errorf("first Allow: %v", err)
	}
}

func TestRateLimiter_SharedBucket(t *testing.T) {
	rl := newRateLimiter(10, 100)
	if err := rl.Allow("10.0.0.1"); err != nil {
		t.Fatalf("first Allow: %v", err)
	}
	if err := rl.Allow("10.0.0.1"); err == nil {
		t.Errorf("second Allow from the same key passed")
	}
	if rl.limiters.Len() != 1 {
		t.Errorf("limiters = %d, want 1", rl.limiters.Len())
	}
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	const workers = 50
	rl := newRateLimiter(10, 100)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
		start   = make(chan struct{})
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("10.0.0.1") == nil {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	// burst of 1 at 10/min
	if got := allowed.Load(); got != 1 {
		t.Errorf("allowed = %d, want 1", got)
	}
}
