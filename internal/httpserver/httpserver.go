package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/cors"
)

// Handler returns the engine wrapped in the CORS layer.
func (srv HTTPServer) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   srv.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
	})
	return c.Handler(srv.gin)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (srv HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", server.Addr)
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

	srv.l.Info(ctx, "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpserver.Run: shutdown: %w", err)
	}
	return <-errCh
}
