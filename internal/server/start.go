package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Start runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		slog.Info("starting server", "app", s.Cfg.AppName, "addr", s.Cfg.Addr)
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server", "timeout", s.Cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Cfg.ShutdownTimeout)
	defer cancel()

	if err := s.E.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
