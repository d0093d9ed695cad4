package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// APIServer serves handler until SIGINT or SIGTERM, then drains in-flight
// requests for at most the configured shutdown timeout.
func APIServer(handler http.Handler, config *utils.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, handler, config, logger)
}

func serve(ctx context.Context, handler http.Handler, config *utils.Config, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.App.Port),
		Handler:           handler,
		ReadTimeout:       config.HTTP.ReadTimeout,
		ReadHeaderTimeout: config.HTTP.ReadTimeout,
		// leave headroom so the timeout middleware can still write its 503
		WriteTimeout: config.HTTP.WriteTimeout + config.HTTP.WriteTimeout/2,
		IdleTimeout:  2 * config.HTTP.ReadTimeout,
		ErrorLog:     zap.NewStdLog(logger),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", zap.Duration("timeout", config.HTTP.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
