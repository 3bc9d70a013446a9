package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/htmlpp"
	"github.com/aretw0/htmlpp/internal/metrics"
	"github.com/aretw0/htmlpp/internal/presentation/tui"
	httpAdapter "github.com/aretw0/htmlpp/pkg/adapters/http"
)

// ShutdownTimeout bounds the graceful shutdown of the servers.
const ShutdownTimeout = 5 * time.Second

// Serve runs the HTTP server until ctx is cancelled.
func (e *Env) Serve(ctx context.Context, port string, banner bool) error {
	handler := httpAdapter.NewHandler(
		httpAdapter.WithMetrics(metrics.New()),
		httpAdapter.WithLogger(e.Logger),
	)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	if banner {
		tui.PrintBanner(e.Stderr, htmlpp.Version, true)
	}

	go func() {
		e.Logger.Info("Starting htmlpp server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		e.printSystemMessage("Start shutdown (%s)...", shutdownCause(ctx))

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			e.Logger.Error("Graceful shutdown did not complete", "timeout", ShutdownTimeout, "error", err)
			if cerr := srv.Close(); cerr != nil && !errors.Is(cerr, http.ErrServerClosed) {
				return fmt.Errorf("error killing server: %w", cerr)
			}
		}
		e.printSystemMessage("htmlpp server stopped gracefully")
		return nil
	}
}
