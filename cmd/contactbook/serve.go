package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/pkordes/contactbook/internal/config"
	"github.com/pkordes/contactbook/internal/handler"
	"github.com/pkordes/contactbook/internal/middleware"
)

// shutdownTimeout bounds how long in-flight requests may run after a signal.
const shutdownTimeout = 15 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the address book over HTTP",
		Long: `Serve the address book over HTTP on a local address. Requests run as
commands one at a time against the same book the CLI uses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Addr = addr
			}
			exec, err := a.open(cmd.Context())
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", a.cfg.Addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", a.cfg.Addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, ln, newRouter(a.cfg, a.log, handler.NewServer(exec, a.log)), a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides ADDR)")
	return cmd
}

// newRouter applies middleware in order: RequestID → RealIP → Logger →
// Recoverer → CORS → body limit, then mounts the API.
// Recoverer catches panics and returns HTTP 500 instead of crashing.
func newRouter(cfg config.Config, log *slog.Logger, srv *handler.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(middleware.DefaultMaxBodySize))
	r.Mount("/", srv.Routes())
	return r
}

// serve runs h on ln until ctx is cancelled, then gives in-flight requests
// up to shutdownTimeout to complete before forcefully closing.
func serve(ctx context.Context, ln net.Listener, h http.Handler, log *slog.Logger) error {
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	<-errCh
	log.Info("server stopped")
	return nil
}
