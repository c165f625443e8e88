package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"sonard/internal/catalog"
	"sonard/internal/httpapi"
	"sonard/internal/manager"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Example: `  sonard serve --addr :8080 --catalog ./events.yaml --watch
  SONARD_CATALOG_URL=http://backend/api/events sonard serve --allow-sample-fallback`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, opts)
		},
	}
	cmd.Flags().String("addr", "", "HTTP listen address, e.g. :8080 (overrides config)")
	cmd.Flags().Bool("watch", false, "Reload when the catalog file changes")
	return cmd
}

func serve(ctx context.Context, opts *Options) error {
	cfg, log := opts.Config, opts.Logger

	sup, err := buildSupplier(cfg, log)
	if err != nil {
		return err
	}
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Supplier:      sup,
		CarouselStep:  cfg.CarouselStepPx,
		FrameInterval: cfg.FrameInterval(),
		Logger:        log,
	})
	defer mgr.Close()

	// A failed first load leaves /readyz at 503 but the server still starts
	// so /catalog/reload can recover.
	if err := mgr.Reload(ctx); err != nil {
		log.Error().Err(err).Msg("initial catalog load failed")
	}

	if cfg.WatchCatalog {
		changes, err := catalog.Watch(ctx, cfg.CatalogPath, 0)
		if err != nil {
			return err
		}
		go func() {
			for range changes {
				if err := mgr.Reload(ctx); err != nil && ctx.Err() == nil {
					log.Warn().Err(err).Msg("catalog reload after change failed")
				}
			}
		}()
	}

	httpapi.SetLogger(log)
	httpapi.SetDefaultLogLevel(cfg.LogLevel)
	httpapi.SetBaseContext(ctx)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	if t, err := cfg.CatalogTimeoutDuration(); err == nil {
		httpapi.SetReloadTimeout(2 * t)
	}
	httpapi.SetCORSOptions(cfg.CORS.Enabled, cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(mgr),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("catalog", sup.Name()).Msg("sonard listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
	log.Info().Msg("sonard stopped")
	return nil
}
