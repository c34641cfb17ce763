package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/oggyb/matchcore/internal/app"
)

// StartMetricsServer serves /metrics on cfg.Metrics.Addr until ctx is cancelled.
// An empty address disables it.
func StartMetricsServer(ctx context.Context, appCtx *app.AppContext) error {
	addr := appCtx.Config.Metrics.Addr
	if addr == "" || appCtx.Metrics == nil {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", appCtx.Metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	appCtx.Logger.Info("starting metrics server", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
