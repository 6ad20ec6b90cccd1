package commands

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docsite/internal/generator"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output      string        `short:"o" help:"Output directory; overrides output.directory"`
	Format      []string      `short:"f" help:"Output formats; overrides output.formats"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9090)"`
	Debounce    time.Duration `help:"Quiet period after a change before re-rendering" default:"500ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		stop := serveMetrics(w.MetricsAddr, reg)
		defer stop()
	}

	render := func(ctx context.Context) error {
		cfg, err := loadConfig(root)
		if err != nil {
			return err
		}
		gen := generator.New(outputDir(w.Output, cfg)).SetClean(cfg.Output.Clean).Protect(root.Config).SetRecorder(recorder)
		return runRender(ctx, g, gen, cfg, w.Format)
	}

	// A broken config at startup is fatal; later ones only log and wait for a fix.
	if err := render(ctx); err != nil {
		return err
	}

	watcher, err := watch.NewConfigWatcher(root.Config, w.Debounce, func(ctx context.Context) error {
		err := render(ctx)
		recorder.IncConfigReload(err == nil)
		return err
	})
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}

func serveMetrics(addr string, reg *prom.Registry) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		slog.Info("Serving metrics", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !stdErrors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", logfields.Error(err))
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}
