package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/prodrate/internal/watch"
	"github.com/katalvlaran/prodrate/metrics"
	"github.com/katalvlaran/prodrate/solve"
)

func newWatchCommand(a *app) *cobra.Command {
	req := &request{}
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve targets whenever the data file changes",
		Long: `Resolve the targets, then watch the data file and resolve again after
every change. The graph is decomposed again only when the file changes.
With metrics.enabled, a Prometheus endpoint is served on metrics.address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var rec solve.Recorder
			if a.cfg.Metrics.Enabled {
				c, err := serveMetrics(ctx, a)
				if err != nil {
					return err
				}
				rec = c
			}

			s, err := openSession(a.cfg, a.log, rec)
			if err != nil {
				return err
			}
			if err := req.resolve(cmd, a, s); err != nil {
				return err
			}

			w, err := watch.New(a.cfg.Data.Path, func(_ context.Context, runID string) error {
				a.log.WithField("run_id", runID).Debug("data file changed")
				if err := s.reload(); err != nil {
					return err
				}
				return req.resolve(cmd, a, s)
			}, watch.WithDebounce(debounce), watch.WithLogger(a.log))
			if err != nil {
				return err
			}
			defer w.Close()
			a.log.WithField("path", w.Path()).Info("watching data file")

			return w.Run(ctx)
		},
	}
	req.bind(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce,
		"Quiet period before a change is picked up")

	return cmd
}

// serveMetrics registers a Collector and serves it until ctx is done.
func serveMetrics(ctx context.Context, a *app) (*metrics.Collector, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	c := metrics.NewCollector(a.cfg.Metrics.Namespace)
	if err := c.Register(reg); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(a.cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: a.cfg.Metrics.Address, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		a.log.WithField("address", srv.Addr).Info("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.WithError(err).Error("metrics server stopped")
		}
	}()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	return c, nil
}
