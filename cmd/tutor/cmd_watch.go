package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhamidi/tutor/metrics"
	"github.com/dhamidi/tutor/watch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newWatchCmd(g *globals) *cobra.Command {
	var metricsAddress string

	cmd := &cobra.Command{
		Use:   "watch <path>",
		Short: "Check lessons below a path every time they change",
		Long: `Check every lesson below a path, then check each lesson again
whenever it is written. Runs until interrupted.

With --metrics (or watch.metrics_address in the configuration) Prometheus
metrics are served at /metrics on that address.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := g.config.Watch
			if cmd.Flags().Changed("metrics") {
				cfg.MetricsAddress = metricsAddress
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, args[0], cfg.MetricsAddress, watch.Config{
				Path:          args[0],
				Debounce:      cfg.Debounce,
				Extensions:    cfg.Extensions,
				IncludeHidden: cfg.IncludeHidden,
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&metricsAddress, "metrics", "", "serve Prometheus metrics on this address")

	return cmd
}

func runWatch(ctx context.Context, path, metricsAddress string, cfg watch.Config, out io.Writer) error {
	collector := metrics.NewCollector(prometheus.NewRegistry())

	if metricsAddress != "" {
		srv := &http.Server{Addr: metricsAddress, Handler: metricsMux(collector)}
		go func() {
			log.Infof("serving metrics on %s", metricsAddress)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("metrics server: %s", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	w, err := watch.New(cfg)
	if err != nil {
		return err
	}
	defer w.Close()

	files, err := w.Files()
	if err != nil {
		return fmt.Errorf("list lessons in %s: %w", path, err)
	}
	for _, file := range files {
		reportCheck(out, collector, file)
	}

	return w.Watch(ctx, func(e watch.Event) {
		if e.Removed {
			fmt.Fprintf(out, "removed\t%s\n", e.Path)
			return
		}
		reportCheck(out, collector, e.Path)
	})
}

func reportCheck(out io.Writer, collector *metrics.Collector, path string) {
	start := time.Now()
	doc, size, err := checkLesson(path)
	collector.ObserveCheck(size, doc, time.Since(start), err)

	if err != nil {
		log.Warningf("%s: %s", path, err)
		fmt.Fprintf(out, "FAIL\t%s\t%v\n", path, err)
		return
	}
	fmt.Fprintf(out, "ok\t%s\t%d steps\n", path, len(doc.Steps()))
}

func metricsMux(collector *metrics.Collector) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	return mux
}
