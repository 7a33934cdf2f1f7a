// Package metrics exposes scan progress counters over an opt-in
// Prometheus endpoint, useful when a run spans hours.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the scan's Prometheus collectors on a private registry.
type Metrics struct {
	BasesScanned    prometheus.Counter
	Candidates      prometheus.Counter
	SequenceEntries prometheus.Counter
	CurrentBase     prometheus.Gauge
	CurrentMax      prometheus.Gauge

	reg *prometheus.Registry
}

// New returns a Metrics with all collectors registered.
func New() *Metrics {
	m := &Metrics{
		BasesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "palinscan_bases_scanned_total",
			Help: "Number of bases for which P(n) has been computed.",
		}),
		Candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "palinscan_candidates_total",
			Help: "Base-n palindromes offered to the binary palindrome detector.",
		}),
		SequenceEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "palinscan_sequence_entries_total",
			Help: "Newly-maximal P(n) values emitted so far.",
		}),
		CurrentBase: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "palinscan_current_base",
			Help: "Base most recently searched.",
		}),
		CurrentMax: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "palinscan_sequence_max",
			Help: "Largest P(n) emitted so far. Loses precision above 2^53.",
		}),
		reg: prometheus.NewRegistry(),
	}
	m.reg.MustRegister(m.BasesScanned, m.Candidates, m.SequenceEntries, m.CurrentBase, m.CurrentMax)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Serve runs an HTTP server for the metrics handler on addr until ctx is
// cancelled. Errors other than server shutdown are returned.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
