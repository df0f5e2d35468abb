// SPDX-License-Identifier: MIT

package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tollmatrix"

// Metrics holds the per-run collectors on a private registry.
type Metrics struct {
	RecordsLoaded    *prometheus.CounterVec
	RecordsRejected  *prometheus.CounterVec
	MatrixPoints     prometheus.Gauge
	UnrolledRows     prometheus.Counter
	ThresholdMatches prometheus.Gauge
	StageSeconds     *prometheus.GaugeVec
	LastRun          prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics registers every collector on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		RecordsLoaded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_loaded_total",
			Help:      "Input rows accepted by the loader, by input kind",
		}, []string{"kind"}),
		RecordsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_rejected_total",
			Help:      "Input files rejected by the loader, by input kind",
		}, []string{"kind"}),
		MatrixPoints: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "matrix_points",
			Help:      "Number of points in the last built matrix",
		}),
		UnrolledRows: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unrolled_rows_total",
			Help:      "Rows produced by unrolling matrices",
		}),
		ThresholdMatches: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "threshold_matches",
			Help:      "Ids returned by the last threshold query",
		}),
		StageSeconds: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time of the last run of each stage",
		}, []string{"stage"}),
		LastRun: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the metrics were last exported",
		}),
		registry: reg,
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Stage starts timing a stage; call the returned func when it ends.
func (m *Metrics) Stage(name string) func() {
	start := time.Now()
	return func() { m.StageSeconds.WithLabelValues(name).Set(time.Since(start).Seconds()) }
}

// WriteTextfile stamps LastRun and writes the registry in the node-exporter
// textfile format. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	m.LastRun.SetToCurrentTime()
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("telemetry: write %s: %w", path, err)
	}
	return nil
}
