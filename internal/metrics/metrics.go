// Package metrics provides Prometheus instrumentation for tstamp batch
// conversions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every tstamp metric. It is separate from the default
// registry so a textfile dump carries only conversion metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Outcome label values.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Conversion metrics.
var (
	ConversionsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "tstamp_conversions_total",
		Help: "Total number of converted values by input/output encoding and outcome.",
	}, []string{"input", "output", "outcome"})

	ConvertDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "tstamp_convert_duration_seconds",
		Help:    "Duration of a convert run in seconds.",
		Buckets: prometheus.DefBuckets,
	})

	LastRunTimestamp = factory.NewGauge(prometheus.GaugeOpts{
		Name: "tstamp_last_run_timestamp_seconds",
		Help: "UNIX time the last convert run finished.",
	})
)

// RecordConversion counts one converted value.
func RecordConversion(input, output, outcome string) {
	ConversionsTotal.WithLabelValues(input, output, outcome).Inc()
}

// WriteTextfile writes the registry in the text exposition format to path,
// atomically, for the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
