// Package telemetry wires Prometheus metrics and OpenTelemetry tracing
// around the core's public operations. The core packages themselves
// (internal/ie, internal/rf, internal/heatmap, ...) stay silent per
// spec; only this package and the daemon layers that call into the core
// touch a metrics registry or a tracer.
package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// IEParseTotal counts parse_all invocations, labeled by the highest
	// Wi-Fi generation the parse resolved to.
	IEParseTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netkit",
			Name:      "ie_parse_total",
			Help:      "Total number of IE decode passes, by resolved wifi_generation",
		},
		[]string{"wifi_generation"},
	)

	// HeatmapCellDuration observes the wall-clock cost of building one
	// heatmap grid, labeled by interpolation method.
	HeatmapCellDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "netkit",
			Name:      "heatmap_build_duration_seconds",
			Help:      "Time to interpolate a full heatmap grid",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// DeadZoneCount records the number of dead zones found per detection
	// run, labeled by severity.
	DeadZoneCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netkit",
			Name:      "deadzone_zones_total",
			Help:      "Total dead zones detected, by severity",
		},
		[]string{"severity"},
	)

	// PlannerRunsTotal counts channel/power planner invocations.
	PlannerRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netkit",
			Name:      "planner_runs_total",
			Help:      "Total channel/power planner runs, by regulatory domain",
		},
		[]string{"domain"},
	)

	// SurveyMeasurementsTotal counts measurements folded into sessions.
	SurveyMeasurementsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netkit",
			Name:      "survey_measurements_total",
			Help:      "Total measurements added to survey sessions, by outcome",
		},
		[]string{"outcome"}, // merged, appended, rejected
	)

	once sync.Once
)

// Register registers every NetKit metric with the default Prometheus
// registry. Idempotent, matching the teacher's InitMetrics.
func Register() {
	once.Do(func() {
		prometheus.DefaultRegisterer.MustRegister(
			IEParseTotal,
			HeatmapCellDuration,
			DeadZoneCount,
			PlannerRunsTotal,
			SurveyMeasurementsTotal,
		)
	})
}
