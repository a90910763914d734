package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterSelections     *prometheus.CounterVec
	CounterCoverageGaps   *prometheus.CounterVec
	CounterPrereqCycles   prometheus.Counter
	CounterCommitFailures prometheus.Counter

	// gauges
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistSelectionDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("workouts", "test_selector", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("workouts", "test_selector", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterSelections := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "selections",
		Help:      "The total number of workout selection runs",
	}, []string{"outcome"})
	counterCoverageGaps := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "section_coverage_gaps",
		Help:      "Sections that came up short of the configured exercise count",
	}, []string{"section"})
	counterPrereqCycles := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "prerequisite_cycles",
		Help:      "Prerequisite cycles detected in the exercise catalog",
	})
	counterCommitFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "commit_failures",
		Help:      "Delivered workout commits that failed and were discarded",
	})

	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histSelectionDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "selection_duration_seconds",
		Help:      "Duration of a full workout selection run",
		Buckets:   prometheus.DefBuckets,
	})

	return &Manager{
		CounterSelections:     counterSelections,
		CounterCoverageGaps:   counterCoverageGaps,
		CounterPrereqCycles:   counterPrereqCycles,
		CounterCommitFailures: counterCommitFailures,
		GaugeLifeSignal:       gaugeLifeSignal,
		HistSelectionDuration: histSelectionDuration,
	}
}
