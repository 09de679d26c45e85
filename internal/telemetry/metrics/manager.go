package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterHandleRequestPanic prometheus.Counter
	CounterRateLimited        prometheus.Counter

	CounterStatsRecomputes  prometheus.Counter
	CounterStatsIncrements  prometheus.Counter
	CounterTrophiesAwarded  prometheus.Counter
	CounterCheckerFailures  prometheus.Counter
	CounterEvaluationsSkipped prometheus.Counter

	CounterJobsDispatched prometheus.Counter
	CounterJobsInline     prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistRecomputeDuration    prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("trophystats", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("trophystats", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimited := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterStatsRecomputes := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "stats_recomputes",
		Help:      "The total number of full statistics recomputations",
	})
	counterStatsIncrements := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "stats_increments",
		Help:      "The total number of incremental statistics updates",
	})
	counterTrophiesAwarded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "trophies_awarded",
		Help:      "The total number of awarded trophies",
	})
	counterCheckerFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "trophy_checker_failures",
		Help:      "The total number of trophy checker errors/panics",
	})
	counterEvaluationsSkipped := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "trophy_evaluations_skipped",
		Help:      "The total number of users skipped by the evaluation policy gate",
	})
	counterJobsDispatched := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "jobs_dispatched",
		Help:      "The total number of jobs handed to the async dispatcher",
	})
	counterJobsInline := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "jobs_inline",
		Help:      "The total number of jobs ran inline (sync fallback)",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Request serving duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
	histRecomputeDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "stats_recompute_duration_seconds",
		Help:      "Full statistics recompute duration in seconds",
		Buckets:   prometheus.DefBuckets,
	})

	return &Manager{
		CounterRequests:           counterRequests,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		CounterRateLimited:        counterRateLimited,
		CounterStatsRecomputes:    counterStatsRecomputes,
		CounterStatsIncrements:    counterStatsIncrements,
		CounterTrophiesAwarded:    counterTrophiesAwarded,
		CounterCheckerFailures:    counterCheckerFailures,
		CounterEvaluationsSkipped: counterEvaluationsSkipped,
		CounterJobsDispatched:     counterJobsDispatched,
		CounterJobsInline:         counterJobsInline,
		GaugeRequests:             gaugeRequests,
		GaugeLifeSignal:           gaugeLifeSignal,
		HistogramRequestDuration:  histogramRequestDuration,
		HistRecomputeDuration:     histRecomputeDuration,
	}
}
