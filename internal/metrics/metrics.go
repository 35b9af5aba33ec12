package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Game Metrics
var (
	GamesStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamesStarted,
			Help: HelpTextGamesStarted,
		},
		[]string{LabelActor},
	)

	GamesConcluded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamesConcluded,
			Help: HelpTextGamesConcluded,
		},
		[]string{LabelActor, LabelOutcome},
	)

	OffersComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOffersComputed,
			Help: HelpTextOffersComputed,
		},
	)

	OfferAmounts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameOfferAmounts,
			Help:    HelpTextOfferAmounts,
			Buckets: PrizeAmountBuckets,
		},
	)

	PayoutAmounts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePayoutAmounts,
			Help:    HelpTextPayoutAmounts,
			Buckets: PrizeAmountBuckets,
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)
