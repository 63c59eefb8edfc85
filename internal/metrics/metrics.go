package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FetchRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsagent",
		Name:      "fetch_requests_total",
		Help:      "fetch-news requests by outcome",
	}, []string{"outcome"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "newsagent",
		Name:      "upstream_duration_seconds",
		Help:      "Latency of calls to the search and generative providers",
		Buckets:   prometheus.DefBuckets,
	}, []string{"provider"})

	SummaryFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "newsagent",
		Name:      "summary_fallbacks_total",
		Help:      "Model replies that could not be parsed and were replaced by fallback text",
	})
)

func ObserveUpstream(provider string, start time.Time) {
	UpstreamDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}
