package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postsRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "widget_posts_requests_total",
		Help: "Requests to the posts endpoint by outcome.",
	}, []string{"outcome"})

	postsRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "widget_posts_request_duration_seconds",
		Help:    "Posts endpoint latency, dominated by the Notion query.",
		Buckets: prometheus.DefBuckets,
	})
)

func observeRequest(outcome string, start time.Time) {
	postsRequestsTotal.WithLabelValues(outcome).Inc()
	postsRequestDuration.Observe(time.Since(start).Seconds())
}
