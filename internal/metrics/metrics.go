// Package metrics exposes Prometheus counters for the analysis pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
)

var (
	// AnalysesTotal counts completed analyses by framework and by how the
	// result was produced (ai or fallback).
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mapmygap_analyses_total",
		Help: "Completed gap analyses by framework and outcome.",
	}, []string{"framework", "outcome"})

	// AIRequests counts invocation-layer results by endpoint and error kind.
	AIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mapmygap_ai_requests_total",
		Help: "AI provider requests by purpose and result.",
	}, []string{"purpose", "result"})

	// AILatency observes end-to-end AI invocation latency in seconds.
	AILatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mapmygap_ai_latency_seconds",
		Help:    "AI invocation latency including model fallback attempts.",
		Buckets: prometheus.DefBuckets,
	})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
