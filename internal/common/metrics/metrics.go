// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ToolRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_requests_total",
			Help: "Total number of generation requests processed per tool",
		},
		[]string{"tool_id", "status"},
	)

	ToolRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "tool_request_duration_seconds",
			Help: "Duration of generation request processing in seconds",
		},
		[]string{"tool_id"},
	)

	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of LLM gateway calls",
		},
		[]string{"status"},
	)

	SchemaFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schema_fallback_total",
			Help: "Structured responses that failed schema validation and fell back to text",
		},
		[]string{"tool_id"},
	)

	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_cache_hits_total",
			Help: "Result cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)
