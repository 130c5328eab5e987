package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	recommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clothing_recommendations_total",
			Help: "Clothing recommendations by condition and outcome (hit, miss)",
		},
		[]string{"condition", "outcome"},
	)

	weatherUpstreamTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_upstream_requests_total",
			Help: "Outbound weather requests by upstream and outcome",
		},
		[]string{"upstream", "outcome"},
	)

	weatherBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "weather_circuit_breaker_state",
			Help: "Weather circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	lookupsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookups_recorded_total",
			Help: "Lookup history writes by outcome",
		},
		[]string{"outcome"},
	)
)

// ObserveHTTPRequest records one completed request.
func ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// IncRecommendation counts a lookup; hit is false when the bucket had no items.
func IncRecommendation(condition string, hit bool) {
	outcome := "hit"
	if !hit {
		outcome = "miss"
	}
	recommendationsTotal.WithLabelValues(condition, outcome).Inc()
}

// IncWeatherUpstream counts an outbound weather call.
func IncWeatherUpstream(upstream, outcome string) {
	weatherUpstreamTotal.WithLabelValues(upstream, outcome).Inc()
}

// SetWeatherBreakerState publishes the breaker state as a number.
func SetWeatherBreakerState(state float64) {
	weatherBreakerState.Set(state)
}

// IncLookupRecorded counts a history write.
func IncLookupRecorded(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	lookupsRecordedTotal.WithLabelValues(outcome).Inc()
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
