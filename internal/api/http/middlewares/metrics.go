package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keypad_http_requests_total",
			Help: "Total number of HTTP requests to the keypad API",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "keypad_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "keypad_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// unmatchedRoute — метка для запросов, не попавших ни в один маршрут (иначе кардинальность растёт от сканеров).
const unmatchedRoute = "unmatched"

// metricsPaths не учитываются: скрейп Prometheus и пробы k8s.
var metricsPaths = map[string]struct{}{
	"/metrics":   {},
	"/liveness":  {},
	"/readyness": {},
}

// PrometheusMetrics считает запросы по методу, шаблону маршрута (/api/v1/sessions/:id/keys, а не конкретный id) и статусу.
func PrometheusMetrics(c *gin.Context) {
	if _, skip := metricsPaths[c.Request.URL.Path]; skip {
		c.Next()
		return
	}

	httpRequestsInFlight.Inc()
	defer httpRequestsInFlight.Dec()
	start := time.Now()

	c.Next()

	route := c.FullPath()
	if route == "" {
		route = unmatchedRoute
	}
	status := strconv.Itoa(c.Writer.Status())

	httpRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
	httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
}
