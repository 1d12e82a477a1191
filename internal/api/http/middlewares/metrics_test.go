package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func metricsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PrometheusMetrics)
	r.GET("/api/v1/sessions/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func serve(r http.Handler, path string) {
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
}

// Метка route — шаблон маршрута, id сессии в неё не попадает.
func TestPrometheusMetrics_RouteTemplate(t *testing.T) {
	r := metricsRouter()
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/sessions/:id", "200")
	before := testutil.ToFloat64(counter)

	serve(r, "/api/v1/sessions/a")
	serve(r, "/api/v1/sessions/b")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsInFlight))
}

func TestPrometheusMetrics_Unmatched(t *testing.T) {
	r := metricsRouter()
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	before := testutil.ToFloat64(counter)

	serve(r, "/wp-admin")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestPrometheusMetrics_SkipsScrape(t *testing.T) {
	r := metricsRouter()
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/metrics", "200")
	before := testutil.ToFloat64(counter)

	serve(r, "/metrics")

	assert.Equal(t, before, testutil.ToFloat64(counter))
}
