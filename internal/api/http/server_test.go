package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingController struct{}

func (pingController) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/v1/ping/:id", func(c *gin.Context) { c.String(http.StatusOK, c.Param("id")) })
}

func newTestServer() *Server {
	s := NewServer(ServerConfig{Host: "127.0.0.1", Port: "0", AllowOrigins: []string{"http://localhost:5173"}}, nil)
	s.AddController(pingController{})
	return s
}

func TestServerConfig_Addr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8080", ServerConfig{Host: "0.0.0.0", Port: "8080"}.Addr())
}

func TestRouter_Routes(t *testing.T) {
	r := newTestServer().Router()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping/abc", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", w.Body.String())
}

// Preflight с разрешённого origin получает CORS-заголовки, в том числе для DELETE.
func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestServer().Router()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ping/abc", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.True(t, strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete))
}

func TestRouter_CORSForbiddenOrigin(t *testing.T) {
	r := newTestServer().Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping/abc", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
