package system

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lizzyKeypad/internal/ports"
)

// Controller — системные маршруты: liveness, readiness, метрики Prometheus.
type Controller struct {
	repo     ports.IOperationRepository
	sessions ports.ISessionStore
	log      *slog.Logger
}

// New создаёт системный контроллер. Readiness проверяет хранилище истории и хранилище сессий.
func New(repo ports.IOperationRepository, sessions ports.ISessionStore, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{repo: repo, sessions: sessions, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	if err := c.repo.Ping(ctx.Request.Context()); err != nil {
		c.log.Warn("ready check failed", "component", "history", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "component": "history", "error": err.Error()})
		return
	}
	if err := c.sessions.Ping(ctx.Request.Context()); err != nil {
		c.log.Warn("ready check failed", "component", "sessions", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "component": "sessions", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
