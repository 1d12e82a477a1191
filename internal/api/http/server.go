package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lizzyKeypad/internal/api/http/middlewares"
)

// ServerConfig — настройки HTTP-сервера. Переменные: CALCULATOR_SERVER_HOST, CALCULATOR_SERVER_PORT.
type ServerConfig struct {
	Host         string        `envconfig:"HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"PORT" default:"8080"`
	AllowOrigins []string      `envconfig:"ALLOW_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// Addr — адрес для net.Listen.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Controller — контракт: контроллер регистрирует свои маршруты на роутере.
type Controller interface {
	RegisterRoutes(r *gin.Engine)
}

// Server — API-сервер: конфиг и список контроллеров.
type Server struct {
	cfg         ServerConfig
	log         *slog.Logger
	controllers []Controller
	srv         *http.Server
}

// NewServer создаёт сервер с конфигом.
func NewServer(cfg ServerConfig, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{cfg: cfg, log: log}
}

// AddController добавляет один или несколько контроллеров.
func (s *Server) AddController(c ...Controller) {
	s.controllers = append(s.controllers, c...)
}

// Router собирает gin-роутер со всеми мидлварями и маршрутами контроллеров.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	// Браузерный фронт живёт на другом origin: без CORS preflight (OPTIONS) получит 404 и POST не уйдёт.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))
	r.Use(middlewares.RequestLogger(s.log))
	r.Use(middlewares.PrometheusMetrics)
	for _, c := range s.controllers {
		c.RegisterRoutes(r)
	}
	return r
}

// Start поднимает роутер, запускает сервер и блокируется до отмены ctx (SIGINT/SIGTERM), затем делает graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	timeout := s.cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	s.srv = &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.Router(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
