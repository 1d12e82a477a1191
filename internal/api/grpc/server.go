package grpc

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"lizzyKeypad/internal/api/grpc/interceptors"
	"lizzyKeypad/internal/api/grpc/keypad"
	"lizzyKeypad/internal/api/grpc/keypadv1"
	"lizzyKeypad/internal/ports"
)

// Config — настройки gRPC-сервера. Переменные: CALCULATOR_GRPC_HOST, CALCULATOR_GRPC_PORT.
type Config struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"9090"`
	// ShutdownTimeout — сколько ждать завершения активных вызовов при остановке.
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Addr — адрес для net.Listen.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Server — gRPC-сервер: регистрирует сервисы и слушает порт.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	addr   string
	wait   time.Duration
	log    *slog.Logger
}

// NewServer создаёт gRPC-сервер и регистрирует KeypadService и стандартный health-сервис.
// Логирующий интерцептор пишет метод, latency_ms и grpc_code (аналог HTTP middleware), otelgrpc добавляет спаны.
func NewServer(cfg Config, uc ports.IKeypadUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors.LoggingUnaryInterceptor(log)),
	)
	keypadv1.RegisterKeypadServiceServer(s, keypad.New(uc, log))

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(keypadv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	wait := cfg.ShutdownTimeout
	if wait <= 0 {
		wait = 10 * time.Second
	}
	return &Server{grpc: s, health: hs, addr: cfg.Addr(), wait: wait, log: log}
}

// Run слушает addr и блокируется до отмены ctx, затем останавливает сервер.
// Ошибка листенера или Serve возвращается сразу.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.runOn(ctx, lis)
}

func (s *Server) runOn(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(lis)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), s.wait)
	defer cancel()
	return s.Stop(stopCtx)
}

// Serve принимает соединения на готовом листенере. Остановка через Stop() не считается ошибкой.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("grpc server listening", "addr", lis.Addr().String())
	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Stop переводит health в NOT_SERVING и останавливает сервер (graceful, с фолбэком на жёсткую остановку по ctx).
func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
