package interceptors

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// sessionScoped — запросы, привязанные к сессии клавиатуры.
type sessionScoped interface {
	GetSessionId() string
}

// LoggingUnaryInterceptor логирует каждый unary RPC: метод, сессию, длительность, код (аналог HTTP request logger).
// InvalidArgument пишется как Warn, прочие ошибки как Error.
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		attrs := []any{"method", info.FullMethod, "latency_ms", time.Since(start).Milliseconds()}
		if r, ok := req.(sessionScoped); ok && r.GetSessionId() != "" {
			attrs = append(attrs, "session", r.GetSessionId())
		}

		code := status.Code(err)
		attrs = append(attrs, "grpc_code", code.String())
		switch {
		case err == nil:
			log.Info("grpc request", attrs...)
		case code == codes.InvalidArgument || code == codes.Unimplemented:
			log.Warn("grpc request", append(attrs, "error", status.Convert(err).Message())...)
		default:
			log.Error("grpc request", append(attrs, "error", status.Convert(err).Message())...)
		}
		return resp, err
	}
}
