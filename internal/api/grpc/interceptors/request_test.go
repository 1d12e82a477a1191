package interceptors

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type sessionReq struct{ id string }

func (r sessionReq) GetSessionId() string { return r.id }

func run(t *testing.T, req any, handlerErr error) string {
	t.Helper()
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ic := LoggingUnaryInterceptor(log)

	resp, err := ic(context.Background(), req, &grpc.UnaryServerInfo{FullMethod: "/keypad.v1.KeypadService/Press"},
		func(context.Context, any) (any, error) {
			if handlerErr != nil {
				return nil, handlerErr
			}
			return "ok", nil
		})
	if handlerErr != nil {
		require.ErrorIs(t, err, handlerErr)
	} else {
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	}
	return buf.String()
}

func TestLoggingUnaryInterceptor(t *testing.T) {
	tests := []struct {
		name  string
		req   any
		err   error
		wants []string
	}{
		{
			name:  "успешный вызов с сессией",
			req:   sessionReq{id: "s1"},
			wants: []string{"level=INFO", "session=s1", "grpc_code=OK", "method=/keypad.v1.KeypadService/Press"},
		},
		{
			name:  "невалидный запрос",
			req:   sessionReq{},
			err:   status.Error(codes.InvalidArgument, "no keys"),
			wants: []string{"level=WARN", "grpc_code=InvalidArgument", "error=\"no keys\""},
		},
		{
			name:  "внутренняя ошибка",
			req:   struct{}{},
			err:   status.Error(codes.Internal, "internal error"),
			wants: []string{"level=ERROR", "grpc_code=Internal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, tt.req, tt.err)
			for _, w := range tt.wants {
				assert.Contains(t, out, w)
			}
		})
	}
}
