package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockUntilDone — компонент, который работает до отмены ctx.
func blockUntilDone(stopped chan<- struct{}) func(context.Context) error {
	return func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return ctx.Err()
	}
}

// Упавший gRPC-сервер останавливает HTTP-сервер, ошибка возвращается с именем компонента.
func TestRunAll_FailureStopsOthers(t *testing.T) {
	httpStopped := make(chan struct{})
	bindErr := errors.New("listen tcp :9090: bind: address already in use")

	done := make(chan error, 1)
	go func() {
		done <- runAll(context.Background(),
			runner{name: "grpc server", run: func(context.Context) error { return bindErr }},
			runner{name: "http server", run: blockUntilDone(httpStopped)},
		)
	}()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, bindErr)
		assert.Contains(t, err.Error(), "grpc server")
	case <-time.After(5 * time.Second):
		t.Fatal("runAll не завершился после ошибки компонента")
	}

	select {
	case <-httpStopped:
	default:
		t.Fatal("HTTP-сервер не получил отмену ctx")
	}
}

// Отмена внешнего ctx (SIGTERM) — штатное завершение без ошибки.
func TestRunAll_CancelIsNotAnError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	first, second := make(chan struct{}), make(chan struct{})

	done := make(chan error, 1)
	go func() {
		done <- runAll(ctx,
			runner{name: "kafka consumer", run: blockUntilDone(first)},
			runner{name: "http server", run: func(ctx context.Context) error {
				<-ctx.Done()
				close(second)
				return nil
			}},
		)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runAll не завершился после отмены ctx")
	}
	<-first
	<-second
}
