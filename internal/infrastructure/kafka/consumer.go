package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

// ErrEventNotHandled — событие не удалось обработать за все попытки; консьюмер остановлен без коммита.
var ErrEventNotHandled = errors.New("event not handled")

// messageReader — часть *kafka.Reader, которой пользуется консьюмер.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer читает события операций и передаёт их в юзкейс (дальше в ClickHouse).
type Consumer struct {
	r           messageReader
	uc          ports.IKeypadUseCase
	log         *slog.Logger
	maxAttempts int
	backoff     time.Duration
}

// NewConsumer создаёт консьюмера по конфигу. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.IKeypadUseCase, log *slog.Logger) *Consumer {
	if log == nil {
		log = slog.Default()
	}
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log.With("component", "kafka-consumer")
	return c
}

// Message — сообщение из Kafka.
type Message = kafka.Message

// Run читает сообщения, пока не отменён ctx. Сообщение коммитится, если handle его обработал или счёл битым.
// Если попытки исчерпаны, Run возвращает ErrEventNotHandled и больше ничего не читает: коммит следующего
// сообщения сдвинул бы offset партиции за необработанное. Группа получит его снова после перезапуска.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info("consumer started")
	for {
		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("fetch failed, consumer stopped", "error", err)
			return err
		}

		if !c.handle(ctx, msg) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: partition %d offset %d", ErrEventNotHandled, msg.Partition, msg.Offset)
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("commit failed, consumer stopped", "error", err, "offset", msg.Offset)
			return err
		}
	}
}

// handle декодирует событие и отдаёт его юзкейсу, повторяя до maxAttempts раз с паузой backoff.
// true — сообщение можно коммитить: обработано или битое (повтор не поможет).
func (c *Consumer) handle(ctx context.Context, msg Message) bool {
	var op domain.Operation
	if err := json.Unmarshal(msg.Value, &op); err != nil {
		c.log.Warn("malformed event skipped", "error", err, "partition", msg.Partition, "offset", msg.Offset)
		return true
	}

	attempts := max(c.maxAttempts, 1)
	for attempt := 1; ; attempt++ {
		err := c.uc.HandleOperationEvent(ctx, op)
		if err == nil {
			return true
		}
		if attempt >= attempts {
			c.log.Error("event left uncommitted", "error", err, "attempts", attempt, "session", op.SessionID, "offset", msg.Offset)
			return false
		}
		c.log.Warn("event handling failed, retrying", "error", err, "attempt", attempt)
		if !sleep(ctx, c.backoff) {
			return false
		}
	}
}

// sleep ждёт d или отмены ctx; false — ctx отменён.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *Consumer) Close() error {
	return c.r.Close()
}
