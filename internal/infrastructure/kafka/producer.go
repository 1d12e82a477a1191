package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"lizzyKeypad/internal/ports"
)

var _ ports.IProducer = (*Producer)(nil)

// contentTypeJSON — заголовок событий: тело — domain.Operation в JSON.
var contentTypeJSON = kafka.Header{Key: "content-type", Value: []byte("application/json")}

// Producer публикует события операций в топик.
type Producer struct {
	w *kafka.Writer
}

// Send пишет одно сообщение синхронно: возврат без ошибки означает подтверждение брокера.
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:     key,
		Value:   value,
		Headers: []kafka.Header{contentTypeJSON},
		Time:    time.Now(),
	})
}

func (p *Producer) Close() error {
	return p.w.Close()
}
