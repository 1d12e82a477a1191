package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Config — Kafka для событий операций. Переменные: CALCULATOR_KAFKA_ENABLED, BROKERS, TOPIC, GROUP_ID, MAX_ATTEMPTS, RETRY_BACKOFF.
type Config struct {
	Enabled bool   `envconfig:"ENABLED" default:"false"`
	Brokers string `envconfig:"BROKERS" default:"localhost:9092"` // через запятую, если несколько
	Topic   string `envconfig:"TOPIC" default:"keypad-operations"`
	GroupID string `envconfig:"GROUP_ID" default:"lizzykeypad-analytics"`
	// MaxAttempts — сколько раз консьюмер пробует обработать событие, прежде чем оставить его незакоммиченным.
	MaxAttempts  int           `envconfig:"MAX_ATTEMPTS" default:"3"`
	RetryBackoff time.Duration `envconfig:"RETRY_BACKOFF" default:"500ms"`
}

// brokersSlice — адреса брокеров без пустых элементов.
func (c *Config) brokersSlice() []string {
	if c == nil || c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	var out []string
	for _, p := range strings.Split(c.Brokers, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Client — фабрика продюсера и консьюмера. К брокеру подключаются сами Writer и Reader при первой операции.
type Client struct {
	cfg *Config
}

func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Client{cfg: cfg}
}

// Producer создаёт продюсера событий. После использования вызови Close().
// Балансировка по хешу ключа: события одной сессии попадают в одну партицию и читаются по порядку.
func (c *Client) Producer() *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(c.cfg.brokersSlice()...),
		Topic:                  c.cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &Producer{w: w}
}

// Consumer создаёт консьюмера группы GroupID. После использования вызови Close().
func (c *Client) Consumer() *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     c.cfg.brokersSlice(),
		Topic:       c.cfg.Topic,
		GroupID:     c.cfg.GroupID,
		StartOffset: kafka.FirstOffset,
	})
	return &Consumer{
		r:           r,
		maxAttempts: max(c.cfg.MaxAttempts, 1),
		backoff:     c.cfg.RetryBackoff,
	}
}
