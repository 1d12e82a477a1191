package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Config — MongoDB как альтернативное хранилище истории. Переменные: CALCULATOR_MONGO_URI, DATABASE, COLLECTION, TIMEOUT.
type Config struct {
	URI        string        `envconfig:"URI" default:"mongodb://localhost:27017"`
	Database   string        `envconfig:"DATABASE" default:"lizzykeypad"`
	Collection string        `envconfig:"COLLECTION" default:"operations"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// Client — подключённый mongo.Client и коллекция операций.
type Client struct {
	*mongo.Client
	coll *mongo.Collection
}

// New подключается к MongoDB и ждёт пинга не дольше cfg.Timeout.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("lizzykeypad")
	if cfg.Timeout > 0 {
		opts.SetServerSelectionTimeout(cfg.Timeout)
	}
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	return &Client{Client: client, coll: coll}, nil
}

// Coll — коллекция операций.
func (c *Client) Coll() *mongo.Collection {
	return c.coll
}

func (c *Client) Close(ctx context.Context) error {
	return c.Disconnect(ctx)
}
