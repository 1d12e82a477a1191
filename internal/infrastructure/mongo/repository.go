package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/ports"
)

var _ ports.IOperationRepository = (*OperationRepo)(nil)

// operationDoc — документ коллекции операций. BSON хранит Infinity и NaN как обычные double.
// Числового ID у документа нет: в домене ID остаётся 0.
type operationDoc struct {
	SessionID string    `bson:"session_id"`
	Number1   float64   `bson:"number1"`
	Number2   float64   `bson:"number2"`
	Operator  string    `bson:"operation"`
	Result    float64   `bson:"result"`
	Display   string    `bson:"display"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d operationDoc) toDomain() domain.Operation {
	return domain.Operation{
		SessionID: d.SessionID,
		Number1:   d.Number1,
		Number2:   d.Number2,
		Operation: domain.Operator(d.Operator),
		Result:    d.Result,
		Display:   d.Display,
		Timestamp: d.CreatedAt,
	}
}

// OperationRepo — история операций в MongoDB.
type OperationRepo struct {
	coll *mongo.Collection
	ping func(context.Context) error
	log  *slog.Logger
}

func NewOperationRepo(client *Client, log *slog.Logger) *OperationRepo {
	if log == nil {
		log = slog.Default()
	}
	return &OperationRepo{
		coll: client.Coll(),
		ping: func(ctx context.Context) error { return client.Ping(ctx, nil) },
		log:  log,
	}
}

// EnsureIndexes создаёт индексы под выборку истории (по времени) и по сессии. Повторный вызов ничего не меняет.
func (r *OperationRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("mongo indexes: %w", err)
	}
	return nil
}

func (r *OperationRepo) SaveOperation(ctx context.Context, op domain.Operation) error {
	doc := operationDoc{
		SessionID: op.SessionID,
		Number1:   op.Number1,
		Number2:   op.Number2,
		Operator:  string(op.Operation),
		Result:    op.Result,
		Display:   op.Display,
		CreatedAt: op.Timestamp.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("mongo insert operation: %w", err)
	}
	r.log.Debug("operation inserted", "session", op.SessionID, "display", op.Display)
	return nil
}

// GetHistory — все операции, новые первыми; при равном времени порядок вставки (_id) тоже обратный.
func (r *OperationRepo) GetHistory(ctx context.Context) ([]domain.Operation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find history: %w", err)
	}
	defer cursor.Close(ctx)

	list := make([]domain.Operation, 0)
	for cursor.Next(ctx) {
		var d operationDoc
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("mongo decode operation: %w", err)
		}
		list = append(list, d.toDomain())
	}
	return list, cursor.Err()
}

func (r *OperationRepo) Ping(ctx context.Context) error {
	return r.ping(ctx)
}
