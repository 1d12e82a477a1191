package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "lizzyKeypad/internal/api/grpc"
	apihttp "lizzyKeypad/internal/api/http"
	"lizzyKeypad/internal/api/http/controllers/keypad"
	"lizzyKeypad/internal/api/http/controllers/system"
	"lizzyKeypad/internal/infrastructure/click"
	"lizzyKeypad/internal/infrastructure/kafka"
	"lizzyKeypad/internal/infrastructure/mongo"
	"lizzyKeypad/internal/infrastructure/pg"
	"lizzyKeypad/internal/infrastructure/redis"
	"lizzyKeypad/internal/infrastructure/sqlite"
	"lizzyKeypad/internal/pkg/logger"
	"lizzyKeypad/internal/pkg/otel"
	"lizzyKeypad/internal/ports"
	keypadUsecase "lizzyKeypad/internal/usecase/keypad"
)

const (
	serviceName     = "lizzykeypad"
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (хранилища подключаются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает хранилища, Kafka и ClickHouse (если включены), инициализирует зависимости
// и запускает HTTP- и gRPC-серверы. Блокируется до SIGINT/SIGTERM.
func (a *App) Run() error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	shutdownTracing, err := otel.Setup(startCtx, serviceName, a.cfg.Otel)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shCtx); err != nil {
			log.Warn("otel shutdown", "error", err)
		}
	}()

	repo, closeRepo, err := a.openHistory(startCtx, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	rdb, err := redis.New(startCtx, &a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()
	sessions := redis.NewSessionStore(rdb, a.cfg.Redis.SessionTTL, log)

	// Интерфейсы остаются nil, если Kafka или ClickHouse выключены: юзкейс пропускает публикацию и аналитику.
	var broker ports.IProducer
	if a.cfg.Kafka.Enabled {
		producer := kafka.New(&a.cfg.Kafka).Producer()
		defer producer.Close()
		broker = producer
	}

	var analytics ports.IOperationAnalytics
	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(startCtx, &a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		defer ch.Close()
		writer := click.NewOperationWriter(ch)
		if err := writer.EnsureTable(startCtx); err != nil {
			return fmt.Errorf("clickhouse migrate: %w", err)
		}
		analytics = writer
	}

	uc := keypadUsecase.New(sessions, repo, broker, analytics, log)

	runners := make([]runner, 0, 3)
	if a.cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		defer consumer.Close()
		runners = append(runners, runner{name: "kafka consumer", run: consumer.Run})
	}

	grpcSrv := apigrpc.NewServer(a.cfg.Grpc, uc, log)

	srv := apihttp.NewServer(a.cfg.Server, log)
	srv.AddController(
		system.New(repo, sessions, log),
		keypad.New(uc, log))

	runners = append(runners,
		runner{name: "grpc server", run: grpcSrv.Run},
		runner{name: "http server", run: srv.Start})

	log.Info("application started",
		"http", a.cfg.Server.Addr(),
		"grpc", a.cfg.Grpc.Addr(),
		"storage", a.cfg.Storage,
		"kafka", a.cfg.Kafka.Enabled,
		"clickhouse", a.cfg.ClickHouse.Enabled)

	if err := runAll(ctx, runners...); err != nil {
		log.Error("application stopped", "error", err)
		return err
	}
	return nil
}

// openHistory подключает хранилище истории по CALCULATOR_STORAGE и возвращает функцию закрытия.
func (a *App) openHistory(ctx context.Context, log *slog.Logger) (ports.IOperationRepository, func(), error) {
	switch a.cfg.Storage {
	case StoragePostgres:
		db, err := pg.New(ctx, &a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewOperationRepo(db, log), func() { _ = db.Close() }, nil

	case StorageMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		repo := mongo.NewOperationRepo(cli, log)
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = cli.Close(context.Background())
			return nil, nil, err
		}
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = cli.Close(ctx)
		}
		return repo, closeFn, nil

	case StorageSQLite:
		db, err := sqlite.New(ctx, &a.cfg.SQLite)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite: %w", err)
		}
		return sqlite.NewOperationRepo(db, log), func() { _ = db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown storage %q", a.cfg.Storage)
}
