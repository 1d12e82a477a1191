package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/engine"
)

// IKeypadUseCase — контракт бизнес-логики клавиатуры (нажатия, дисплей, история, обработка событий из Kafka).
type IKeypadUseCase interface {
	Press(ctx context.Context, sessionID string, labels ...string) (engine.State, error)
	Display(ctx context.Context, sessionID string) (engine.State, error)
	Reset(ctx context.Context, sessionID string) error
	History(ctx context.Context) ([]domain.Operation, error)
	HandleOperationEvent(ctx context.Context, op domain.Operation) error
}
