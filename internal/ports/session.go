package ports

//go:generate mockgen -source=session.go -destination=../mocks/session_mock.go -package=mocks

import (
	"context"

	"lizzyKeypad/internal/engine"
)

// ISessionStore — контракт хранения состояния клавиатуры по id сессии.
// Load на неизвестной сессии возвращает found == false без ошибки.
type ISessionStore interface {
	Load(ctx context.Context, sessionID string) (state engine.State, found bool, err error)
	Save(ctx context.Context, sessionID string, state engine.State) error
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}
