package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/engine"
	"lizzyKeypad/internal/pkg/numfmt"
	"lizzyKeypad/internal/ports"
)

var _ ports.ISessionStore = (*SessionStore)(nil)

const sessionKeyPrefix = "keypad:session:"

// sessionDoc — состояние клавиатуры в Redis (JSON). Операнд хранится строкой: может быть Inf/NaN.
type sessionDoc struct {
	Display      string `json:"display"`
	FirstOperand string `json:"first_operand,omitempty"`
	Operator     string `json:"operator,omitempty"`
	Waiting      bool   `json:"waiting"`
}

func toDoc(s engine.State) sessionDoc {
	doc := sessionDoc{
		Display:  s.Display,
		Operator: string(s.Operator),
		Waiting:  s.WaitingForSecondOperand,
	}
	if s.HasFirstOperand {
		doc.FirstOperand = numfmt.Encode(s.FirstOperand)
	}
	return doc
}

func fromDoc(doc sessionDoc) (engine.State, error) {
	s := engine.State{
		Display:                 doc.Display,
		Operator:                domain.Operator(doc.Operator),
		WaitingForSecondOperand: doc.Waiting,
	}
	if s.Display == "" {
		return engine.State{}, errors.New("empty display")
	}
	if s.Operator != domain.OpNone {
		if _, err := domain.ParseOperator(doc.Operator); err != nil {
			return engine.State{}, err
		}
	}
	if doc.FirstOperand != "" {
		v, err := numfmt.Decode(doc.FirstOperand)
		if err != nil {
			return engine.State{}, fmt.Errorf("first operand: %w", err)
		}
		s.FirstOperand = v
		s.HasFirstOperand = true
	}
	return s, nil
}

// SessionStore реализует ports.ISessionStore через Redis. Ключ — keypad:session:<id>, значение — JSON состояния.
type SessionStore struct {
	cli *Client
	ttl time.Duration
	log *slog.Logger
}

// NewSessionStore возвращает хранилище сессий. ttl == 0 — ключи без срока жизни.
func NewSessionStore(cli *Client, ttl time.Duration, log *slog.Logger) *SessionStore {
	if log == nil {
		log = slog.Default()
	}
	return &SessionStore{cli: cli, ttl: ttl, log: log}
}

// Load возвращает состояние сессии. Если ключа нет — found == false.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (engine.State, bool, error) {
	raw, err := s.cli.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) { // ключа нет
			return engine.State{}, false, nil
		}
		return engine.State{}, false, fmt.Errorf("redis get session: %w", err)
	}
	var doc sessionDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Debug("session parse failed", "session", sessionID, "error", err)
		return engine.State{}, false, fmt.Errorf("session parse value: %w", err)
	}
	state, err := fromDoc(doc)
	if err != nil {
		return engine.State{}, false, fmt.Errorf("session decode: %w", err)
	}
	return state, true, nil
}

// Save записывает состояние сессии и продлевает TTL.
func (s *SessionStore) Save(ctx context.Context, sessionID string, state engine.State) error {
	raw, err := json.Marshal(toDoc(state))
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.cli.Set(ctx, sessionKeyPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

// Delete удаляет сессию. Удаление несуществующей сессии — не ошибка.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.cli.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// Ping проверяет доступность Redis (readiness).
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.cli.Ping(ctx)
}
