package keypad

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/engine"
	"lizzyKeypad/internal/pkg/numfmt"
)

// Press — загружает состояние сессии, применяет клавиши по порядку, записывает новое состояние,
// затем сохраняет разрешённые операции в историю (и в брокер). Неизвестная сессия начинается с начального состояния.
func (u *UseCase) Press(ctx context.Context, sessionID string, labels ...string) (engine.State, error) {
	id, err := normalizeSessionID(sessionID)
	if err != nil {
		return engine.State{}, err
	}
	if len(labels) == 0 {
		return engine.State{}, fmt.Errorf("%w: no keys", domain.ErrInvalidRequest)
	}

	unlock := u.locks.lock(id)
	defer unlock()

	state, err := u.load(ctx, id)
	if err != nil {
		return engine.State{}, err
	}

	var comps []*engine.Computation
	for _, label := range labels {
		key := engine.Classify(label)
		keysPressedTotal.WithLabelValues(key.Kind.String()).Inc()

		next, comp := engine.Apply(state, key)
		if comp != nil {
			comps = append(comps, comp)
		}
		state = next
	}

	// сначала состояние, потом история
	if err := u.sessions.Save(ctx, id, state); err != nil {
		return engine.State{}, fmt.Errorf("save session: %w", err)
	}
	for _, comp := range comps {
		if err := u.record(ctx, id, comp); err != nil {
			return engine.State{}, err
		}
	}
	u.log.Debug("keys pressed", "session", id, "keys", len(labels), "display", state.Display)

	return state, nil
}

// Display — текущее состояние сессии (начальное, если сессии нет).
func (u *UseCase) Display(ctx context.Context, sessionID string) (engine.State, error) {
	id, err := normalizeSessionID(sessionID)
	if err != nil {
		return engine.State{}, err
	}
	return u.load(ctx, id)
}

// Reset — удаляет сессию; следующее чтение вернёт "0".
func (u *UseCase) Reset(ctx context.Context, sessionID string) error {
	id, err := normalizeSessionID(sessionID)
	if err != nil {
		return err
	}
	unlock := u.locks.lock(id)
	defer unlock()

	if err := u.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	u.log.Info("session reset", "session", id)
	return nil
}

// History — история операций (обвязка над репозиторием).
func (u *UseCase) History(ctx context.Context) ([]domain.Operation, error) {
	return u.repo.GetHistory(ctx)
}

// HandleOperationEvent вызывается консьюмером при получении сообщения из топика операций (часть IKeypadUseCase).
func (u *UseCase) HandleOperationEvent(ctx context.Context, op domain.Operation) error {
	if u.analytics == nil {
		u.log.Debug("analytics disabled, event skipped", "session", op.SessionID)
		return nil
	}
	if err := u.analytics.WriteOperation(ctx, op); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("operation stored to click", "session", op.SessionID, "number1", op.Number1, "operation", op.Operation, "number2", op.Number2, "result", op.Display)

	return nil
}

func (u *UseCase) load(ctx context.Context, id string) (engine.State, error) {
	state, found, err := u.sessions.Load(ctx, id)
	if err != nil {
		return engine.State{}, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return engine.New(), nil
	}
	return state, nil
}

// record сохраняет разрешённую операцию в БД и публикует её в брокер. Ошибка брокера не фатальна.
func (u *UseCase) record(ctx context.Context, sessionID string, comp *engine.Computation) error {
	op := domain.Operation{
		SessionID: sessionID,
		Number1:   comp.Left,
		Number2:   comp.Right,
		Operation: comp.Operator,
		Result:    comp.Result,
		Display:   numfmt.Format(comp.Result),
		Timestamp: time.Now(),
	}
	key := eventKey(op)

	if err := u.repo.SaveOperation(ctx, op); err != nil {
		return fmt.Errorf("save operation: %w", err)
	}
	u.log.Info("operation saved", "key", key, "result", op.Display)

	if u.broker == nil {
		return nil
	}
	value, err := json.Marshal(op)
	if err != nil {
		return err
	}
	if err := u.broker.Send(ctx, []byte(key), value); err != nil {
		u.log.Warn("broker send", "key", key, "error", err)
	} else {
		u.log.Info("operation published", "key", key, "result", op.Display)
	}
	return nil
}
