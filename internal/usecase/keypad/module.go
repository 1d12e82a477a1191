package keypad

import (
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/pkg/numfmt"
	"lizzyKeypad/internal/ports"
)

var keysPressedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "keypad_keys_pressed_total",
		Help: "Total number of keypad keys pressed, by key kind",
	},
	[]string{"kind"},
)

// eventKey формирует читаемый ключ сообщения для брокера, например "s1: 1 + 1".
func eventKey(op domain.Operation) string {
	return op.SessionID + ": " + numfmt.Format(op.Number1) + " " + string(op.Operation) + " " + numfmt.Format(op.Number2)
}

// normalizeSessionID обрезает пробелы; пустой id — ошибка запроса.
func normalizeSessionID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", domain.ErrInvalidRequest
	}
	return id, nil
}

// UseCase — бизнес-логика клавиатуры калькулятора.
type UseCase struct {
	sessions  ports.ISessionStore
	repo      ports.IOperationRepository
	broker    ports.IProducer
	analytics ports.IOperationAnalytics
	log       *slog.Logger
	locks     *sessionLocks
}

// New создаёт юзкейс клавиатуры. Нажатия одной сессии в пределах процесса сериализуются. broker и analytics могут быть nil: тогда публикация и аналитика пропускаются.
func New(sessions ports.ISessionStore, repo ports.IOperationRepository, broker ports.IProducer, analytics ports.IOperationAnalytics, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{sessions: sessions, repo: repo, broker: broker, analytics: analytics, log: log, locks: newSessionLocks()}
}
