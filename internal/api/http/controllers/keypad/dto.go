package keypad

import (
	"fmt"
	"time"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/engine"
	"lizzyKeypad/internal/pkg/numfmt"
)

// PressRequest — нажатия клавиш (для POST /api/v1/sessions/:id/keys).
// Принимается либо список keys, либо одна клавиша key.
type PressRequest struct {
	Keys []string `json:"keys"`
	Key  string   `json:"key"`
}

// Labels возвращает метки клавиш в порядке нажатия.
func (r PressRequest) Labels() []string {
	if len(r.Keys) > 0 {
		return r.Keys
	}
	if r.Key != "" {
		return []string{r.Key}
	}
	return nil
}

// Validate проверяет, что есть хотя бы одна клавиша.
func (r PressRequest) Validate() error {
	if len(r.Labels()) == 0 {
		return fmt.Errorf("%w: keys or key is required", domain.ErrInvalidRequest)
	}
	return nil
}

// StateResponse — состояние дисплея сессии.
type StateResponse struct {
	SessionID string `json:"session_id"`
	Display   string `json:"display"`
	Operator  string `json:"operator"`
	Waiting   bool   `json:"waiting"`
}

func newStateResponse(sessionID string, s engine.State) StateResponse {
	return StateResponse{
		SessionID: sessionID,
		Display:   s.Display,
		Operator:  string(s.Operator),
		Waiting:   s.WaitingForSecondOperand,
	}
}

// HistoryItem — одна запись в истории (для GET /api/v1/history).
// Числа — строки: JSON не умеет Infinity и NaN.
type HistoryItem struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	Number1   string    `json:"number1"`
	Number2   string    `json:"number2"`
	Operation string    `json:"operation"`
	Result    string    `json:"result"`
	Display   string    `json:"display"`
	Timestamp time.Time `json:"timestamp"`
}

func newHistoryItem(op domain.Operation) HistoryItem {
	return HistoryItem{
		ID:        op.ID,
		SessionID: op.SessionID,
		Number1:   numfmt.Format(op.Number1),
		Number2:   numfmt.Format(op.Number2),
		Operation: string(op.Operation),
		Result:    numfmt.Format(op.Result),
		Display:   op.Display,
		Timestamp: op.Timestamp,
	}
}

// HistoryResponse — ответ со списком операций.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
