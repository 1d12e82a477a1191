package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"lizzyKeypad/internal/pkg/numfmt"
)

// operationJSON — формат операции в JSON (сообщения Kafka). Числа передаются строками:
// encoding/json не умеет Inf и NaN, а деление на ноль их даёт.
type operationJSON struct {
	ID        int       `json:"id,omitempty"`
	SessionID string    `json:"session_id"`
	Number1   string    `json:"number1"`
	Number2   string    `json:"number2"`
	Operation Operator  `json:"operation"`
	Result    string    `json:"result"`
	Display   string    `json:"display"`
	Timestamp time.Time `json:"timestamp"`
}

// MarshalJSON реализует json.Marshaler.
func (op Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(operationJSON{
		ID:        op.ID,
		SessionID: op.SessionID,
		Number1:   numfmt.Encode(op.Number1),
		Number2:   numfmt.Encode(op.Number2),
		Operation: op.Operation,
		Result:    numfmt.Encode(op.Result),
		Display:   op.Display,
		Timestamp: op.Timestamp,
	})
}

// UnmarshalJSON реализует json.Unmarshaler.
func (op *Operation) UnmarshalJSON(data []byte) error {
	var raw operationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if _, err := ParseOperator(string(raw.Operation)); err != nil {
		return fmt.Errorf("%w: %q", err, raw.Operation)
	}

	var nums [3]float64
	for i, s := range []string{raw.Number1, raw.Number2, raw.Result} {
		v, err := numfmt.Decode(s)
		if err != nil {
			return fmt.Errorf("decode number %q: %w", s, err)
		}
		nums[i] = v
	}

	*op = Operation{
		ID:        raw.ID,
		SessionID: raw.SessionID,
		Number1:   nums[0],
		Number2:   nums[1],
		Operation: raw.Operation,
		Result:    nums[2],
		Display:   raw.Display,
		Timestamp: raw.Timestamp,
	}
	return nil
}
