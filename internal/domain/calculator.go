package domain

import (
	"errors"
	"time"
)

// ErrUnknownOperation возвращается, когда оператор не поддерживается.
var ErrUnknownOperation = errors.New("unknown operation")

// ErrInvalidRequest — невалидный запрос (пустой id сессии, нет клавиш и т.п.).
var ErrInvalidRequest = errors.New("invalid request")

// Operator — бинарный оператор калькулятора. Пустая строка — оператора нет.
type Operator string

// Константы арифметических операций (совпадают с подписями клавиш).
const (
	OpNone Operator = ""
	OpAdd  Operator = "+"
	OpSub  Operator = "-"
	OpMul  Operator = "*"
	OpDiv  Operator = "/"
)

// ParseOperator возвращает оператор по подписи клавиши.
func ParseOperator(s string) (Operator, error) {
	switch op := Operator(s); op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return op, nil
	default:
		return OpNone, ErrUnknownOperation
	}
}

// Apply считает a op b. Деление на ноль не проверяется: результат по IEEE-754 (Inf или NaN).
func (o Operator) Apply(a, b float64) float64 {
	switch o {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		return b
	}
}

// Operation — запись об одной разрешённой бинарной операции клавиатуры.
type Operation struct {
	ID        int
	SessionID string
	Number1   float64
	Number2   float64
	Operation Operator
	Result    float64
	// Display — результат в том виде, в каком он показан на дисплее.
	Display   string
	Timestamp time.Time
}
