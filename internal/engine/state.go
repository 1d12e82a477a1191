// Package engine — конечный автомат калькулятора: чистая функция (состояние, клавиша) → состояние.
package engine

import "lizzyKeypad/internal/domain"

// initialDisplay — дисплей после создания и после AC.
const initialDisplay = "0"

// State — неизменяемый снимок клавиатуры. Переходы возвращают новое значение, старое не меняется.
type State struct {
	// Display — текст на дисплее: числовой литерал или "0", никогда не пустой.
	Display string
	// FirstOperand — левый операнд ожидающей операции; имеет смысл только при HasFirstOperand.
	FirstOperand    float64
	HasFirstOperand bool
	// Operator — ожидающий оператор, domain.OpNone если не выбран.
	Operator domain.Operator
	// WaitingForSecondOperand — следующая цифра начинает новое число, а не дописывается.
	WaitingForSecondOperand bool
}

// New возвращает начальное состояние.
func New() State {
	return State{Display: initialDisplay}
}

// IsInitial сообщает, совпадает ли состояние с начальным.
func (s State) IsInitial() bool {
	return s == New()
}

// Computation — разрешённая бинарная операция (при смене оператора в цепочке или по "=").
type Computation struct {
	Left     float64
	Right    float64
	Operator domain.Operator
	Result   float64
}
