package engine

import (
	"strings"

	"lizzyKeypad/internal/pkg/numfmt"
)

// Reduce применяет одну подпись клавиши к состоянию.
func Reduce(s State, label string) State {
	next, _ := Apply(s, Classify(label))
	return next
}

// ReduceAll применяет подписи по порядку.
func ReduceAll(s State, labels ...string) State {
	for _, l := range labels {
		s = Reduce(s, l)
	}
	return s
}

// Apply применяет классифицированную клавишу. Второе значение не nil, если нажатие
// разрешило ожидающую бинарную операцию.
func Apply(s State, k Key) (State, *Computation) {
	switch k.Kind {
	case KindDigit:
		return inputDigits(s, k.Digits), nil
	case KindDecimal:
		return inputDecimal(s), nil
	case KindClear:
		return New(), nil
	case KindSign:
		return toggleSign(s), nil
	case KindPercent:
		return inputPercent(s), nil
	case KindOperator:
		return performOperation(s, k)
	case KindEquals:
		return equals(s)
	default:
		return s, nil
	}
}

func inputDigits(s State, d string) State {
	switch {
	case s.WaitingForSecondOperand:
		s.Display = d
		s.WaitingForSecondOperand = false
	case s.Display == initialDisplay:
		s.Display = d
	default:
		s.Display += d
	}
	return s
}

func inputDecimal(s State) State {
	if s.WaitingForSecondOperand {
		s.Display = "0."
		s.WaitingForSecondOperand = false
		return s
	}
	if !strings.Contains(s.Display, ".") {
		s.Display += "."
	}
	return s
}

// toggleSign работает со строкой, а не с числом: "0." → "-0." → "0.".
func toggleSign(s State) State {
	if strings.HasPrefix(s.Display, "-") {
		s.Display = s.Display[1:]
	} else {
		s.Display = "-" + s.Display
	}
	return s
}

func inputPercent(s State) State {
	s.Display = numfmt.Format(numfmt.Parse(s.Display) / 100)
	return s
}

func performOperation(s State, k Key) (State, *Computation) {
	input := numfmt.Parse(s.Display)

	var comp *Computation
	if !s.HasFirstOperand {
		s.FirstOperand = input
		s.HasFirstOperand = true
	} else if s.Operator != "" && !s.WaitingForSecondOperand {
		// пока второй операнд не введён, новый оператор только заменяет ожидающий
		comp = compute(s, input)
		s.Display = numfmt.Format(comp.Result)
		s.FirstOperand = comp.Result
	}

	s.WaitingForSecondOperand = true
	s.Operator = k.Operator
	return s, comp
}

func equals(s State) (State, *Computation) {
	if s.Operator == "" || !s.HasFirstOperand {
		return s, nil
	}
	comp := compute(s, numfmt.Parse(s.Display))

	next := New()
	next.Display = numfmt.Format(comp.Result)
	return next, comp
}

func compute(s State, right float64) *Computation {
	return &Computation{
		Left:     s.FirstOperand,
		Right:    right,
		Operator: s.Operator,
		Result:   s.Operator.Apply(s.FirstOperand, right),
	}
}
