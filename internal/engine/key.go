package engine

import "lizzyKeypad/internal/domain"

// Kind — вид нажатой клавиши.
type Kind int

const (
	KindUnknown Kind = iota
	KindDigit
	KindDecimal
	KindClear
	KindSign
	KindPercent
	KindOperator
	KindEquals
)

// Подписи служебных клавиш.
const (
	LabelDecimal = "."
	LabelClear   = "AC"
	LabelSign    = "+/-"
	LabelPercent = "%"
	LabelEquals  = "="
)

var kindNames = [...]string{
	KindUnknown:  "unknown",
	KindDigit:    "digit",
	KindDecimal:  "decimal",
	KindClear:    "clear",
	KindSign:     "sign",
	KindPercent:  "percent",
	KindOperator: "operator",
	KindEquals:   "equals",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Key — классифицированная клавиша. Digits заполнен для KindDigit, Operator — для KindOperator.
type Key struct {
	Kind     Kind
	Digits   string
	Operator domain.Operator
}

// Classify разбирает подпись клавиши один раз; дальше диспетчеризация идёт по Kind.
// Строка из одних ASCII-цифр — ввод цифр, остальное сравнивается точно; неизвестное — KindUnknown.
func Classify(label string) Key {
	if isDigits(label) {
		return Key{Kind: KindDigit, Digits: label}
	}
	switch label {
	case LabelDecimal:
		return Key{Kind: KindDecimal}
	case LabelClear:
		return Key{Kind: KindClear}
	case LabelSign:
		return Key{Kind: KindSign}
	case LabelPercent:
		return Key{Kind: KindPercent}
	case LabelEquals:
		return Key{Kind: KindEquals}
	}
	if op, err := domain.ParseOperator(label); err == nil {
		return Key{Kind: KindOperator, Operator: op}
	}
	return Key{Kind: KindUnknown}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
