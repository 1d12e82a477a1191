// Package numfmt — текстовое представление чисел дисплея калькулятора.
//
// Format/Parse дают "обычную" строковую форму числа: кратчайшие цифры без фиксированного
// числа знаков после точки, Infinity/NaN для неконечных значений, разбор по самому длинному
// числовому префиксу. Encode/Decode — точный кодек для хранения (Redis, JSON).
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

const (
	infinity = "Infinity"
	// maxPlainExp — с n > 21 цифрами до точки число пишется в экспоненциальной форме.
	maxPlainExp = 21
	// minPlainExp — числа меньше 1e-7 пишутся в экспоненциальной форме.
	minPlainExp = -6
)

// Format возвращает строковую форму числа, например 0.5 → "0.5", 1e21 → "1e+21", 5/0 → "Infinity".
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return infinity
	case math.IsInf(v, -1):
		return "-" + infinity
	case v == 0:
		// -0 тоже показывается как "0".
		return "0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// Кратчайшие цифры, однозначно восстанавливающие float64: "d.ddde±XX".
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, expPart, _ := strings.Cut(s, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)

	k := len(digits)
	n := exp + 1 // позиция десятичной точки относительно первой цифры

	switch {
	case k <= n && n <= maxPlainExp:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= maxPlainExp:
		return sign + digits[:n] + "." + digits[n:]
	case minPlainExp < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}

	e := n - 1
	expSign := "+"
	if e < 0 {
		expSign = "-"
		e = -e
	}
	if k == 1 {
		return sign + digits + "e" + expSign + strconv.Itoa(e)
	}
	return sign + digits[:1] + "." + digits[1:] + "e" + expSign + strconv.Itoa(e)
}

// Parse разбирает самый длинный числовой префикс строки ("12.5abc" → 12.5, "Infinity5" → +Inf).
// Если префикса нет — NaN. Ошибок не бывает.
func Parse(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r")

	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	if strings.HasPrefix(s[i:], infinity) {
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	intStart := i
	i = skipDigits(s, i)
	intDigits := i - intStart

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		j := skipDigits(s, i+1)
		fracDigits = j - (i + 1)
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return math.NaN()
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if end := skipDigits(s, j); end > j {
			i = end
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !isRangeErr(err) {
		return math.NaN()
	}
	return v
}

// Encode — точное представление для хранения: сохраняет -0, ±Inf и NaN.
func Encode(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Decode — обратная к Encode операция.
func Decode(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
