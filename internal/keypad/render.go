package keypad

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lizzyKeypad/internal/engine"
)

const (
	// cellWidth — внутренняя ширина клетки без рамки.
	cellWidth = 5
	// cellOuter — ширина клетки с рамкой.
	cellOuter = cellWidth + 2
	// DisplayWidth — внутренняя ширина дисплея: совпадает с шириной сетки за вычетом рамки дисплея.
	DisplayWidth = Columns*cellOuter - 2
)

// Renderer рисует дисплей и сетку клавиш. Цветовой профиль берётся из writer: в файл или буфер цвета не пишутся.
type Renderer struct {
	display  lipgloss.Style
	digit    lipgloss.Style
	function lipgloss.Style
	operator lipgloss.Style
}

// NewRenderer создаёт отрисовщик под конкретный вывод.
func NewRenderer(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)
	cell := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Align(lipgloss.Center)
	return &Renderer{
		display: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Bold(true),
		digit:    cell,
		function: cell.Foreground(lipgloss.Color("245")),
		operator: cell.Foreground(lipgloss.Color("214")).Bold(true),
	}
}

// Display рисует значение дисплея прижатым вправо. Текст выводится как есть; если он шире дисплея,
// дисплей расширяется, а не обрезает число.
func (r *Renderer) Display(value string) string {
	width := DisplayWidth
	if w := lipgloss.Width(value); w > width {
		width = w
	}
	return r.display.Width(width).Align(lipgloss.Right).Render(value)
}

// Grid рисует сетку клавиш по Layout.
func (r *Renderer) Grid() string {
	rows := make([]string, 0, len(Layout))
	for _, row := range Layout {
		cells := make([]string, 0, len(row))
		for _, b := range row {
			span := max(b.Span, 1)
			// клетка на span колонок поглощает рамки соседних клеток
			width := span*cellOuter - 2
			cells = append(cells, r.styleFor(b.Label).Width(width).Render(b.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Screen — дисплей над сеткой.
func (r *Renderer) Screen(s engine.State) string {
	return lipgloss.JoinVertical(lipgloss.Left, r.Display(s.Display), r.Grid())
}

func (r *Renderer) styleFor(label string) lipgloss.Style {
	switch engine.Classify(label).Kind {
	case engine.KindOperator, engine.KindEquals:
		return r.operator
	case engine.KindClear, engine.KindSign, engine.KindPercent:
		return r.function
	default:
		return r.digit
	}
}

// trimLines убирает хвостовые пробелы строк (lipgloss добивает строки до ширины блока).
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
