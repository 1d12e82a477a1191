package keypad

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyKeypad/internal/engine"
)

// newPlainRenderer — отрисовщик в буфер: цвета и жирность не выводятся.
func newPlainRenderer() *Renderer {
	return NewRenderer(&bytes.Buffer{})
}

// displayLine возвращает строку дисплея с текстом (между верхней и нижней рамкой).
func displayLine(t *testing.T, rendered string) string {
	t.Helper()
	lines := strings.Split(rendered, "\n")
	require.Len(t, lines, 3)
	return lines[1]
}

func TestDisplay_RightAligned(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "ноль", value: "0"},
		{name: "дробь", value: "0.5"},
		{name: "бесконечность", value: "Infinity"},
		{name: "отрицательное", value: "-12.34"},
		{name: "экспонента", value: "1e+21"},
	}

	r := newPlainRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := displayLine(t, r.Display(tt.value))

			pad := DisplayWidth - len(tt.value)
			assert.Equal(t, "│"+strings.Repeat(" ", pad)+tt.value+"│", line)
		})
	}
}

// Длинное значение не обрезается и не переносится: дисплей расширяется.
func TestDisplay_Overflow(t *testing.T) {
	value := "0.30000000000000004" + "1234567890"
	line := displayLine(t, newPlainRenderer().Display(value))

	assert.Equal(t, "│"+value+"│", line)
}

func TestGrid(t *testing.T) {
	grid := newPlainRenderer().Grid()

	// 5 рядов по 3 строки (рамка, метка, рамка)
	lines := strings.Split(grid, "\n")
	require.Len(t, lines, len(Layout)*3)
	for _, l := range lines {
		assert.Equal(t, Columns*cellOuter, lipgloss.Width(l))
	}
	for _, label := range Labels() {
		assert.Contains(t, grid, label)
	}
	// "0" — единственная клетка на две колонки
	assert.Contains(t, lines[len(lines)-2], "│"+strings.Repeat(" ", 5)+"0"+strings.Repeat(" ", 6)+"│")
}

func TestScreen(t *testing.T) {
	r := newPlainRenderer()
	screen := r.Screen(engine.ReduceAll(engine.New(), "4", "2"))

	lines := strings.Split(screen, "\n")
	require.Len(t, lines, 3+len(Layout)*3)
	assert.Equal(t, "│"+strings.Repeat(" ", DisplayWidth-2)+"42│", lines[1])
}
