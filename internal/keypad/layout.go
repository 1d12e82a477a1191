// Package keypad — терминальная клавиатура калькулятора: раскладка клавиш, отрисовка дисплея и сетки,
// цикл чтения нажатий. Вся арифметика в engine; здесь только ввод и вывод.
package keypad

import "lizzyKeypad/internal/engine"

// Columns — ширина сетки в клетках.
const Columns = 4

// Button — клавиша сетки. Span — сколько клеток занимает по горизонтали.
type Button struct {
	Label string
	Span  int
}

// Layout — сетка клавиш сверху вниз; "0" занимает две клетки.
var Layout = [][]Button{
	{{engine.LabelClear, 1}, {engine.LabelSign, 1}, {engine.LabelPercent, 1}, {"/", 1}},
	{{"7", 1}, {"8", 1}, {"9", 1}, {"*", 1}},
	{{"4", 1}, {"5", 1}, {"6", 1}, {"-", 1}},
	{{"1", 1}, {"2", 1}, {"3", 1}, {"+", 1}},
	{{"0", 2}, {engine.LabelDecimal, 1}, {engine.LabelEquals, 1}},
}

// Labels — все метки раскладки в порядке обхода сетки.
func Labels() []string {
	var out []string
	for _, row := range Layout {
		for _, b := range row {
			out = append(out, b.Label)
		}
	}
	return out
}
