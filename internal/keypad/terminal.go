package keypad

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"lizzyKeypad/internal/engine"
)

// QuitLabel завершает ввод.
const QuitLabel = "q"

// Terminal — локальная клавиатура: держит одно состояние engine и перерисовывает экран после каждой строки ввода.
type Terminal struct {
	out    io.Writer
	render *Renderer
	log    *slog.Logger
	state  engine.State
}

// NewTerminal создаёт терминал с начальным состоянием.
func NewTerminal(out io.Writer, log *slog.Logger) *Terminal {
	if log == nil {
		log = slog.Default()
	}
	return &Terminal{out: out, render: NewRenderer(out), log: log, state: engine.New()}
}

// State — текущее состояние.
func (t *Terminal) State() engine.State {
	return t.state
}

// Press применяет метки по порядку. Неизвестные метки пропускаются engine без изменений.
func (t *Terminal) Press(labels ...string) engine.State {
	for _, label := range labels {
		key := engine.Classify(label)
		if key.Kind == engine.KindUnknown {
			t.log.Debug("unknown key ignored", "label", label)
		}
		next, comp := engine.Apply(t.state, key)
		if comp != nil {
			t.log.Debug("operation resolved", "operator", comp.Operator, "display", next.Display)
		}
		t.state = next
	}
	return t.state
}

// Run рисует экран, затем читает строки из in: метки через пробел, "q" или EOF — выход.
// После каждой строки выводится дисплей.
func (t *Terminal) Run(ctx context.Context, in io.Reader) error {
	if _, err := fmt.Fprintln(t.out, trimLines(t.render.Screen(t.state))); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fields := strings.Fields(sc.Text())
		quit := false
		for i, f := range fields {
			if f == QuitLabel {
				fields, quit = fields[:i], true
				break
			}
		}
		t.Press(fields...)
		if _, err := fmt.Fprintln(t.out, trimLines(t.render.Display(t.state.Display))); err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return sc.Err()
}
