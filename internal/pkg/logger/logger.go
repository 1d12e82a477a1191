package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config — настройки логгера. Переменные: CALCULATOR_LOG_LEVEL, CALCULATOR_LOG_FILE.
type Config struct {
	Level string `envconfig:"LEVEL" default:"info"`
	// File — файл логов в дополнение к stderr; пустая строка — только stderr.
	File string `envconfig:"FILE" default:"app.log"`
}

// logWriter открывает файл логов и возвращает writer в файл + stderr (и в файл, и в консоль).
// При ошибке открытия файла возвращает только stderr.
func logWriter(file string) io.Writer {
	if file == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// ParseLevel переводит строку (debug, info, warn, error) в уровень slog. Неизвестное — info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New возвращает логгер с текстовым выводом по конфигу.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(logWriter(cfg.File), cfg.Level)
}

// NewWithWriter возвращает текстовый логгер в заданный writer (CLI, тесты).
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
