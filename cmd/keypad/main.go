package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lizzyKeypad/internal/keypad"
	"lizzyKeypad/internal/pkg/logger"
)

func main() {
	level := flag.String("log-level", "error", "уровень логов в stderr: debug, info, warn, error")
	flag.Parse()

	log := logger.NewWithWriter(os.Stderr, *level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(os.Stdout, "клавиши через пробел, q — выход")
	term := keypad.NewTerminal(os.Stdout, log)
	if err := term.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		log.Error("keypad failed", "error", err)
		os.Exit(1)
	}
}
