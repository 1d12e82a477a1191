package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// runner — фоновый компонент приложения: блокируется до отмены ctx или собственной ошибки.
type runner struct {
	name string
	run  func(ctx context.Context) error
}

// runAll запускает компоненты и ждёт, пока все завершатся. Ошибка любого компонента отменяет ctx остальных,
// и runAll возвращает первую ошибку. Завершение по отменённому ctx ошибкой не считается.
func runAll(ctx context.Context, runners ...runner) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, r := range runners {
		g.Go(func() error {
			if err := r.run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("%s: %w", r.name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
