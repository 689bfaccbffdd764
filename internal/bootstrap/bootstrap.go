package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/settings"
)

// Context Данные, которые задачи начальной загрузки заполняют по очереди.
type Context struct {
	Login       string
	Environment *environment.Environment
	Settings    *settings.Settings
}

// Task Задача начальной загрузки.
type Task interface {
	Name() string
	Apply(ctx context.Context, bc *Context) error
}

// Run Выполняет задачи по очереди. Первая ошибка прерывает загрузку.
func Run(ctx context.Context, bc *Context, tasks ...Task) error {
	for _, task := range tasks {
		start := time.Now()

		if err := task.Apply(ctx, bc); err != nil {
			logger.Log.Error("Ошибка задачи начальной загрузки",
				logger.String("task", task.Name()),
				logger.String("err", err.Error()),
			)
			return fmt.Errorf("задача %s: %w", task.Name(), err)
		}

		logger.Log.Debug("Задача начальной загрузки выполнена",
			logger.String("task", task.Name()),
			logger.Int64("ms", time.Since(start).Milliseconds()),
		)
	}

	return nil
}
