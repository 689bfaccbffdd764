package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/trsv-dev/simple-topology-console/internal/cli"
	"github.com/trsv-dev/simple-topology-console/internal/di_containers"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

func main() {
	logger.InitLogger("error", "stderr")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(di_containers.NewDispatcher).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
}
