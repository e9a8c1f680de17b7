package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"feed-ranker/bootstrap"
	"feed-ranker/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Run(ctx); err != nil {
		logger.Logger.Error("service exited with error", "err", err)
		os.Exit(1)
	}
}
