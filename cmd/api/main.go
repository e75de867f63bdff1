package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"todoTracker/internal/app"
	"todoTracker/internal/config"
)

func main() {
	path := os.Getenv("TODO_CONFIG")
	if path == "" {
		path = "config.yml"
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "конфигурация: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg).Init(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "запуск: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
