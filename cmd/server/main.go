package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Akimtsev/ops_console/config"
	"github.com/Akimtsev/ops_console/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	// Локальные переменные окружения (если файл есть).
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		log.Fatalf("failed to bootstrap: %v", err)
	}
	defer cleanup()

	if err := a.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, "service stopped with error: %v", err)
	}
}
