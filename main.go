package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"recipeseed/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "[recipeseed] ", log.LstdFlags)
	if err := app.Run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		logger.Fatalf("recipeseed failed: %v", err)
	}
}
