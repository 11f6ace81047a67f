// Command analytics computes team form, league standings and player trends
// from a YAML seed file or the configured Postgres database and prints JSON.
//
// Usage:
//
//	analytics form --team 1 --last-n 5 --seed ./seed.yaml
//	analytics table
//	analytics trend --player 3
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
