// Command server runs the materiality survey HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment. A .env file in the working directory is loaded first when
// present.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/sustainage/materiality-survey/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		stop()
		os.Exit(1)
	}
}
