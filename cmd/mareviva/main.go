package main

import (
	"context"
	"log"
	"os"

	"github.com/mareviva/mareviva/internal/buildinfo"
	"github.com/mareviva/mareviva/internal/cli"
	"github.com/mareviva/mareviva/internal/config"
	"github.com/mareviva/mareviva/internal/logging"
)

func main() {
	buildinfo.Print(os.Stdout)

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
