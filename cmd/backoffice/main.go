package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/greengrove/backoffice/internal/backoffice/cli"
	"github.com/greengrove/backoffice/internal/backoffice/config"
	"github.com/greengrove/backoffice/internal/buildinfo"
	"github.com/greengrove/backoffice/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
