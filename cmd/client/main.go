package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-msg-sync/internal/client"
	"github.com/MKhiriev/go-msg-sync/internal/config"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("msg-sync-client").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("msg-sync-client", cfg.App.LogDir)
	log.Info().Str("version", build.Version).Str("commit", build.Commit).Msg("starting client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, log, client.WithBuildInfo(build))
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(build models.BuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
