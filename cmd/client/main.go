package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/bot-console/internal/adapter"
	"github.com/MKhiriev/bot-console/internal/client"
	"github.com/MKhiriev/bot-console/internal/config"
	"github.com/MKhiriev/bot-console/internal/directline"
	"github.com/MKhiriev/bot-console/internal/logger"
	"github.com/MKhiriev/bot-console/internal/tui"
	"github.com/MKhiriev/bot-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("bot-console", cfg.LogPath)

	directLine := adapter.NewDirectLineAdapter(cfg.DirectLine, log)
	newChannel := func(token string) client.Channel {
		return directline.New(directLine, token, directline.Config{WebSocket: cfg.DirectLine.WebSocket}, log)
	}

	ui, err := tui.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(cfg, directLine, newChannel, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	err = app.Run()
	if err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error running client: %v\n", err)
	}
	if closeErr := log.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "error closing log file: %v\n", closeErr)
	}
	if err != nil {
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
