package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-conf-keeper/internal/adapter"
	"github.com/MKhiriev/go-conf-keeper/internal/client"
	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/service"
	"github.com/MKhiriev/go-conf-keeper/models"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func main() {
	log := logger.NewConsoleLogger("go-conf-client", os.Stderr)
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	if err := logger.SetLevel(level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	connect := func(overrides config.ClientConfig) (*service.ClientServices, error) {
		cfg, err := config.GetClientConfig(overrides)
		if err != nil {
			return nil, err
		}
		settingsAdapter, err := adapter.NewHTTPSettingsAdapter(cfg.Adapter, log)
		if err != nil {
			return nil, err
		}
		return service.NewClientServices(settingsAdapter), nil
	}

	app, err := client.NewApp(connect, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
