package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/env"
	"github.com/MKhiriev/go-conf-keeper/internal/handler"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/server"
	"github.com/MKhiriev/go-conf-keeper/internal/service"
	"github.com/MKhiriev/go-conf-keeper/internal/settings"
	"github.com/MKhiriev/go-conf-keeper/internal/store"
	"github.com/MKhiriev/go-conf-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// appVersionSetting is the computed setting that mirrors the running version.
const appVersionSetting = "APP_VERSION"

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-conf-server")
	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(log *logger.Logger) error {
	ctx := context.Background()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	settingsStore, err := store.NewStore(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating store: %w", err)
	}
	defer settingsStore.Close()

	defs, err := loadDefinitions(cfg.App)
	if err != nil {
		return err
	}

	registry, err := settings.NewRegistry(ctx, settingsStore, defs, log)
	if err != nil {
		return fmt.Errorf("error creating settings registry: %w", err)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(registry, cfg.App, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	versionCell, err := env.New(ctx, settingsStore, appVersionSetting,
		env.WithValueProvider(func() any { return services.AppInfoService.GetAppVersion(ctx) }),
		env.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("error creating %s setting: %w", appVersionSetting, err)
	}
	if err = registry.Register(versionCell); err != nil {
		return err
	}

	if missing := registry.Missing(); len(missing) > 0 {
		log.Warn().Strs("settings", missing).Msg("mandatory settings have no value")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}

func loadDefinitions(cfg config.App) ([]settings.Definition, error) {
	if cfg.DefinitionsPath == "" {
		return settings.DefaultDefinitions()
	}
	return settings.LoadDefinitions(cfg.DefinitionsPath)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
