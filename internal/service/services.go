package service

import (
	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/settings"
	"github.com/MKhiriev/go-conf-keeper/models"
)

type Services struct {
	SettingsService SettingsService
	AppInfoService  AppInfoService
}

func NewServices(registry *settings.Registry, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SettingsService: NewSettingsValidationService(cfg.MaxListItems).Wrap(NewSettingsService(registry, logger)),
		AppInfoService:  appInfo,
	}, nil
}
