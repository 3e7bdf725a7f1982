package service

import (
	"github.com/MKhiriev/go-conf-keeper/internal/adapter"
)

type ClientServices struct {
	SettingsService SettingsService
	InfoService     ClientInfoService
}

func NewClientServices(settingsAdapter adapter.SettingsAdapter) *ClientServices {
	return &ClientServices{
		SettingsService: NewClientSettingsService(settingsAdapter),
		InfoService:     NewClientInfoService(settingsAdapter),
	}
}
