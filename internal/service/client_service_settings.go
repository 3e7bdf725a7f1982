package service

import (
	"context"

	"github.com/MKhiriev/go-conf-keeper/internal/adapter"
	"github.com/MKhiriev/go-conf-keeper/internal/env"
	"github.com/MKhiriev/go-conf-keeper/models"
)

// clientSettingsService runs [SettingsService] against a remote server, so
// callers see the same sentinel errors they would get in-process.
type clientSettingsService struct {
	adapter adapter.SettingsAdapter
}

func NewClientSettingsService(settingsAdapter adapter.SettingsAdapter) SettingsService {
	return &clientSettingsService{adapter: settingsAdapter}
}

func (c *clientSettingsService) List(ctx context.Context) ([]models.Setting, error) {
	list, err := c.adapter.List(ctx)
	return list, mapAdapterError(err)
}

func (c *clientSettingsService) Get(ctx context.Context, name string) (models.Setting, error) {
	setting, err := c.adapter.Get(ctx, name)
	return setting, mapAdapterError(err)
}

func (c *clientSettingsService) Missing(ctx context.Context) ([]string, error) {
	missing, err := c.adapter.Missing(ctx)
	return missing, mapAdapterError(err)
}

func (c *clientSettingsService) Set(ctx context.Context, name string, value env.Value) (models.UpdateResponse, error) {
	res, err := c.adapter.Set(ctx, name, value)
	return res, mapAdapterError(err)
}

func (c *clientSettingsService) ListGet(ctx context.Context, name string, idx int) (models.ItemResponse, error) {
	item, err := c.adapter.ListGet(ctx, name, idx)
	return item, mapAdapterError(err)
}

func (c *clientSettingsService) ListSet(ctx context.Context, name string, idx int, value env.Value) (models.UpdateResponse, error) {
	res, err := c.adapter.ListSet(ctx, name, idx, value)
	return res, mapAdapterError(err)
}

func (c *clientSettingsService) ListRemove(ctx context.Context, name string, idx int) (models.UpdateResponse, error) {
	res, err := c.adapter.ListRemove(ctx, name, idx)
	return res, mapAdapterError(err)
}

func (c *clientSettingsService) ListMove(ctx context.Context, name string, from, to int) (models.UpdateResponse, error) {
	res, err := c.adapter.ListMove(ctx, name, from, to)
	return res, mapAdapterError(err)
}

type clientInfoService struct {
	adapter adapter.SettingsAdapter
}

func NewClientInfoService(settingsAdapter adapter.SettingsAdapter) ClientInfoService {
	return &clientInfoService{adapter: settingsAdapter}
}

func (c *clientInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	return version, mapAdapterError(err)
}
