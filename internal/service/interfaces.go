package service

import (
	"context"

	"github.com/MKhiriev/go-conf-keeper/internal/env"
	"github.com/MKhiriev/go-conf-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SettingsService resolves setting names to cells and runs the cell
// operations on them. Mutations that the cell refuses are reported as
// [ErrValueRejected]; store failures come back wrapped in
// [env.ErrStoreRead] or [env.ErrStoreWrite].
type SettingsService interface {
	List(ctx context.Context) ([]models.Setting, error)
	Get(ctx context.Context, name string) (models.Setting, error)
	Missing(ctx context.Context) ([]string, error)

	Set(ctx context.Context, name string, value env.Value) (models.UpdateResponse, error)

	ListGet(ctx context.Context, name string, idx int) (models.ItemResponse, error)
	ListSet(ctx context.Context, name string, idx int, value env.Value) (models.UpdateResponse, error)
	ListRemove(ctx context.Context, name string, idx int) (models.UpdateResponse, error)
	ListMove(ctx context.Context, name string, from, to int) (models.UpdateResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
