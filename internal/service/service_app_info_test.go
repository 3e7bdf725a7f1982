package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/settings"
	"github.com/MKhiriev/go-conf-keeper/internal/store"
	"github.com/MKhiriev/go-conf-keeper/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.App
		build       models.AppBuildInfo
		wantVersion string
		wantErr     error
	}{
		{
			name:        "configured version",
			cfg:         config.App{Version: "1.0.0"},
			build:       models.NewAppBuildInfo("0.9.0", "2026-01-01", "abc123"),
			wantVersion: "1.0.0",
		},
		{
			name:        "falls back to build version",
			build:       models.NewAppBuildInfo("0.9.0", "2026-01-01", "abc123"),
			wantVersion: "0.9.0",
		},
		{
			name:        "version with special chars",
			cfg:         config.App{Version: "v1.2.3-beta+build.42"},
			wantVersion: "v1.2.3-beta+build.42",
		},
		{
			name:    "no version anywhere",
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, svc)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, svc.GetAppVersion(context.Background()))
			assert.Equal(t, tt.build, svc.GetBuildInfo(context.Background()))
		})
	}
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	svc2, err := NewAppInfoService(config.App{Version: "2.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "2.0.0", svc2.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	s, err := store.NewMemoryStore(nil)
	require.NoError(t, err)
	registry, err := settings.NewRegistry(context.Background(), s, testDefinitions, logger.Nop())
	require.NoError(t, err)

	_, err = NewServices(registry, config.App{}, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)

	services, err := NewServices(registry, config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))

	// validation is applied in front of the registry-backed service
	_, err = services.SettingsService.ListGet(context.Background(), "SITE_NAMES", -1)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	got, err := services.SettingsService.Get(context.Background(), "FEEDER_NAME")
	require.NoError(t, err)
	assert.True(t, got.Mandatory)
}
