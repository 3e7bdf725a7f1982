package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(ClientConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_Layers(t *testing.T) {
	path := writeFile(t, `{"adapter": {"http_address": "10.0.0.2:8080", "request_timeout": "2s"}}`)
	t.Setenv("CLIENT_CONFIG", path)
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "5s")

	cfg, err := GetClientConfig(ClientConfig{})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2:8080", cfg.Adapter.HTTPAddress, "json beats defaults")
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout, "env beats json")

	cfg, err = GetClientConfig(ClientConfig{Adapter: ClientAdapter{HTTPAddress: "https://feeder.local"}})
	require.NoError(t, err)
	assert.Equal(t, "https://feeder.local", cfg.Adapter.HTTPAddress, "overrides beat everything")
}

func TestGetClientConfig_Errors(t *testing.T) {
	t.Run("bad env", func(t *testing.T) {
		t.Setenv("ADAPTER_REQUEST_TIMEOUT", "later")
		_, err := GetClientConfig(ClientConfig{})
		assert.Error(t, err)
	})

	t.Run("missing json", func(t *testing.T) {
		_, err := GetClientConfig(ClientConfig{JSONFilePath: "/does/not/exist.json"})
		assert.Error(t, err)
	})

	t.Run("negative timeout", func(t *testing.T) {
		_, err := GetClientConfig(ClientConfig{Adapter: ClientAdapter{RequestTimeout: -time.Second}})
		assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
	})
}
