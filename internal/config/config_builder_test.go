package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierLayerWins verifies that a field set by an earlier layer is
// kept and later layers only fill the gaps.
func TestBuild_EarlierLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:1", RequestTimeout: time.Minute}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, DefaultSettingsJSON, cfg.Storage.Files.SettingsJSON)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

// TestBuild_Validation verifies that invalid merged configs are rejected.
func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{"unknown backend", StructuredConfig{Storage: Storage{Backend: "etcd"}}, ErrInvalidStorageConfigs},
		{"sqlite without dsn", StructuredConfig{Storage: Storage{Backend: BackendSQLite}}, ErrInvalidStorageConfigs},
		{"postgres without dsn", StructuredConfig{Storage: Storage{Backend: BackendPostgres}}, ErrInvalidStorageConfigs},
		{"memory is fine", StructuredConfig{Storage: Storage{Backend: BackendMemory}}, nil},
		{"sqlite with dsn", StructuredConfig{Storage: Storage{Backend: BackendSQLite, DB: DB{DSN: "x.db"}}}, nil},
		{"negative max list items", StructuredConfig{App: App{MaxListItems: -1}}, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := tt.cfg
			b.configs = append(b.configs, &cfg)
			b.withDefaults()

			_, err := b.build()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7070")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "127.0.0.1:7070", b.configs[0].Server.HTTPAddress)
}

func TestWithEnv_SetsError(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "eventually")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-s", "memory"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, BackendMemory, b.configs[0].Storage.Backend)
}

func TestWithFlags_SetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeFile(t, `{"storage": {"backend": "sqlite", "db": {"dsn": "file.db"}}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "file.db", b.configs[1].Storage.DB.DSN)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "none.json")})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesHighestPriorityPath verifies that the env layer's path is
// used when both env and flags name a file.
func TestWithJSON_UsesHighestPriorityPath(t *testing.T) {
	first := writeFile(t, `{"log": {"level": "error"}}`)
	second := writeFile(t, `{"log": {"level": "trace"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "error", b.configs[2].Log.Level)
}

func TestWithJSON_DoesNotAppend_WhenErrorAlreadySet(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: writeFile(t, `{}`)})
	b.withJSON()

	assert.Len(t, b.configs, 1)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilderChain_Precedence(t *testing.T) {
	path := writeFile(t, `{
		"storage": {"backend": "sqlite", "db": {"dsn": "from-json.db"}},
		"server": {"http_address": "0.0.0.0:1111", "request_timeout": "3s"},
		"log": {"level": "error"}
	}`)
	t.Setenv("SERVER_ADDRESS", "localhost:2222")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-c", path, "-log-level", "debug"}).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress, "env beats json")
	assert.Equal(t, "debug", cfg.Log.Level, "flags beat json")
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend, "json beats defaults")
	assert.Equal(t, "from-json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
}

func TestGetStructuredConfig_Defaults(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"conf-keeper"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultBackend, cfg.Storage.Backend)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultMaxListItems, cfg.App.MaxListItems)
}
