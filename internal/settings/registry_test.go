package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-conf-keeper/internal/env"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/store"
)

func newTestRegistry(t *testing.T, initial map[string]any) (*Registry, *store.MemoryStore) {
	t.Helper()
	s, err := store.NewMemoryStore(initial)
	require.NoError(t, err)

	defs, err := DefaultDefinitions()
	require.NoError(t, err)

	r, err := NewRegistry(context.Background(), s, defs, logger.Nop())
	require.NoError(t, err)
	return r, s
}

func TestDefaultDefinitions(t *testing.T) {
	defs, err := DefaultDefinitions()
	require.NoError(t, err)
	require.NotEmpty(t, defs)

	byName := make(map[string]Definition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}

	assert.Equal(t, env.KindFloat, byName["FEEDER_LAT"].Default.Kind())
	assert.Equal(t, env.KindInt, byName["FEEDER_ALT_M"].Default.Kind())
	assert.True(t, byName["FEEDER_NAME"].Mandatory)
	assert.Equal(t, env.List(env.Bool(false)), byName["AGGREGATORS_ENABLED"].Default)
	assert.Contains(t, byName["MLAT_ENABLED"].Tags, env.TagIsEnabled)
}

func TestLoadDefinitions(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("valid", func(t *testing.T) {
		defs, err := LoadDefinitions(write("ok.json", `[{"name":"A","default":1.5},{"name":"B"}]`))
		require.NoError(t, err)
		require.Len(t, defs, 2)
		assert.Equal(t, env.Float(1.5), defs[0].Default)
		assert.True(t, defs[1].Default.IsNull())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDefinitions(filepath.Join(dir, "none.json"))
		assert.ErrorIs(t, err, ErrLoadingDefinitions)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := LoadDefinitions(write("bad.json", `{"name":`))
		assert.ErrorIs(t, err, ErrLoadingDefinitions)
	})

	t.Run("nameless", func(t *testing.T) {
		_, err := LoadDefinitions(write("nameless.json", `[{"default":1}]`))
		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})

	t.Run("two element list default", func(t *testing.T) {
		_, err := LoadDefinitions(write("list.json", `[{"name":"L","default":["a","b"]}]`))
		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := LoadDefinitions(write("dup.json", `[{"name":"A"},{"name":"A"}]`))
		assert.ErrorIs(t, err, ErrDuplicateSetting)
	})
}

func TestNewRegistry_PullsFromStore(t *testing.T) {
	r, s := newTestRegistry(t, map[string]any{
		"FEEDER_NAME":  "home",
		"FEEDER_LAT":   52,
		"MLAT_ENABLED": "off",
	})

	name, ok := r.Get("FEEDER_NAME")
	require.True(t, ok)
	assert.Equal(t, env.String("home"), name.Value())

	lat, _ := r.Get("FEEDER_LAT")
	assert.Equal(t, env.Float(52), lat.Value())

	mlat, _ := r.Get("MLAT_ENABLED")
	assert.Equal(t, env.Bool(false), mlat.Value())

	assert.Zero(t, s.Writes())
}

func TestRegistry_NamesAndTags(t *testing.T) {
	r, _ := newTestRegistry(t, nil)

	names := r.Names()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "SITE_NAMES")

	var mlat []string
	for _, cell := range r.ByTag("mlat") {
		mlat = append(mlat, cell.Name())
	}
	assert.Equal(t, []string{"MLAT_ENABLED", "MLAT_PRIVACY"}, mlat)
	assert.Empty(t, r.ByTag("no-such-tag"))

	_, ok := r.Get("NOPE")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	r, s := newTestRegistry(t, nil)
	ctx := context.Background()

	version, err := env.New(ctx, s, "APP_VERSION", env.WithValueProvider(func() any { return "1.2.3" }))
	require.NoError(t, err)
	require.NoError(t, r.Register(version))

	assert.Equal(t, env.String("1.2.3"), r.Snapshot()["APP_VERSION"])

	dup, err := env.New(ctx, s, "FEEDER_NAME")
	require.NoError(t, err)
	assert.ErrorIs(t, r.Register(dup), ErrDuplicateSetting)
}

func TestRegistry_Missing(t *testing.T) {
	r, _ := newTestRegistry(t, nil)
	ctx := context.Background()

	assert.Equal(t, []string{"FEEDER_NAME"}, r.Missing())

	name, _ := r.Get("FEEDER_NAME")
	_, err := name.Set(ctx, "home")
	require.NoError(t, err)
	assert.Empty(t, r.Missing())
}

func TestNewRegistry_DuplicateDefinitions(t *testing.T) {
	s, err := store.NewMemoryStore(nil)
	require.NoError(t, err)

	_, err = NewRegistry(context.Background(), s, []Definition{{Name: "A"}, {Name: "A"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrDuplicateSetting)
}

func TestSnapshot(t *testing.T) {
	r, _ := newTestRegistry(t, map[string]any{"SITE_NAMES": []any{"north", "south"}})

	snap := r.Snapshot()
	assert.Len(t, snap, len(r.Names()))
	assert.Equal(t, env.List(env.String("north"), env.String("south")), snap["SITE_NAMES"])
	assert.Equal(t, env.String("UTC"), snap["FEEDER_TZ"])
}
