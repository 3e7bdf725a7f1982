package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-conf-keeper/internal/logger"
)

// jsonFileStore keeps the whole mapping in one JSON object on disk.
type jsonFileStore struct {
	sync.Mutex

	path   string
	logger *logger.Logger
}

// NewJSONFileStore returns a [Store] backed by the JSON file at path. The
// file does not need to exist yet; it is created on the first write.
func NewJSONFileStore(path string, log *logger.Logger) Store {
	return &jsonFileStore{path: path, logger: log}
}

// ReadAll decodes the file. A missing or empty file is an empty mapping.
func (s *jsonFileStore) ReadAll(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingStore, err)
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]any), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingStore, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return make(map[string]any), nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var values map[string]any
	if err = dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodingStore, s.path, err)
	}
	if values == nil {
		values = make(map[string]any)
	}
	return values, nil
}

// WriteAll encodes values into a temporary file next to the target and renames
// it over the target, so readers never see a half-written file.
func (s *jsonFileStore) WriteAll(ctx context.Context, values map[string]any, reason string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}

	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingStore, err)
	}
	payload = append(payload, '\n')

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating directory: %w", ErrWritingStore, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck

	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}

	s.logger.Info().Str("path", s.path).Str("reason", reason).Msg("settings written")
	return nil
}

func (s *jsonFileStore) Close() error { return nil }
