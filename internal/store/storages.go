package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
)

// NewStore builds the [Store] selected by cfg.Backend. SQL backends are
// connected and migrated before they are returned.
func NewStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (Store, error) {
	switch cfg.Backend {
	case config.BackendJSON, "":
		log.Debug().Str("path", cfg.Files.SettingsJSON).Msg("using json file store")
		return NewJSONFileStore(cfg.Files.SettingsJSON, log), nil

	case config.BackendMemory:
		log.Debug().Msg("using in-memory store")
		s, err := NewMemoryStore(nil)
		if err != nil {
			return nil, err
		}
		return s, nil

	case config.BackendSQLite, config.BackendPostgres:
		db, err := connect(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "store.NewStore").Msg("error migrating database")
			_ = db.Close()
			return nil, err
		}
		return NewSQLStore(db, log), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

func connect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if cfg.Backend == config.BackendPostgres {
		return NewConnectPostgres(ctx, cfg.DB, log)
	}
	return NewConnectSQLite(ctx, cfg.DB, log)
}
