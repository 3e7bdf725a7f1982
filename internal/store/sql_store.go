// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-conf-keeper/internal/logger"
)

const (
	settingsTable = "settings"
	auditTable    = "settings_audit"
)

// sqlStore keeps the mapping in a settings table, one row per key with the
// JSON encoding of the value. Every WriteAll replaces the table contents in a
// single transaction and appends a row to settings_audit.
type sqlStore struct {
	sync.Mutex

	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
	now     func() time.Time
}

// NewSQLStore returns a [Store] backed by db. The schema must already be
// migrated.
func NewSQLStore(db *DB, log *logger.Logger) Store {
	var placeholder sq.PlaceholderFormat = sq.Question
	if db.dialect == DialectPostgres {
		placeholder = sq.Dollar
	}
	return &sqlStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
		now:     time.Now,
	}
}

func (s *sqlStore) ReadAll(ctx context.Context) (map[string]any, error) {
	query, args, err := s.builder.
		Select("name", "value").
		From(settingsTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "sqlStore.ReadAll").Msg("error selecting settings")
		return nil, s.wrap(ErrReadingStore, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	values := make(map[string]any)
	for rows.Next() {
		var name, raw string
		if err = rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrReadingStore, ErrScanningRows, err)
		}

		dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
		dec.UseNumber()
		var v any
		if err = dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: setting %q: %w", ErrDecodingStore, name, err)
		}
		values[name] = v
	}
	if err = rows.Err(); err != nil {
		return nil, s.wrap(ErrReadingStore, fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return values, nil
}

func (s *sqlStore) WriteAll(ctx context.Context, values map[string]any, reason string) error {
	names := slices.Sorted(maps.Keys(values))

	insert := s.builder.Insert(settingsTable).Columns("name", "value")
	for _, name := range names {
		payload, err := json.Marshal(values[name])
		if err != nil {
			return fmt.Errorf("%w: setting %q: %w", ErrEncodingStore, name, err)
		}
		insert = insert.Values(name, string(payload))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", "sqlStore.WriteAll").Msg("error beginning transaction")
		return s.wrap(ErrWritingStore, fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	// no-op after a successful commit
	defer tx.Rollback() //nolint:errcheck

	statements := []sq.Sqlizer{s.builder.Delete(settingsTable)}
	if len(names) > 0 {
		statements = append(statements, insert)
	}
	statements = append(statements, s.builder.
		Insert(auditTable).
		Columns("reason", "written_at").
		Values(reason, s.now().UTC()))

	for _, stmt := range statements {
		query, args, err := stmt.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			s.logger.Err(err).Str("func", "sqlStore.WriteAll").Str("query", query).Msg("error executing statement")
			return s.wrap(ErrWritingStore, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", "sqlStore.WriteAll").Msg("error committing transaction")
		return s.wrap(ErrWritingStore, fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	s.logger.Info().Str("reason", reason).Int("settings", len(names)).Msg("settings written")
	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

// wrap prefixes err with sentinel and, when the driver says the failure is
// transient, with ErrStoreUnavailable as well.
func (s *sqlStore) wrap(sentinel, err error) error {
	if s.db.errorClassificator != nil && s.db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
