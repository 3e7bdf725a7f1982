package store

import (
	"database/sql"

	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/migrations"
)

// Dialect names understood by [migrations.Migrate].
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

// DB is an open database connection together with the dialect it speaks and
// an optional classifier for driver errors.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}
