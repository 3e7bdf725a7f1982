package store

import "errors"

// Sentinel errors returned by store implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnknownBackend is returned by [NewStore] when the configured backend
	// name is not one of json, memory, sqlite or postgres.
	ErrUnknownBackend = errors.New("unknown store backend")

	// ErrReadingStore is returned when the persisted mapping cannot be read.
	ErrReadingStore = errors.New("error reading store")

	// ErrDecodingStore is returned when the persisted mapping is not valid
	// JSON or is not an object.
	ErrDecodingStore = errors.New("error decoding store")

	// ErrEncodingStore is returned when a value handed to WriteAll cannot be
	// encoded as JSON.
	ErrEncodingStore = errors.New("error encoding store")

	// ErrWritingStore is returned when the new mapping cannot be persisted.
	ErrWritingStore = errors.New("error writing store")

	// ErrStoreUnavailable marks failures the database reported as transient
	// (lost connection, serialization failure, deadlock). It is always joined
	// with one of the more specific errors below.
	ErrStoreUnavailable = errors.New("store is temporarily unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when a DELETE or INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning a settings row fails.
	ErrScanningRows = errors.New("failed to scan settings rows")
)
