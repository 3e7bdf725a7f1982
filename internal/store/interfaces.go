// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

//go:generate mockgen -source=interfaces.go -destination=mock/store_mock.go -package=mock

// Store is the shared persisted key/value mapping that configuration cells
// reconcile against.
//
// The embedded [sync.Locker] is one process-wide mutual exclusion. Callers
// hold it around every ReadAll and the WriteAll that may follow, which turns
// the pair into a compare-and-swap over the whole mapping. ReadAll and
// WriteAll do not take the lock themselves.
type Store interface {
	sync.Locker

	// ReadAll returns the full persisted mapping. Numbers are returned as
	// [encoding/json.Number] so integer and float literals stay apart. A store
	// that holds nothing yet returns an empty, non-nil map.
	ReadAll(ctx context.Context) (map[string]any, error)

	// WriteAll persists values as the new full mapping. reason is a
	// human-readable description of the change used for audit logging only.
	WriteAll(ctx context.Context, values map[string]any, reason string) error

	// Close releases resources held by the store.
	Close() error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
