// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import "errors"

// Store failures are the only errors a cell returns. Malformed input never
// produces an error; it is logged and reported as [Rejected] or discarded.
var (
	// ErrStoreRead wraps a failure of [store.Store.ReadAll].
	ErrStoreRead = errors.New("error reading settings store")

	// ErrStoreWrite wraps a failure of [store.Store.WriteAll]. The in-memory
	// value has already been changed when it is returned.
	ErrStoreWrite = errors.New("error writing settings store")
)
