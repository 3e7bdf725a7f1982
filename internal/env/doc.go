// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package env implements the typed configuration cell [Env].
//
// A cell reconciles three sources of its value: the compiled-in default, the
// value set at runtime and the value persisted in a shared [store.Store].
// The default fixes the declared type. On construction the cell pulls from
// the store and adopts the persisted value when it is compatible, coercing a
// short list of known mismatches:
//   - bool default, any value: parsed with [IsTrue];
//   - list default, scalar of the element type: wrapped into a one-element list;
//   - list-of-bool default, "true"/"false"/"1"/"0": parsed and wrapped;
//   - float default, int: widened;
//   - int default, string: parsed, discarded when not numeric.
//
// Every other mismatch is logged and discarded. After each mutation the cell
// pushes its value back, skipping the write when the store already holds an
// equal value.
//
// Input is never a reason to fail: mutations report [Rejected] and keep the
// previous value. Errors are returned only when the store itself fails.
package env
