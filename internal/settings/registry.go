// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings keeps the set of configuration cells a process knows
// about, all backed by one shared store.
package settings

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-conf-keeper/internal/env"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/store"
)

// Registry maps setting names to their cells.
type Registry struct {
	mu    sync.RWMutex
	cells map[string]*env.Env

	store  store.Store
	logger *logger.Logger
}

// NewRegistry builds one cell per definition. Each cell pulls its persisted
// value from s while it is created.
func NewRegistry(ctx context.Context, s store.Store, defs []Definition, log *logger.Logger) (*Registry, error) {
	r := &Registry{
		cells:  make(map[string]*env.Env, len(defs)),
		store:  s,
		logger: log,
	}

	for _, d := range defs {
		cell, err := env.New(ctx, s, d.Name, d.Options(log)...)
		if err != nil {
			return nil, fmt.Errorf("error creating setting %s: %w", d.Name, err)
		}
		if err = r.Register(cell); err != nil {
			return nil, err
		}
	}

	log.Info().Int("settings", len(r.cells)).Msg("settings registry ready")
	return r, nil
}

// Store returns the store the cells reconcile against.
func (r *Registry) Store() store.Store { return r.store }

// Register adds a cell built elsewhere, typically a computed one.
func (r *Registry) Register(cell *env.Env) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cells[cell.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSetting, cell.Name())
	}
	r.cells[cell.Name()] = cell
	return nil
}

// Get returns the cell called name.
func (r *Registry) Get(name string) (*env.Env, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cell, ok := r.cells[name]
	return cell, ok
}

// Names returns all setting names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.cells))
}

// ByTag returns the cells carrying tag, sorted by name.
func (r *Registry) ByTag(tag string) []*env.Env {
	var out []*env.Env
	for _, name := range r.Names() {
		cell, _ := r.Get(name)
		if cell.HasTag(tag) {
			out = append(out, cell)
		}
	}
	return out
}

// Snapshot returns the current value of every setting.
func (r *Registry) Snapshot() map[string]env.Value {
	r.mu.RLock()
	cells := slices.Collect(maps.Values(r.cells))
	r.mu.RUnlock()

	// Value may call a provider, so it runs without the registry lock
	out := make(map[string]env.Value, len(cells))
	for _, cell := range cells {
		out[cell.Name()] = cell.Value()
	}
	return out
}

// Missing returns the names of mandatory settings that hold no usable value:
// an empty string, or a list whose items are all empty strings.
func (r *Registry) Missing() []string {
	var missing []string
	for _, name := range r.Names() {
		cell, _ := r.Get(name)
		if cell.IsMandatory() && isEmpty(cell.Value()) {
			missing = append(missing, name)
		}
	}
	return missing
}

func isEmpty(v env.Value) bool {
	if v.IsList() {
		for _, item := range v.Items() {
			if !isEmpty(item) {
				return false
			}
		}
		return true
	}
	if s, ok := v.Str(); ok {
		return s == ""
	}
	return v.IsNull()
}
