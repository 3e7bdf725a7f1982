// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the settings HTTP API.
//
// [SettingsAdapter] decouples callers from the transport. Error values defined
// in errors.go are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrServiceUnavailable] for 503). The response body is kept in the error
// message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-conf-keeper/internal/env"
	"github.com/MKhiriev/go-conf-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_adapter_mock.go -package=mock

// SettingsAdapter talks to a running settings server.
type SettingsAdapter interface {
	// List returns every setting with its metadata, sorted by name.
	List(ctx context.Context) ([]models.Setting, error)

	// Get returns one setting.
	Get(ctx context.Context, name string) (models.Setting, error)

	// Missing returns the mandatory settings that hold no value yet.
	Missing(ctx context.Context) ([]string, error)

	// Set replaces the value of a setting. The response reports whether the
	// server changed anything.
	Set(ctx context.Context, name string, value env.Value) (models.UpdateResponse, error)

	ListGet(ctx context.Context, name string, idx int) (models.ItemResponse, error)
	ListSet(ctx context.Context, name string, idx int, value env.Value) (models.UpdateResponse, error)

	// ListRemove truncates the list at idx on the server.
	ListRemove(ctx context.Context, name string, idx int) (models.UpdateResponse, error)

	ListMove(ctx context.Context, name string, from, to int) (models.UpdateResponse, error)

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)
}
