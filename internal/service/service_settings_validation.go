package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/env"
	"github.com/MKhiriev/go-conf-keeper/models"
)

// SettingsServiceWrapper defines middleware composition for SettingsService.
// Implementations wrap an existing SettingsService to add behavior such as
// validating input.
type SettingsServiceWrapper interface {
	Wrap(SettingsService) SettingsService // returns a decorated SettingsService applying additional behavior
}

// SettingsValidationService rejects malformed requests before they reach the
// cells: blank names, indices outside [0, maxListItems) and list values sent
// as list items.
type SettingsValidationService struct {
	inner        SettingsService
	maxListItems int
}

// NewSettingsValidationService caps list indices at maxListItems. A value of
// zero or less selects config.DefaultMaxListItems.
func NewSettingsValidationService(maxListItems int) SettingsServiceWrapper {
	if maxListItems <= 0 {
		maxListItems = config.DefaultMaxListItems
	}
	return &SettingsValidationService{maxListItems: maxListItems}
}

func (v *SettingsValidationService) List(ctx context.Context) ([]models.Setting, error) {
	return v.inner.List(ctx)
}

func (v *SettingsValidationService) Get(ctx context.Context, name string) (models.Setting, error) {
	if err := validateName(name); err != nil {
		return models.Setting{}, err
	}
	return v.inner.Get(ctx, name)
}

func (v *SettingsValidationService) Missing(ctx context.Context) ([]string, error) {
	return v.inner.Missing(ctx)
}

func (v *SettingsValidationService) Set(ctx context.Context, name string, value env.Value) (models.UpdateResponse, error) {
	if err := validateName(name); err != nil {
		return models.UpdateResponse{}, err
	}
	return v.inner.Set(ctx, name, value)
}

func (v *SettingsValidationService) ListGet(ctx context.Context, name string, idx int) (models.ItemResponse, error) {
	if err := validateName(name); err != nil {
		return models.ItemResponse{}, err
	}
	if err := v.validateIndex(idx); err != nil {
		return models.ItemResponse{}, err
	}
	return v.inner.ListGet(ctx, name, idx)
}

func (v *SettingsValidationService) ListSet(ctx context.Context, name string, idx int, value env.Value) (models.UpdateResponse, error) {
	if err := validateName(name); err != nil {
		return models.UpdateResponse{}, err
	}
	if err := v.validateIndex(idx); err != nil {
		return models.UpdateResponse{}, err
	}
	if value.IsList() {
		return models.UpdateResponse{}, fmt.Errorf("error during item validation: %w", ErrListValueProvided)
	}
	return v.inner.ListSet(ctx, name, idx, value)
}

func (v *SettingsValidationService) ListRemove(ctx context.Context, name string, idx int) (models.UpdateResponse, error) {
	if err := validateName(name); err != nil {
		return models.UpdateResponse{}, err
	}
	if err := v.validateIndex(idx); err != nil {
		return models.UpdateResponse{}, err
	}
	return v.inner.ListRemove(ctx, name, idx)
}

func (v *SettingsValidationService) ListMove(ctx context.Context, name string, from, to int) (models.UpdateResponse, error) {
	if err := validateName(name); err != nil {
		return models.UpdateResponse{}, err
	}
	if err := v.validateIndex(from); err != nil {
		return models.UpdateResponse{}, err
	}
	if err := v.validateIndex(to); err != nil {
		return models.UpdateResponse{}, err
	}
	return v.inner.ListMove(ctx, name, from, to)
}

func (v *SettingsValidationService) Wrap(wrapped SettingsService) SettingsService {
	v.inner = wrapped
	return v
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptySettingName
	}
	return nil
}

func (v *SettingsValidationService) validateIndex(idx int) error {
	if idx < 0 || idx >= v.maxListItems {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, idx)
	}
	return nil
}
