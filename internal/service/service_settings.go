package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-conf-keeper/internal/env"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/settings"
	"github.com/MKhiriev/go-conf-keeper/models"
)

type settingsService struct {
	registry *settings.Registry

	logger *logger.Logger
}

func NewSettingsService(registry *settings.Registry, logger *logger.Logger) SettingsService {
	return &settingsService{
		registry: registry,
		logger:   logger,
	}
}

func (s *settingsService) List(ctx context.Context) ([]models.Setting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := s.registry.Names()
	out := make([]models.Setting, 0, len(names))
	for _, name := range names {
		cell, ok := s.registry.Get(name)
		if !ok {
			continue
		}
		out = append(out, toSetting(cell))
	}
	return out, nil
}

func (s *settingsService) Get(ctx context.Context, name string) (models.Setting, error) {
	cell, err := s.cell(name)
	if err != nil {
		return models.Setting{}, err
	}
	return toSetting(cell), nil
}

func (s *settingsService) Missing(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	missing := s.registry.Missing()
	if missing == nil {
		missing = []string{}
	}
	return missing, nil
}

func (s *settingsService) Set(ctx context.Context, name string, value env.Value) (models.UpdateResponse, error) {
	cell, err := s.writable(name)
	if err != nil {
		return models.UpdateResponse{}, err
	}

	outcome, err := cell.Set(ctx, value)
	return s.result(cell, outcome, err)
}

func (s *settingsService) ListGet(ctx context.Context, name string, idx int) (models.ItemResponse, error) {
	cell, err := s.list(name)
	if err != nil {
		return models.ItemResponse{}, err
	}

	v, err := cell.ListGet(ctx, idx)
	if err != nil {
		return models.ItemResponse{}, fmt.Errorf("error reading item %d of %s: %w", idx, name, err)
	}
	return models.ItemResponse{Name: name, Index: idx, Value: v}, nil
}

func (s *settingsService) ListSet(ctx context.Context, name string, idx int, value env.Value) (models.UpdateResponse, error) {
	cell, err := s.writableList(name)
	if err != nil {
		return models.UpdateResponse{}, err
	}

	outcome, err := cell.ListSet(ctx, idx, value)
	return s.result(cell, outcome, err)
}

func (s *settingsService) ListRemove(ctx context.Context, name string, idx int) (models.UpdateResponse, error) {
	cell, err := s.writableList(name)
	if err != nil {
		return models.UpdateResponse{}, err
	}

	outcome, err := cell.ListRemove(ctx, idx)
	return s.result(cell, outcome, err)
}

func (s *settingsService) ListMove(ctx context.Context, name string, from, to int) (models.UpdateResponse, error) {
	cell, err := s.writableList(name)
	if err != nil {
		return models.UpdateResponse{}, err
	}

	outcome, err := cell.ListMove(ctx, from, to)
	return s.result(cell, outcome, err)
}

func (s *settingsService) cell(name string) (*env.Env, error) {
	cell, ok := s.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSettingNotFound, name)
	}
	return cell, nil
}

func (s *settingsService) writable(name string) (*env.Env, error) {
	cell, err := s.cell(name)
	if err != nil {
		return nil, err
	}
	if cell.IsComputed() {
		return nil, fmt.Errorf("%w: %s", ErrReadOnlySetting, name)
	}
	return cell, nil
}

func (s *settingsService) list(name string) (*env.Env, error) {
	cell, err := s.cell(name)
	if err != nil {
		return nil, err
	}
	if !cell.IsList() {
		return nil, fmt.Errorf("%w: %s", ErrNotAList, name)
	}
	return cell, nil
}

func (s *settingsService) writableList(name string) (*env.Env, error) {
	cell, err := s.list(name)
	if err != nil {
		return nil, err
	}
	if cell.IsComputed() {
		return nil, fmt.Errorf("%w: %s", ErrReadOnlySetting, name)
	}
	return cell, nil
}

// result turns the outcome of a cell mutation into a response. A store error
// wins over the outcome because the value may not have been persisted.
func (s *settingsService) result(cell *env.Env, outcome env.Outcome, err error) (models.UpdateResponse, error) {
	if err != nil {
		s.logger.Err(err).Str("func", "*settingsService.result").Str("setting", cell.Name()).Msg("error persisting setting")
		return models.UpdateResponse{}, fmt.Errorf("error persisting %s: %w", cell.Name(), err)
	}
	if outcome == env.Rejected {
		return models.UpdateResponse{}, fmt.Errorf("%w: %s", ErrValueRejected, cell.Name())
	}

	return models.UpdateResponse{
		Name:    cell.Name(),
		Outcome: outcome.String(),
		Value:   cell.Value(),
	}, nil
}

func toSetting(cell *env.Env) models.Setting {
	return models.Setting{
		Name:      cell.Name(),
		Value:     cell.Value(),
		Default:   cell.Default(),
		IsList:    cell.IsList(),
		IsBool:    cell.IsBool(),
		Mandatory: cell.IsMandatory(),
		Computed:  cell.IsComputed(),
		Tags:      cell.Tags(),
	}
}
