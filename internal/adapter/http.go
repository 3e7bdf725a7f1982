package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-conf-keeper/internal/config"
	"github.com/MKhiriev/go-conf-keeper/internal/env"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/utils"
	"github.com/MKhiriev/go-conf-keeper/models"
)

const (
	settingsPath = "/api/settings"
	settingPath  = "/api/settings/{name}"
	itemPath     = "/api/settings/{name}/items/{idx}"
	movePath     = "/api/settings/{name}/move"
	missingPath  = "/api/missing"
	versionPath  = "/api/version/"
)

type httpSettingsAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPSettingsAdapter constructs an HTTP/REST implementation of
// [SettingsAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPSettingsAdapter(cfg config.ClientAdapter, logger *logger.Logger) (SettingsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	return &httpSettingsAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSettingsAdapter) List(ctx context.Context) ([]models.Setting, error) {
	var list []models.Setting

	resp, err := h.request(ctx).
		SetResult(&list).
		Get(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return list, nil
}

func (h *httpSettingsAdapter) Get(ctx context.Context, name string) (models.Setting, error) {
	var setting models.Setting

	resp, err := h.request(ctx).
		SetPathParam("name", name).
		SetResult(&setting).
		Get(settingPath)
	if err != nil {
		return models.Setting{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Setting{}, err
	}
	return setting, nil
}

func (h *httpSettingsAdapter) Missing(ctx context.Context) ([]string, error) {
	var missing models.MissingResponse

	resp, err := h.request(ctx).
		SetResult(&missing).
		Get(missingPath)
	if err != nil {
		return nil, fmt.Errorf("missing request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return missing.Missing, nil
}

func (h *httpSettingsAdapter) Set(ctx context.Context, name string, value env.Value) (models.UpdateResponse, error) {
	var result models.UpdateResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("name", name).
		SetBody(models.SetRequest{Value: value}).
		SetResult(&result).
		Put(settingPath)
	if err != nil {
		return models.UpdateResponse{}, fmt.Errorf("set request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateResponse{}, err
	}
	return result, nil
}

func (h *httpSettingsAdapter) ListGet(ctx context.Context, name string, idx int) (models.ItemResponse, error) {
	var item models.ItemResponse

	resp, err := h.itemRequest(ctx, name, idx).
		SetResult(&item).
		Get(itemPath)
	if err != nil {
		return models.ItemResponse{}, fmt.Errorf("list get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ItemResponse{}, err
	}
	return item, nil
}

func (h *httpSettingsAdapter) ListSet(ctx context.Context, name string, idx int, value env.Value) (models.UpdateResponse, error) {
	var result models.UpdateResponse

	resp, err := h.itemRequest(ctx, name, idx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SetRequest{Value: value}).
		SetResult(&result).
		Put(itemPath)
	if err != nil {
		return models.UpdateResponse{}, fmt.Errorf("list set request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateResponse{}, err
	}
	return result, nil
}

func (h *httpSettingsAdapter) ListRemove(ctx context.Context, name string, idx int) (models.UpdateResponse, error) {
	var result models.UpdateResponse

	resp, err := h.itemRequest(ctx, name, idx).
		SetResult(&result).
		Delete(itemPath)
	if err != nil {
		return models.UpdateResponse{}, fmt.Errorf("list remove request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateResponse{}, err
	}
	return result, nil
}

func (h *httpSettingsAdapter) ListMove(ctx context.Context, name string, from, to int) (models.UpdateResponse, error) {
	var result models.UpdateResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("name", name).
		SetBody(models.MoveRequest{From: from, To: to}).
		SetResult(&result).
		Post(movePath)
	if err != nil {
		return models.UpdateResponse{}, fmt.Errorf("list move request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateResponse{}, err
	}
	return result, nil
}

func (h *httpSettingsAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpSettingsAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpSettingsAdapter) itemRequest(ctx context.Context, name string, idx int) *resty.Request {
	return h.request(ctx).SetPathParams(map[string]string{
		"name": name,
		"idx":  strconv.Itoa(idx),
	})
}
