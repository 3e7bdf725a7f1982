package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-conf-keeper/internal/env"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/mock"
	"github.com/MKhiriev/go-conf-keeper/internal/service"
	"github.com/MKhiriev/go-conf-keeper/internal/store"
)

// ─────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────

func TestListSettings(t *testing.T) {
	router, _ := newTestRouter(t, map[string]any{"FEEDER_LAT": 51.5, "SITE_NAMES": []any{"home"}})

	rec := do(t, router, http.MethodGet, "/api/settings", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[
		{"name":"APP_VERSION","value":"1.2.3","default":null,"is_list":false,"is_bool":false,"mandatory":false,"computed":true,"tags":[]},
		{"name":"FEEDER_LAT","value":51.5,"default":0.0,"is_list":false,"is_bool":false,"mandatory":false,"computed":false,"tags":[]},
		{"name":"FEEDER_NAME","value":"","default":"","is_list":false,"is_bool":false,"mandatory":true,"computed":false,"tags":[]},
		{"name":"MLAT_ENABLED","value":false,"default":false,"is_list":false,"is_bool":true,"mandatory":false,"computed":false,"tags":["is_enabled"]},
		{"name":"SITE_NAMES","value":["home"],"default":[""],"is_list":true,"is_bool":false,"mandatory":false,"computed":false,"tags":[]}
	]`, rec.Body.String())
}

func TestGetSetting(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := do(t, router, http.MethodGet, "/api/settings/MLAT_ENABLED", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"name":"MLAT_ENABLED","value":false,"default":false,"is_list":false,"is_bool":true,"mandatory":false,"computed":false,"tags":["is_enabled"]}`,
		rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/settings/NOPE", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "setting not found\n", rec.Body.String())
}

func TestMissingSettings(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := do(t, router, http.MethodGet, "/api/missing", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"missing":["FEEDER_NAME"]}`, rec.Body.String())

	rec = do(t, router, http.MethodPut, "/api/settings/FEEDER_NAME", `{"value":"home"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/missing", "")
	assert.JSONEq(t, `{"missing":[]}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// PUT /api/settings/{name}
// ─────────────────────────────────────────────

func TestSetSetting(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "float from string",
			path:       "/api/settings/FEEDER_LAT",
			body:       `{"value":"51.5"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"name":"FEEDER_LAT","outcome":"updated","value":51.5}`,
		},
		{
			name:       "unchanged",
			path:       "/api/settings/FEEDER_LAT",
			body:       `{"value":0}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"name":"FEEDER_LAT","outcome":"unchanged","value":0.0}`,
		},
		{
			name:       "checkbox value",
			path:       "/api/settings/MLAT_ENABLED",
			body:       `{"value":"on"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"name":"MLAT_ENABLED","outcome":"updated","value":true}`,
		},
		{
			name:       "scalar on list sets first item",
			path:       "/api/settings/SITE_NAMES",
			body:       `{"value":"home"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"name":"SITE_NAMES","outcome":"updated","value":["home"]}`,
		},
		{
			name:       "rejected value",
			path:       "/api/settings/FEEDER_LAT",
			body:       `{"value":"north"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "value rejected\n",
		},
		{
			name:       "computed setting",
			path:       "/api/settings/APP_VERSION",
			body:       `{"value":"9.9.9"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "setting is read-only\n",
		},
		{
			name:       "unknown setting",
			path:       "/api/settings/NOPE",
			body:       `{"value":1}`,
			wantStatus: http.StatusNotFound,
			wantBody:   "setting not found\n",
		},
		{
			name:       "invalid JSON",
			path:       "/api/settings/FEEDER_LAT",
			body:       `{"value":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid data provided\n",
		},
		{
			name:       "object value",
			path:       "/api/settings/FEEDER_LAT",
			body:       `{"value":{"a":1}}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid data provided\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, nil)

			rec := do(t, router, http.MethodPut, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
				return
			}
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestSetSetting_Persists(t *testing.T) {
	router, s := newTestRouter(t, nil)

	rec := do(t, router, http.MethodPut, "/api/settings/FEEDER_LAT", `{"value":51}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, env.Float(51), stored(t, s, "FEEDER_LAT"))
	assert.Equal(t, []string{"FEEDER_LAT = 51.0"}, s.Reasons())
}

// ─────────────────────────────────────────────
// List items
// ─────────────────────────────────────────────

func TestItems(t *testing.T) {
	router, s := newTestRouter(t, map[string]any{"SITE_NAMES": []any{"a", "b", "c", "d"}})

	rec := do(t, router, http.MethodGet, "/api/settings/SITE_NAMES/items/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"SITE_NAMES","index":1,"value":"b"}`, rec.Body.String())

	rec = do(t, router, http.MethodPut, "/api/settings/SITE_NAMES/items/5", `{"value":"f"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"SITE_NAMES","outcome":"updated","value":["a","b","c","d","","f"]}`, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/settings/SITE_NAMES/move", `{"from":0,"to":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"SITE_NAMES","outcome":"updated","value":["b","c","a","d","","f"]}`, rec.Body.String())

	rec = do(t, router, http.MethodDelete, "/api/settings/SITE_NAMES/items/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"SITE_NAMES","outcome":"updated","value":["b","c","a"]}`, rec.Body.String())

	assert.Equal(t, env.List(env.String("b"), env.String("c"), env.String("a")), stored(t, s, "SITE_NAMES"))
}

func TestItems_Errors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"index not a number", http.MethodGet, "/api/settings/SITE_NAMES/items/x", "", http.StatusBadRequest, "invalid data provided\n"},
		{"negative index", http.MethodGet, "/api/settings/SITE_NAMES/items/-1", "", http.StatusBadRequest, "invalid list index\n"},
		{"negative remove", http.MethodDelete, "/api/settings/SITE_NAMES/items/-1", "", http.StatusBadRequest, "invalid list index\n"},
		{"index at max items", http.MethodGet, "/api/settings/SITE_NAMES/items/256", "", http.StatusBadRequest, "invalid list index\n"},
		{"set far past max items", http.MethodPut, "/api/settings/SITE_NAMES/items/1000000000", `{"value":"x"}`, http.StatusBadRequest, "invalid list index\n"},
		{"scalar setting", http.MethodGet, "/api/settings/FEEDER_LAT/items/0", "", http.StatusBadRequest, "setting is not a list\n"},
		{"list item value", http.MethodPut, "/api/settings/SITE_NAMES/items/0", `{"value":["a"]}`, http.StatusBadRequest, "list items must be scalars\n"},
		{"bad item body", http.MethodPut, "/api/settings/SITE_NAMES/items/0", `nope`, http.StatusBadRequest, "invalid data provided\n"},
		{"bad move body", http.MethodPost, "/api/settings/SITE_NAMES/move", `{"from":"a"}`, http.StatusBadRequest, "invalid data provided\n"},
		{"negative move", http.MethodPost, "/api/settings/SITE_NAMES/move", `{"from":-1,"to":0}`, http.StatusBadRequest, "invalid list index\n"},
		{"unknown list", http.MethodGet, "/api/settings/NOPE/items/0", "", http.StatusNotFound, "setting not found\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, nil)

			rec := do(t, router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// Service failures
// ─────────────────────────────────────────────

func TestHandlers_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "store unavailable",
			err:        fmt.Errorf("error persisting A: %w: %w", env.ErrStoreWrite, store.ErrStoreUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "settings store unavailable\n",
		},
		{
			name:       "store write",
			err:        fmt.Errorf("error persisting A: %w: disk full", env.ErrStoreWrite),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error\n",
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			settingsSvc := mock.NewMockSettingsService(ctrl)
			settingsSvc.EXPECT().List(gomock.Any()).Return(nil, tt.err)

			router := NewHandler(&service.Services{SettingsService: settingsSvc}, logger.Nop()).Init()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
