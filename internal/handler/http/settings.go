package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/utils"
	"github.com/MKhiriev/go-conf-keeper/models"
)

func (h *Handler) listSettings(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.SettingsService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err, "error listing settings")
		return
	}
	h.writeJSON(w, r, list, http.StatusOK)
}

func (h *Handler) missingSettings(w http.ResponseWriter, r *http.Request) {
	missing, err := h.services.SettingsService.Missing(r.Context())
	if err != nil {
		h.writeError(w, r, err, "error listing missing settings")
		return
	}
	h.writeJSON(w, r, models.MissingResponse{Missing: missing}, http.StatusOK)
}

func (h *Handler) getSetting(w http.ResponseWriter, r *http.Request) {
	setting, err := h.services.SettingsService.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err, "error getting setting")
		return
	}
	h.writeJSON(w, r, setting, http.StatusOK)
}

func (h *Handler) setSetting(w http.ResponseWriter, r *http.Request) {
	var body models.SetRequest
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, err, "error decoding setting value")
		return
	}

	res, err := h.services.SettingsService.Set(r.Context(), chi.URLParam(r, "name"), body.Value)
	if err != nil {
		h.writeError(w, r, err, "error setting value")
		return
	}
	h.writeJSON(w, r, res, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	idx, err := indexParam(r)
	if err != nil {
		h.writeError(w, r, err, "error parsing list index")
		return
	}

	item, err := h.services.SettingsService.ListGet(r.Context(), chi.URLParam(r, "name"), idx)
	if err != nil {
		h.writeError(w, r, err, "error getting list item")
		return
	}
	h.writeJSON(w, r, item, http.StatusOK)
}

func (h *Handler) setItem(w http.ResponseWriter, r *http.Request) {
	idx, err := indexParam(r)
	if err != nil {
		h.writeError(w, r, err, "error parsing list index")
		return
	}

	var body models.SetRequest
	if err = decodeBody(r, &body); err != nil {
		h.writeError(w, r, err, "error decoding item value")
		return
	}

	res, err := h.services.SettingsService.ListSet(r.Context(), chi.URLParam(r, "name"), idx, body.Value)
	if err != nil {
		h.writeError(w, r, err, "error setting list item")
		return
	}
	h.writeJSON(w, r, res, http.StatusOK)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	idx, err := indexParam(r)
	if err != nil {
		h.writeError(w, r, err, "error parsing list index")
		return
	}

	res, err := h.services.SettingsService.ListRemove(r.Context(), chi.URLParam(r, "name"), idx)
	if err != nil {
		h.writeError(w, r, err, "error removing list items")
		return
	}
	h.writeJSON(w, r, res, http.StatusOK)
}

func (h *Handler) moveItem(w http.ResponseWriter, r *http.Request) {
	var body models.MoveRequest
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, err, "error decoding move request")
		return
	}

	res, err := h.services.SettingsService.ListMove(r.Context(), chi.URLParam(r, "name"), body.From, body.To)
	if err != nil {
		h.writeError(w, r, err, "error moving list item")
		return
	}
	h.writeJSON(w, r, res, http.StatusOK)
}

func indexParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "idx")
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidIndexParam, raw)
	}
	return idx, nil
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	return nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, body := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	http.Error(w, body, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any, status int) {
	if _, err := utils.WriteJSON(w, v, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
