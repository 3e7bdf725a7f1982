package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-conf-keeper/internal/app"
	"github.com/MKhiriev/go-conf-keeper/internal/env"
	"github.com/MKhiriev/go-conf-keeper/internal/service"
	"github.com/MKhiriev/go-conf-keeper/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order: store unavailability wraps inside the
// env store errors and has to win over them.
var errorResponses = []errorResponse{
	{errInvalidIndexParam, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{errInvalidBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrEmptySettingName, http.StatusBadRequest, app.MsgEmptySettingName},
	{service.ErrNotAList, http.StatusBadRequest, app.MsgNotAList},
	{service.ErrInvalidIndex, http.StatusBadRequest, app.MsgInvalidIndex},
	{service.ErrListValueProvided, http.StatusBadRequest, app.MsgListValueProvided},
	{service.ErrReadOnlySetting, http.StatusBadRequest, app.MsgReadOnlySetting},
	{service.ErrSettingNotFound, http.StatusNotFound, app.MsgSettingNotFound},
	{service.ErrValueRejected, http.StatusUnprocessableEntity, app.MsgValueRejected},

	{store.ErrStoreUnavailable, http.StatusServiceUnavailable, app.MsgStoreUnavailable},
	{env.ErrStoreRead, http.StatusInternalServerError, app.MsgInternalServerError},
	{env.ErrStoreWrite, http.StatusInternalServerError, app.MsgInternalServerError},
}

func statusFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
