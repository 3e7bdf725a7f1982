// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-conf-keeper/internal/adapter"
	"github.com/MKhiriev/go-conf-keeper/internal/app"
	"github.com/MKhiriev/go-conf-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgEmptySettingName:
			return ErrEmptySettingName
		case app.MsgNotAList:
			return ErrNotAList
		case app.MsgInvalidIndex:
			return ErrInvalidIndex
		case app.MsgListValueProvided:
			return ErrListValueProvided
		case app.MsgReadOnlySetting:
			return ErrReadOnlySetting
		}

	case errors.Is(err, adapter.ErrNotFound):
		return ErrSettingNotFound

	case errors.Is(err, adapter.ErrUnprocessable):
		return ErrValueRejected

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return store.ErrStoreUnavailable
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
