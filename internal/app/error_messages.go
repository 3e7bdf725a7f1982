// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the HTTP handlers that
// write them into error responses and the client adapter that reads them
// back.
package app

const (
	// MsgInvalidDataProvided is returned when the request body or a path
	// parameter cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for failures the client cannot
	// resolve.
	MsgInternalServerError = "internal server error"

	// MsgSettingNotFound is returned when the named setting is not declared.
	MsgSettingNotFound = "setting not found"

	// MsgEmptySettingName is returned when the setting name in the path is
	// blank.
	MsgEmptySettingName = "setting name is empty"

	// MsgNotAList is returned by item and move routes on scalar settings.
	MsgNotAList = "setting is not a list"

	// MsgInvalidIndex is returned for negative list indices.
	MsgInvalidIndex = "invalid list index"

	// MsgListValueProvided is returned when a list is sent where a single
	// item is expected.
	MsgListValueProvided = "list items must be scalars"

	// MsgReadOnlySetting is returned on writes to computed settings.
	MsgReadOnlySetting = "setting is read-only"

	// MsgValueRejected is returned when the setting refused the value, for
	// example a non-number sent to a float setting.
	MsgValueRejected = "value rejected"

	// MsgStoreUnavailable is returned when the backing store cannot be
	// reached right now. Retrying later may succeed.
	MsgStoreUnavailable = "settings store unavailable"
)
