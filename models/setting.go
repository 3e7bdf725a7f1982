package models

import "github.com/MKhiriev/go-conf-keeper/internal/env"

// Setting is the wire view of one configuration cell: its current value and
// the metadata a client needs to edit it.
type Setting struct {
	Name    string    `json:"name"`
	Value   env.Value `json:"value"`
	Default env.Value `json:"default"`

	// IsList is true when the declared default is a one-element list.
	// Such settings are edited item by item.
	IsList bool `json:"is_list"`

	// IsBool is true for boolean-coercing settings.
	IsBool bool `json:"is_bool"`

	Mandatory bool `json:"mandatory"`

	// Computed settings are served by a value provider and cannot be set.
	Computed bool `json:"computed"`

	Tags []string `json:"tags"`
}

// SetRequest is the body of a setting or list item update.
type SetRequest struct {
	Value env.Value `json:"value"`
}

// MoveRequest is the body of a list move: the item at From ends up at To.
type MoveRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ItemResponse carries one list item.
type ItemResponse struct {
	Name  string    `json:"name"`
	Index int       `json:"index"`
	Value env.Value `json:"value"`
}

// UpdateResponse reports the result of a mutation. Outcome is "updated" or
// "unchanged" and Value is the value of the setting after the call.
type UpdateResponse struct {
	Name    string    `json:"name"`
	Outcome string    `json:"outcome"`
	Value   env.Value `json:"value"`
}

// MissingResponse lists the mandatory settings that still hold no value.
type MissingResponse struct {
	Missing []string `json:"missing"`
}
