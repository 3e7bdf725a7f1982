package settings

import "errors"

var (
	// ErrDuplicateSetting is returned when two settings share a name.
	ErrDuplicateSetting = errors.New("duplicate setting")
	// ErrInvalidDefinition is returned for a definition that cannot be turned
	// into a setting.
	ErrInvalidDefinition = errors.New("invalid setting definition")
	// ErrLoadingDefinitions is returned when a definitions file cannot be read
	// or decoded.
	ErrLoadingDefinitions = errors.New("error loading setting definitions")
)
