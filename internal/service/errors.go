package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrSettingNotFound   = errors.New("setting not found")
	ErrEmptySettingName  = errors.New("setting name is empty")
	ErrNotAList          = errors.New("setting is not a list")
	ErrInvalidIndex      = errors.New("invalid list index")
	ErrValueRejected     = errors.New("value rejected")
	ErrReadOnlySetting   = errors.New("setting is computed and cannot be changed")
	ErrListValueProvided = errors.New("list items must be scalars")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
