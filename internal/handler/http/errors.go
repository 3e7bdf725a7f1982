package http

import "errors"

var (
	errInvalidIndexParam = errors.New("list index in path is not a number")
	errInvalidBody       = errors.New("invalid JSON was passed")
)
