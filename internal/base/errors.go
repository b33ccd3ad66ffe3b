package base

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAPIRequest    = errors.New("API request failed")
)
