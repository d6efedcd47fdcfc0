package usecase

import "errors"

var (
	// ErrInvalidInput is returned before any state is touched.
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrUpstream wraps failures of the backing stores.
	ErrUpstream = errors.New("upstream failure")
)
