package network

import "errors"

var (
	// ErrInvalidParameter reports a non-positive or non-finite design input,
	// or an empty component table.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedMode reports a filter topology other than low-pass or
	// high-pass.
	ErrUnsupportedMode = errors.New("unsupported mode")
)
