package domain

import "errors"

var (
	// ErrInvalidInput is returned when an investment parameter is negative,
	// not finite, or over a configured limit.
	ErrInvalidInput = errors.New("invalid input")
	// ErrRendering is returned when a chart cannot be produced.
	ErrRendering = errors.New("failed to plot summary")
	// ErrSerialization is returned when snapshots cannot be encoded.
	ErrSerialization = errors.New("failed to serialize summary")
)
