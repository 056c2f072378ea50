package polar

import "errors"

var (
	// ErrInvalidUnit is returned when a unit token is neither "deg" nor "rad"
	ErrInvalidUnit = errors.New("angle unit must be either \"deg\" or \"rad\"")

	// ErrNoInput is returned when no input value is given
	ErrNoInput = errors.New("no input value given")

	// ErrNegativeDecimals is returned when the decimal count is negative
	ErrNegativeDecimals = errors.New("decimal count must not be negative")
)
