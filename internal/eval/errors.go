package eval

import "errors"

var (
	// ErrInvalidHandSize indicates a hand was asked to classify with an
	// unsupported card count for its variant.
	ErrInvalidHandSize = errors.New("invalid hand size")
)
