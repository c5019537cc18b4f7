package lattice

import "errors"

// Sentinel errors for lattice specification construction. All of these are
// recoverable: callers reprompt or fall back to manual entry.
var (
	// ErrInvalidRange is returned when a range dimension is built with min > max.
	ErrInvalidRange = errors.New("invalid range: min greater than max")

	// ErrEmptySelection is returned when a discrete spec is built from zero
	// elements, or a selector is finalized with nothing selected.
	ErrEmptySelection = errors.New("empty selection")
)
