package cvss

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection is reported when a metric is missing or outside its domain.
	ErrInvalidSelection = errors.New("invalid metric selection")
	// ErrMalformedVector is reported when a vector string cannot be decoded.
	ErrMalformedVector = errors.New("malformed vector")
	// ErrInvariant means the scoring formulas produced an impossible value.
	ErrInvariant = errors.New("scoring invariant violated")
)

// SelectionError names the metric field that made a selection unusable.
// An empty Value means the field was not set.
type SelectionError struct {
	Field string
	Value string
}

func (e *SelectionError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s is required", ErrInvalidSelection, e.Field)
	}
	return fmt.Sprintf("%s: %s has unknown value %q", ErrInvalidSelection, e.Field, e.Value)
}

func (e *SelectionError) Unwrap() error { return ErrInvalidSelection }
