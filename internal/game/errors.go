package game

import "fmt"

// ValidationError reports a firing parameter outside its allowed range.
// The match is left untouched; the caller re-prompts. It is the only
// recoverable error the engine produces; broken internal invariants are
// programming errors and panic instead.
type ValidationError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %g out of range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// validateRange returns a *ValidationError when v falls outside [lo, hi].
func validateRange(field string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return &ValidationError{Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}
