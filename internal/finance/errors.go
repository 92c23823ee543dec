package finance

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a computation that would divide by a value which
// must never be zero in a valid record. It is returned instead of letting
// NaN or Inf propagate into derived values.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}
