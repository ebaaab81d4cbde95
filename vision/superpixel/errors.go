package superpixel

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidParameter is matched, via errors.Is, by every parameter validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError describes one rejected input.
type InvalidParameterError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Is makes InvalidParameterError match ErrInvalidParameter.
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func newInvalidParameterError(field string, value interface{}, reason string) error {
	return &InvalidParameterError{Field: field, Value: value, Reason: reason}
}
