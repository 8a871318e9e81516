package normalize

import (
	"errors"
	"fmt"
)

// ErrCoercion matches any CoercionError via errors.Is.
var ErrCoercion = errors.New("value coercion failed")

var (
	errNotInteger  = errors.New("not an integer")
	errUnsupported = errors.New("unsupported JSON type")
	errNotObject   = errors.New("expected a JSON object")
	errNotList     = errors.New("expected a JSON array")
)

// CoercionError reports a raw value whose type is incompatible with the field it feeds.
type CoercionError struct {
	Field string
	Value any
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("coerce %s (%v): %v", e.Field, e.Value, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

func (e *CoercionError) Is(target error) bool {
	return target == ErrCoercion
}

// AsCoercionError attempts to unwrap an error into a CoercionError.
func AsCoercionError(err error) (*CoercionError, bool) {
	var cErr *CoercionError
	if errors.As(err, &cErr) {
		return cErr, true
	}
	return nil, false
}
