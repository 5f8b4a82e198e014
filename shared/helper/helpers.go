package helper

import (
	"errors"
	"fmt"
)

var ErrUnexpectedType = errors.New("unexpected type")

// As asserts v to the expected type T.
// Returns an error if type assertion fails.
func As[T any](v any) (T, error) {
	val, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %T", ErrUnexpectedType, v)
	}
	return val, nil
}

// MustAs is the panic-on-failure variant of As.
func MustAs[T any](v any) T {
	res, err := As[T](v)
	if err != nil {
		panic(err)
	}
	return res
}

// Lookup fetches key from values and asserts it to T.
// A missing key reports found=false with a nil error.
func Lookup[T any](values map[string]any, key string) (res T, found bool, err error) {
	raw, found := values[key]
	if !found {
		return
	}
	res, err = As[T](raw)
	if err != nil {
		err = fmt.Errorf("key %s: %w", key, err)
	}
	return
}
