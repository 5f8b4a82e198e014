package maybe

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/on-the-ground/loda_ive_go/shared/helper"
)

// Try wraps f so that a panic becomes an Error and a normal return goes
// through Of. The result keeps f's arity.
func Try(f any) *fn.Function {
	target := fn.From(f)
	return fn.Arity(target.Arity(), func(args ...any) (res any) {
		defer func() {
			if r := recover(); r != nil {
				res = Error{err: recovered(r)}
			}
		}()
		return Of(target.Call(args...))
	})
}

func recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%w: %v", ErrRecovered, r)
}

func Is(v any) bool      { return Of(v).Is() }
func IsError(v any) bool { return Of(v).IsError() }
func Get(v any) any      { return Of(v).Get() }

func GetError(v any) error {
	return Of(v).GetError()
}

// Or returns the value held by Of(v), or fallback.
func Or(fallback any, v any) any {
	return Of(v).Or(fallback)
}

// GetAs returns the value held by Of(v) as a T.
func GetAs[T any](v any) (T, error) {
	m := Of(v)
	if !m.Is() {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNoValue, m)
	}
	return helper.As[T](m.Get())
}

// At looks key up in a slice, array, string or map. A missing map key is
// None and an index out of range is an Error.
var At = fn.Curry(Try(func(key, indexed any) any {
	rv := reflect.ValueOf(indexed)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.String:
		i, ok := key.(int)
		if !ok {
			panic(fmt.Errorf("%w: index %T", helper.ErrUnexpectedType, key))
		}
		return rv.Index(i).Interface()
	case reflect.Map:
		v := rv.MapIndex(reflect.ValueOf(key))
		if !v.IsValid() {
			return nil
		}
		return v.Interface()
	}
	panic(fmt.Errorf("%w: not indexed: %T", helper.ErrUnexpectedType, indexed))
}))
