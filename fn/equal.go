package fn

import (
	"math"
	"reflect"
)

// Equaler is implemented by values with their own notion of equality.
type Equaler interface {
	Equals(other any) bool
}

// Is reports whether a and b are the same value.
//
// Comparable values compare with ==, except that NaN is equal to NaN.
// Otherwise a's Equals method is used when it has one, and reflect.DeepEqual
// for values that cannot be compared with ==.
func Is(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if isNaN(a) && isNaN(b) {
		return true
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	bothComparable := ta.Comparable() && tb.Comparable()
	if bothComparable && safeEqual(a, b) {
		return true
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equals(b)
	}
	if !bothComparable {
		return reflect.DeepEqual(a, b)
	}
	return false
}

// Eq is the curried form of Is.
var Eq = Curry(Is)

// safeEqual is == falling back to reflect.DeepEqual when an interface field
// holds a value that cannot be compared.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}

func isNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	}
	return false
}

// IsNaN reports whether v is a floating point NaN.
func IsNaN(v any) bool {
	return isNaN(v)
}

// Truthy reports whether v counts as true: nil, false, zero numbers, NaN
// and the empty string do not.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.String:
		return rv.Len() > 0
	}
	return true
}
