package fn

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/on-the-ground/loda_ive_go/internal/table"
)

var (
	ErrNotFunction = errors.New("not a function")
	ErrArgType     = errors.New("argument type mismatch")
)

// Function is a callable with a declared arity.
//
// Curried functions keep a back-reference to the function they collect
// arguments for, and memoized functions keep their table.
type Function struct {
	arity    int
	call     func(args ...any) any
	original *Function
	memo     table.Store[any]
}

// New declares a function of the given arity. Negative arities are clamped to 0.
func New(arity int, call func(args ...any) any) *Function {
	if call == nil {
		panic(fmt.Errorf("%w: nil call", ErrNotFunction))
	}
	return &Function{arity: max(arity, 0), call: call}
}

// Call invokes f with args. The arity is only a declaration: every argument
// is forwarded, however many there are.
func (f *Function) Call(args ...any) any {
	return f.call(args...)
}

func (f *Function) Arity() int {
	return f.arity
}

// Fn exposes f as a plain Go func.
func (f *Function) Fn() func(args ...any) any {
	return f.call
}

func (f *Function) String() string {
	switch {
	case f.original != nil:
		return fmt.Sprintf("curried/%d", f.arity)
	case f.memo != nil:
		return fmt.Sprintf("memo/%d", f.arity)
	}
	return fmt.Sprintf("fn/%d", f.arity)
}

// Call coerces f with From and calls it.
func Call(f any, args ...any) any {
	return From(f).Call(args...)
}

// IsFunction reports whether From accepts v.
func IsFunction(v any) bool {
	if f, ok := v.(*Function); ok {
		return f != nil
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// From coerces v into a *Function.
//
// The common any-typed shapes are wrapped directly. Any other Go func is
// called through reflection: its arity is the number of non-variadic
// parameters, missing arguments become zero values, and a non-nil trailing
// error result is returned as the value. Anything else panics with
// ErrNotFunction.
func From(v any) *Function {
	switch f := v.(type) {
	case *Function:
		if f == nil {
			break
		}
		return f
	case func(...any) any:
		if f == nil {
			break
		}
		return New(0, f)
	case func() any:
		if f == nil {
			break
		}
		return New(0, func(...any) any { return f() })
	case func(any) any:
		if f == nil {
			break
		}
		return New(1, func(args ...any) any { return f(argAt(args, 0)) })
	case func(any, any) any:
		if f == nil {
			break
		}
		return New(2, func(args ...any) any { return f(argAt(args, 0), argAt(args, 1)) })
	case func(any, any, any) any:
		if f == nil {
			break
		}
		return New(3, func(args ...any) any { return f(argAt(args, 0), argAt(args, 1), argAt(args, 2)) })
	case func(any) bool:
		if f == nil {
			break
		}
		return New(1, func(args ...any) any { return f(argAt(args, 0)) })
	case func(any, any) bool:
		if f == nil {
			break
		}
		return New(2, func(args ...any) any { return f(argAt(args, 0), argAt(args, 1)) })
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Func && !rv.IsNil() {
			return reflected(rv)
		}
	}
	panic(fmt.Errorf("%w: %T", ErrNotFunction, v))
}

func argAt(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func reflected(rv reflect.Value) *Function {
	t := rv.Type()
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}
	return New(fixed, func(args ...any) any {
		in := make([]reflect.Value, 0, max(fixed, len(args)))
		for i := 0; i < fixed; i++ {
			in = append(in, argValue(argAt(args, i), t.In(i)))
		}
		if t.IsVariadic() {
			elem := t.In(fixed).Elem()
			for i := fixed; i < len(args); i++ {
				in = append(in, argValue(args[i], elem))
			}
		}
		return results(rv.Call(in), t)
	})
}

func argValue(arg any, typ reflect.Type) reflect.Value {
	if arg == nil {
		return reflect.Zero(typ)
	}
	av := reflect.ValueOf(arg)
	switch {
	case av.Type().AssignableTo(typ):
		return av
	case isNumeric(av.Kind()) && isNumeric(typ.Kind()):
		return av.Convert(typ)
	}
	panic(fmt.Errorf("%w: cannot use %T as %s", ErrArgType, arg, typ))
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

func results(out []reflect.Value, t reflect.Type) any {
	if n := len(out); n > 0 && t.Out(n-1) == errorType {
		if !out[n-1].IsNil() {
			return out[n-1].Interface()
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	}
	values := make([]any, len(out))
	for i, o := range out {
		values[i] = o.Interface()
	}
	return values
}
