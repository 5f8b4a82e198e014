package maybe

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/on-the-ground/loda_ive_go/seq"
)

var (
	ErrNoValue   = errors.New("maybe has no value")
	ErrNoError   = errors.New("maybe has no error")
	ErrRecovered = errors.New("recovered panic")
)

// Maybe is a value that is present (Value), absent (None), or absent with
// a diagnostic error (Error). It is immutable.
//
// Map, Chain and Ap short-circuit on None and Error.
type Maybe interface {
	// Is reports whether a value is present.
	Is() bool
	IsError() bool
	// Or returns the value, or fallback when there is none.
	Or(fallback any) any
	// Get returns the value and panics with ErrNoValue when there is none.
	Get() any
	// GetError returns the error and panics with ErrNoError on anything but Error.
	GetError() error
	Map(f any) Maybe
	// Chain calls f with the value. The result is coerced with Of.
	Chain(f any) Maybe
	// Ap applies the function held by this Maybe to other.
	Ap(other Maybe) Maybe
	Of(v any) Maybe
	// Join flattens a Value holding a Maybe.
	Join() Maybe
	Equals(other any) bool
	String() string
	// Iterator yields the value of a Value and nothing otherwise.
	Iterator() seq.Iterator

	sealedMaybe()
}

var (
	_ Maybe = Value{}
	_ Maybe = none{}
	_ Maybe = Error{}
)

// Of builds a Maybe: nil and NaN are None, a Maybe is returned unchanged,
// an error is Error, and anything else is Value.
func Of(v any) Maybe {
	switch x := v.(type) {
	case nil:
		return None
	case Maybe:
		return x
	case error:
		return Error{err: x}
	}
	if fn.IsNaN(v) {
		return None
	}
	return Value{value: v}
}

// Just wraps v as a Value without inspecting it, so Just(nil) is a present nil.
func Just(v any) Value {
	return Value{value: v}
}

// Fail wraps err as an Error.
func Fail(err error) Error {
	return Error{err: err}
}

// Value holds a present value.
type Value struct {
	value any
}

func (Value) sealedMaybe() {}

func (v Value) Is() bool               { return true }
func (v Value) IsError() bool          { return false }
func (v Value) Or(any) any             { return v.value }
func (v Value) Get() any               { return v.value }
func (v Value) Of(x any) Maybe         { return Of(x) }
func (v Value) Iterator() seq.Iterator { return seq.Iter([]any{v.value}) }
func (v Value) GetError() error        { panic(fmt.Errorf("%w: %s", ErrNoError, v)) }
func (v Value) Map(f any) Maybe        { return Of(fn.Call(f, v.value)) }
func (v Value) Chain(f any) Maybe      { return Of(fn.Call(f, v.value)) }
func (v Value) Ap(other Maybe) Maybe   { return other.Map(v.value) }
func (v Value) String() string         { return fmt.Sprintf("Maybe.Value %v", v.value) }

func (v Value) Join() Maybe {
	if inner, ok := v.value.(Maybe); ok {
		return inner
	}
	return v
}

func (v Value) Equals(other any) bool {
	o, ok := other.(Value)
	return ok && fn.Is(v.value, o.value)
}

type none struct{}

// None is the single absent Maybe. Compare with ==.
var None Maybe = none{}

func (none) sealedMaybe() {}

func (none) Is() bool               { return false }
func (none) IsError() bool          { return false }
func (none) Or(fallback any) any    { return fallback }
func (none) Get() any               { panic(fmt.Errorf("%w: Maybe.None", ErrNoValue)) }
func (none) GetError() error        { panic(fmt.Errorf("%w: Maybe.None", ErrNoError)) }
func (none) Map(any) Maybe          { return None }
func (none) Chain(any) Maybe        { return None }
func (none) Of(x any) Maybe         { return Of(x) }
func (none) Join() Maybe            { return None }
func (none) Iterator() seq.Iterator { return seq.Iter(nil) }
func (none) String() string         { return "Maybe.None" }
func (none) Equals(other any) bool  { return other == None }

// Ap on None yields other when other is an Error, so the error wins.
func (none) Ap(other Maybe) Maybe {
	if other != nil && other.IsError() {
		return other
	}
	return None
}

// Error is an absent value with a diagnostic.
type Error struct {
	err error
}

func (Error) sealedMaybe() {}

func (e Error) Is() bool               { return false }
func (e Error) IsError() bool          { return true }
func (e Error) Or(fallback any) any    { return fallback }
func (e Error) Get() any               { panic(fmt.Errorf("%w: %s", ErrNoValue, e)) }
func (e Error) GetError() error        { return e.err }
func (e Error) Map(any) Maybe          { return e }
func (e Error) Chain(any) Maybe        { return e }
func (e Error) Ap(Maybe) Maybe         { return e }
func (e Error) Of(x any) Maybe         { return Of(x) }
func (e Error) Join() Maybe            { return e }
func (e Error) Iterator() seq.Iterator { return seq.Iter(nil) }
func (e Error) String() string         { return fmt.Sprintf("Maybe.Error %v", e.err) }

func (e Error) Equals(other any) bool {
	o, ok := other.(Error)
	return ok && fn.Is(e.err, o.err)
}

// Unwrap exposes the held error to errors.Is and errors.As.
func (e Error) Unwrap() error {
	return e.err
}

func (e Error) Error() string {
	return e.String()
}
