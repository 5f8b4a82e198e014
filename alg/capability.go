package alg

import (
	"errors"
	"reflect"

	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/on-the-ground/loda_ive_go/maybe"
	"github.com/on-the-ground/loda_ive_go/promise"
	"github.com/on-the-ground/loda_ive_go/seq"
)

var (
	ErrNotApplicative = errors.New("value cannot lift a plain value")
	ErrNotMonad       = errors.New("value cannot be chained")
	ErrNotAsync       = errors.New("value is not a promise")
)

// Mapper is a custom functor.
type Mapper interface {
	Map(f func(any) any) any
}

// Pointed lifts a plain value into the receiver's context.
type Pointed interface {
	Of(v any) any
}

// Aper holds functions and applies them to the values held by another
// container of the same kind.
type Aper interface {
	Ap(values any) any
}

type Chainer interface {
	Chain(f func(any) any) any
}

// Thenable is a promise-like value that is not a *promise.Promise.
type Thenable interface {
	Then(f func(any) any) any
}

type Joiner interface {
	Join() any
}

// Kind tags the strategy the dispatch functions use for a value.
type Kind int

const (
	// KindNone is nil, a nil pointer, or NaN.
	KindNone Kind = iota
	// KindArray is any slice or array.
	KindArray
	// KindOptional is a maybe.Maybe.
	KindOptional
	// KindFunctor is a custom Mapper.
	KindFunctor
	// KindApplicative is a custom Aper that is also Pointed.
	KindApplicative
	// KindAsync is a *promise.Promise.
	KindAsync
	// KindMonad is a custom Chainer that is also Pointed, or a Thenable.
	KindMonad
	// KindSequence is a seq.Iterable or seq.Iterator.
	KindSequence
	// KindRaw is a plain value treated as its own one-element context.
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindArray:
		return "array"
	case KindOptional:
		return "optional"
	case KindFunctor:
		return "functor"
	case KindApplicative:
		return "applicative"
	case KindAsync:
		return "async"
	case KindMonad:
		return "monad"
	case KindSequence:
		return "sequence"
	case KindRaw:
		return "raw"
	}
	panic("exhaustive match")
}

// Classify picks the Kind of v. Capabilities are checked from the most
// specific to the least, so a slice with a Map method is still an array.
func Classify(v any) Kind {
	if isAbsent(v) {
		return KindNone
	}
	if k := reflect.ValueOf(v).Kind(); k == reflect.Slice || k == reflect.Array {
		return KindArray
	}
	if _, ok := v.(maybe.Maybe); ok {
		return KindOptional
	}
	if _, ok := v.(Mapper); ok {
		return KindFunctor
	}
	_, pointed := v.(Pointed)
	if _, ok := v.(Aper); ok && pointed {
		return KindApplicative
	}
	if _, ok := v.(*promise.Promise); ok {
		return KindAsync
	}
	if _, ok := v.(Chainer); ok && pointed {
		return KindMonad
	}
	if _, ok := v.(Thenable); ok {
		return KindMonad
	}
	switch v.(type) {
	case seq.Iterable, seq.Iterator:
		return KindSequence
	}
	return KindRaw
}

func isAbsent(v any) bool {
	if v == nil || fn.IsNaN(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// chainable reports whether v has a chain of its own, which is what the
// curried lifting in Map needs.
func chainable(v any, k Kind) bool {
	if k == KindOptional {
		return true
	}
	_, ok := v.(Chainer)
	return ok
}
