package alg

import (
	"fmt"

	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/on-the-ground/loda_ive_go/log"
	"github.com/on-the-ground/loda_ive_go/maybe"
	"github.com/on-the-ground/loda_ive_go/promise"
	"github.com/on-the-ground/loda_ive_go/seq"
	"github.com/samber/lo"
)

// Map applies f inside x, whatever kind of context x is.
//
// A curried f of arity above one is lifted through Chain when x can chain,
// so Map over a Maybe with a two-argument curried function yields a Maybe
// holding the partially applied function, ready for Ap.
func Map(f any, x any) any {
	mapper := fn.From(f)
	k := Classify(x)
	if fn.IsCurried(mapper) && mapper.Arity() > 1 && chainable(x, k) {
		rest := mapper.Arity() - 1
		return Chain(x, func(v any) any {
			return Unit(x, fn.Curry(fn.Partial(fn.Uncurry(mapper), v), rest))
		})
	}

	switch k {
	case KindNone:
		return x
	case KindArray:
		return lo.Map(seq.Array(x), func(v any, _ int) any { return mapper.Call(v) })
	case KindOptional:
		return x.(maybe.Maybe).Map(mapper)
	case KindFunctor:
		return x.(Mapper).Map(unary(mapper))
	case KindApplicative:
		return Ap(Unit(x, mapper), x)
	case KindAsync, KindMonad:
		return Chain(x, func(v any) any { return Unit(x, mapper.Call(v)) })
	case KindSequence:
		return seq.Map(mapper, x)
	case KindRaw:
		return mapper.Call(x)
	}
	panic("exhaustive match")
}

// Lift is Map under the name the applicative vocabulary uses.
func Lift(f any, x any) any {
	return Map(f, x)
}

// Unit puts v into a context of the same kind as exemplar.
//
// For a promise exemplar v is read through maybe.Of: a value resolves, an
// error rejects with it, and an absent value rejects with
// maybe.ErrNoValue.
func Unit(exemplar any, v any) any {
	switch k := Classify(exemplar); k {
	case KindNone:
		return nil
	case KindArray:
		if isAbsent(v) {
			return []any{}
		}
		return []any{v}
	case KindOptional:
		return maybe.Of(v)
	case KindAsync:
		return settled(maybe.Of(v))
	case KindSequence:
		if isAbsent(v) {
			return seq.Empty
		}
		return seq.Of(v)
	case KindFunctor, KindApplicative, KindMonad:
		if p, ok := exemplar.(Pointed); ok {
			return p.Of(v)
		}
		panic(fmt.Errorf("%w: %T is a %s", ErrNotApplicative, exemplar, k))
	case KindRaw:
		return v
	}
	panic("exhaustive match")
}

// Pure is Unit.
func Pure(exemplar any, v any) any {
	return Unit(exemplar, v)
}

func settled(m maybe.Maybe) *promise.Promise {
	switch {
	case m.Is():
		return promise.Resolve(m.Get())
	case m.IsError():
		return promise.Reject(m.GetError())
	}
	return promise.Reject(maybe.ErrNoValue)
}

// Chain applies f, which returns a context, to the contents of m and
// flattens one level.
//
// Arrays concatenate the results, promises adopt them, and sequences are
// concatenated lazily. A raw m is just passed to f.
func Chain(m any, f any) any {
	binder := fn.From(f)
	switch k := Classify(m); k {
	case KindNone:
		return m
	case KindArray:
		return lo.FlatMap(seq.Array(m), func(v any, _ int) []any {
			return spread(binder.Call(v))
		})
	case KindOptional:
		return m.(maybe.Maybe).Chain(binder)
	case KindAsync:
		return m.(*promise.Promise).Then(binder)
	case KindFunctor, KindApplicative, KindMonad:
		if c, ok := m.(Chainer); ok {
			return c.Chain(unary(binder))
		}
		if t, ok := m.(Thenable); ok {
			return t.Then(unary(binder))
		}
		log.Log(log.LogWarn, "chain on a value without chain", map[string]interface{}{
			"type": fmt.Sprintf("%T", m),
			"kind": k.String(),
		})
		panic(fmt.Errorf("%w: %T is a %s", ErrNotMonad, m, k))
	case KindSequence:
		return seq.Concat(seq.Map(binder, m))
	case KindRaw:
		return binder.Call(m)
	}
	panic("exhaustive match")
}

// Bind is Chain with the function first.
func Bind(f any, m any) any {
	return Chain(m, f)
}

// spread unpacks an array or sequence result the way array concatenation
// does. Anything else is kept as one element.
func spread(v any) []any {
	switch Classify(v) {
	case KindArray, KindSequence:
		return seq.Array(v)
	}
	return []any{v}
}

// Ap applies the function or functions held by fs to the values held by
// xs. Either side being absent yields nil.
func Ap(fs any, xs any) any {
	if isAbsent(fs) || isAbsent(xs) {
		return nil
	}
	switch k := Classify(fs); k {
	case KindOptional:
		return fs.(maybe.Maybe).Ap(maybe.Of(xs))
	case KindApplicative:
		return fs.(Aper).Ap(xs)
	case KindRaw:
		return fn.Call(fs, xs)
	default:
		if a, ok := fs.(Aper); ok {
			return a.Ap(xs)
		}
		return Chain(fs, func(f any) any { return Map(f, xs) })
	}
}

func unary(f *fn.Function) func(any) any {
	return func(v any) any { return f.Call(v) }
}
