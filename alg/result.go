package alg

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/on-the-ground/loda_ive_go/maybe"
	"github.com/on-the-ground/loda_ive_go/promise"
)

// ChainResult calls f with the outcome of p as a Maybe: a fulfilled value
// becomes maybe.Value, a rejection with maybe.ErrNoValue becomes
// maybe.None, and any other rejection becomes maybe.Error. The returned
// promise settles with whatever f returns.
func ChainResult(f any, p any) *promise.Promise {
	source := asPromise(p)
	handler := fn.From(f)
	return source.ThenCatch(
		func(v any) any { return handler.Call(maybe.Just(v)) },
		func(err error) any { return handler.Call(outcome(err)) },
	)
}

// LiftResult is ChainResult for an f that returns a plain value or a
// Maybe, which is settled the way Unit settles a promise.
func LiftResult(f any, p any) *promise.Promise {
	lifter := fn.From(f)
	return ChainResult(func(m maybe.Maybe) any {
		return settled(maybe.Of(lifter.Call(m)))
	}, p)
}

// Async builds a promise from a callback-style producer. The value passed
// to done settles the promise: a value fulfills it, an error or
// maybe.Error rejects with that error, and nil or maybe.None rejects with
// maybe.ErrNoValue.
func Async(producer func(done func(any))) *promise.Promise {
	return promise.New(func(resolve func(any), _ func(error)) {
		producer(func(v any) { resolve(settled(maybe.Of(v))) })
	})
}

func outcome(err error) maybe.Maybe {
	if errors.Is(err, maybe.ErrNoValue) {
		return maybe.None
	}
	return maybe.Fail(err)
}

func asPromise(p any) *promise.Promise {
	if pr, ok := p.(*promise.Promise); ok && pr != nil {
		return pr
	}
	panic(fmt.Errorf("%w: %T", ErrNotAsync, p))
}
