package fn

import (
	"slices"
	"sync"

	"github.com/on-the-ground/loda_ive_go/log"
)

type wrapFactory func(*Function) *Function

type curryKey struct {
	arity int
	right bool
}

// Factories are built once per arity and kept for the life of the process.
var (
	arityFactories sync.Map // int -> wrapFactory
	curryFactories sync.Map // curryKey -> wrapFactory
)

// Arity returns f declaring n parameters. Every call argument is still
// forwarded to f. If f already declares n, f itself is returned.
func Arity(n int, f any) *Function {
	target := From(f)
	n = max(n, 0)
	if target.arity == n {
		return target
	}
	return arityFactory(n)(target)
}

func arityFactory(n int) wrapFactory {
	if w, ok := arityFactories.Load(n); ok {
		return w.(wrapFactory)
	}
	w, loaded := arityFactories.LoadOrStore(n, wrapFactory(func(target *Function) *Function {
		return &Function{arity: n, call: target.call, memo: target.memo}
	}))
	if !loaded {
		log.Log(log.LogDebug, "arity wrapper factory built", map[string]interface{}{"arity": n})
	}
	return w.(wrapFactory)
}

// Curry collects arguments across calls until n of them, by default the
// arity of f, have been supplied and then calls f with all of them.
//
// A call with no arguments returns the curried function itself. A call with
// n or more arguments calls f at once. Currying a curried function curries
// its original. Functions of arity 0 or 1 are returned unchanged.
func Curry(f any, n ...int) *Function {
	return curry(f, false, n)
}

// CurryRight is Curry where each partial call's arguments are placed before
// the ones collected so far, so earlier arguments bind to trailing parameters.
func CurryRight(f any, n ...int) *Function {
	return curry(f, true, n)
}

func curry(f any, right bool, n []int) *Function {
	target := Uncurry(f)
	arity := target.arity
	if len(n) > 0 {
		arity = n[0]
	}
	if arity <= 1 {
		return From(f)
	}
	return curryFactory(arity, right)(target)
}

func IsCurried(f any) bool {
	c, ok := f.(*Function)
	return ok && c != nil && c.original != nil
}

// Uncurry returns the function a curried function collects arguments for,
// or f itself.
func Uncurry(f any) *Function {
	target := From(f)
	if target.original != nil {
		return target.original
	}
	return target
}

func curryFactory(n int, right bool) wrapFactory {
	key := curryKey{arity: n, right: right}
	if w, ok := curryFactories.Load(key); ok {
		return w.(wrapFactory)
	}
	w, loaded := curryFactories.LoadOrStore(key, makeCurry(n, right))
	if !loaded {
		log.Log(log.LogDebug, "curry factory built", map[string]interface{}{
			"arity": n,
			"right": right,
		})
	}
	return w.(wrapFactory)
}

func makeCurry(n int, right bool) wrapFactory {
	return func(target *Function) *Function {
		curried := &Function{arity: n, original: target, memo: target.memo}
		curried.call = func(args ...any) any {
			switch {
			case len(args) == 0:
				return curried
			case len(args) >= n:
				return target.call(args...)
			}
			bound := slices.Clone(args)
			rest := New(n-len(bound), func(more ...any) any {
				if right {
					return target.call(append(slices.Clone(more), bound...)...)
				}
				return target.call(append(slices.Clone(bound), more...)...)
			})
			return curryFactory(n-len(bound), right)(rest)
		}
		return curried
	}
}
