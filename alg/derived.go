package alg

import (
	"slices"

	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/on-the-ground/loda_ive_go/seq"
	"github.com/on-the-ground/loda_ive_go/shared/helper"
)

// pushIn appends v to a copy of list, so accumulators shared across
// branches of an array ArrayM never alias.
var pushIn = fn.Curry(func(list, v any) any {
	return append(slices.Clone(helper.MustAs[[]any](list)), v)
})

// ArrayM turns a sequence of contexts into a context of a list.
//
// The context kind is taken from the first element, or from exemplar when
// the sequence is empty; with neither, the result is a plain empty list.
// Promises are chained one after another, so the i-th promise is only
// waited on after the ones before it.
func ArrayM(list any, exemplar ...any) any {
	it := seq.Iter(list)
	step := it.Next()
	if step.Done {
		if len(exemplar) > 0 {
			return Unit(exemplar[0], []any{})
		}
		return []any{}
	}
	acc := Unit(step.Value, []any{})
	for ; !step.Done; step = it.Next() {
		acc = Ap(Map(pushIn, acc), step.Value)
	}
	return acc
}

// MapM maps f over list and collects the resulting contexts with ArrayM.
func MapM(f any, list any, exemplar ...any) any {
	return ArrayM(seq.Map(f, list), exemplar...)
}

// FilterM keeps the elements of list whose predicate result, unwrapped
// from its context, is truthy. The result is a context of the kept list.
func FilterM(pred any, list any, exemplar ...any) any {
	items := seq.Array(list)
	var first any
	if len(exemplar) > 0 {
		first = exemplar[0]
	}
	return filterFrom(fn.From(pred), items, first, len(exemplar) > 0)
}

func filterFrom(pred *fn.Function, items []any, exemplar any, hasExemplar bool) any {
	if len(items) == 0 {
		if !hasExemplar {
			return []any{}
		}
		return Unit(exemplar, []any{})
	}
	head := items[0]
	passed := pred.Call(head)
	keep := func(pass any) func(any) any {
		return func(kept any) any {
			tail := helper.MustAs[[]any](kept)
			if fn.Truthy(pass) {
				return append([]any{head}, tail...)
			}
			return tail
		}
	}
	// a plain predicate result has no context to carry the list in, so the
	// rest is filtered directly into a plain list
	if Classify(passed) == KindRaw {
		return keep(passed)(filterFrom(pred, items[1:], nil, false))
	}
	return Chain(passed, func(pass any) any {
		return Map(keep(pass), filterFrom(pred, items[1:], passed, true))
	})
}

// ReduceM folds list through reducer, chaining every step after the
// first, so a reducer returning contexts threads the accumulator through
// them. An empty list yields initial.
func ReduceM(reducer any, initial any, list any) any {
	r := fn.From(reducer)
	it := seq.Iter(list)
	step := it.Next()
	if step.Done {
		return initial
	}
	acc := r.Call(initial, step.Value)
	for step = it.Next(); !step.Done; step = it.Next() {
		v := step.Value
		acc = Chain(acc, func(a any) any { return r.Call(a, v) })
	}
	return acc
}

// JoinM removes one level of nesting from x.
func JoinM(x any) any {
	switch Classify(x) {
	case KindNone, KindAsync, KindRaw:
		return x
	case KindOptional, KindArray:
		return Chain(x, fn.Identity)
	case KindSequence:
		return seq.Concat(x)
	case KindFunctor, KindApplicative, KindMonad:
		if j, ok := x.(Joiner); ok {
			return j.Join()
		}
		if _, ok := x.(Chainer); ok {
			return Chain(x, fn.Identity)
		}
		return x
	}
	panic("exhaustive match")
}
