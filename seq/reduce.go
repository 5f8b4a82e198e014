package seq

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/samber/lo"
)

type reduced struct {
	value any
}

// Reduced wraps the final result of a reduction. A reducer returning it
// stops the traversal at once.
func Reduced(v any) any {
	return reduced{value: v}
}

// Reduce folds s with f, seeded with the first element. A single element is
// returned without calling f, and an empty sequence reduces to nil.
func Reduce(f any, s any) any {
	it := Iter(s)
	first := it.Next()
	if first.Done {
		return nil
	}
	return fold(fn.From(f), first.Value, it)
}

// ReduceFrom folds s with f, seeded with init.
func ReduceFrom(f any, init any, s any) any {
	return fold(fn.From(f), init, Iter(s))
}

func fold(f *fn.Function, acc any, it Iterator) any {
	for {
		step := it.Next()
		if step.Done {
			return acc
		}
		acc = f.Call(acc, step.Value)
		if r, ok := acc.(reduced); ok {
			return r.value
		}
	}
}

// Array collects s into a slice. It is never nil.
func Array(s any) []any {
	out := []any{}
	DoAll(func(v any) { out = append(out, v) }, s)
	return out
}

// Object collects a sequence of key/value pairs into a map.
// Each element must be a slice or array of at least two elements.
func Object(s any) map[any]any {
	out := map[any]any{}
	DoAll(func(v any) {
		k, val := pair(v)
		out[k] = val
	}, s)
	return out
}

func pair(v any) (any, any) {
	if p, ok := v.([]any); ok && len(p) >= 2 {
		return p[0], p[1]
	}
	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Len() >= 2 {
		return rv.Index(0).Interface(), rv.Index(1).Interface()
	}
	panic(fmt.Errorf("not a key/value pair: %#v", v))
}

// String concatenates the elements of s formatted with fmt.Sprint.
func String(s any) string {
	var sb strings.Builder
	DoAll(func(v any) { sb.WriteString(fmt.Sprint(v)) }, s)
	return sb.String()
}

// DoAll drives s to the end, calling sideEffect on every element when it is
// not nil.
func DoAll(sideEffect func(any), s any) {
	it := Iter(s)
	for {
		step := it.Next()
		if step.Done {
			return
		}
		if sideEffect != nil {
			sideEffect(step.Value)
		}
	}
}

// Count is the length of a slice, array or map, and the number of elements
// pulled for anything else.
func Count(s any) int {
	if s == nil {
		return 0
	}
	switch rv := reflect.ValueOf(s); rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	}
	n := 0
	DoAll(func(any) { n++ }, s)
	return n
}

// IsEmpty pulls at most one element.
func IsEmpty(s any) bool {
	return Iter(s).Next().Done
}

// Every reports whether pred holds for the elements of seqs taken in
// lock-step. It stops at the first failure or when any input ends.
func Every(pred any, seqs ...any) bool {
	return all(fn.From(pred), seqs)
}

// Some reports whether pred holds for any lock-step tuple of seqs.
func Some(pred any, seqs ...any) bool {
	return !all(fn.Complement(pred), seqs)
}

func all(pred *fn.Function, seqs []any) bool {
	cursors := lo.Map(seqs, func(s any, _ int) Iterator { return Iter(s) })
	for {
		args, ok := pullAll(cursors)
		if !ok {
			return true
		}
		if !fn.Truthy(pred.Call(args...)) {
			return false
		}
	}
}

// Compare reports whether rel holds between every pair of consecutive
// elements of s.
func Compare(rel any, s any) bool {
	holds := fn.From(rel)
	it := Iter(s)
	left := it.Next()
	if left.Done {
		return true
	}
	prev := left.Value
	for {
		step := it.Next()
		if step.Done {
			return true
		}
		if !fn.Truthy(holds.Call(prev, step.Value)) {
			return false
		}
		prev = step.Value
	}
}

// Accumulate threads an accumulator through s. f returns the next
// accumulator and a side output, and the side outputs are collected in order.
func Accumulate(f func(acc, x any) (next any, out any), seed any, s any) (any, []any) {
	acc := seed
	outs := []any{}
	DoAll(func(v any) {
		var out any
		acc, out = f(acc, v)
		outs = append(outs, out)
	}, s)
	return acc, outs
}

// All adapts s to a range-over-func iterator.
func All(s any) iter.Seq[any] {
	source := From(s)
	return func(yield func(any) bool) {
		it := source.Iterator()
		for {
			step := it.Next()
			if step.Done || !yield(step.Value) {
				return
			}
		}
	}
}
