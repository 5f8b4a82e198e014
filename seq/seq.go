package seq

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Step is the result of advancing a cursor: either Done or a Value.
type Step struct {
	Value any
	Done  bool
}

var doneStep = Step{Done: true}

// Iterator is a pull-based cursor.
type Iterator interface {
	Next() Step
}

// Iterable produces cursors on demand. Whether two cursors of the same
// Iterable are independent depends on how it was built: everything in this
// package built from re-iterable inputs is re-iterable.
type Iterable interface {
	Iterator() Iterator
}

type IteratorFunc func() Step

func (f IteratorFunc) Next() Step {
	return f()
}

type IterableFunc func() Iterator

func (f IterableFunc) Iterator() Iterator {
	return f()
}

// latch keeps returning Done once the wrapped cursor has returned it.
type latch struct {
	next func() Step
}

func cursor(next func() Step) Iterator {
	return &latch{next: next}
}

func (l *latch) Next() Step {
	if l.next == nil {
		return doneStep
	}
	s := l.next()
	if s.Done {
		l.next = nil
		return doneStep
	}
	return s
}

// Empty is the shared empty sequence.
var Empty Iterable = emptyIterable{}

type emptyIterable struct{}

func (emptyIterable) Iterator() Iterator {
	return emptyIterator{}
}

type emptyIterator struct{}

func (emptyIterator) Next() Step {
	return doneStep
}

// single-pass view over a cursor that already exists
type onceIterable struct {
	it Iterator
}

func (o onceIterable) Iterator() Iterator {
	return o.it
}

// From coerces v into an Iterable.
//
//   - nil is Empty.
//   - an Iterable is returned unchanged.
//   - an Iterator, or a func() Step, becomes a single-pass Iterable: every
//     call to Iterator returns that same cursor.
//   - a func() Iterator is a cursor factory.
//   - an empty slice, array or map is Empty.
//   - a slice or array is walked by index.
//   - a map yields []any{key, value} pairs in sorted key order.
//   - anything else, strings included, is a sequence of that one value.
func From(v any) Iterable {
	switch s := v.(type) {
	case nil:
		return Empty
	case Iterable:
		return s
	case Iterator:
		return onceIterable{it: cursor(s.Next)}
	case func() Step:
		return onceIterable{it: cursor(s)}
	case func() Iterator:
		return IterableFunc(s)
	case []any:
		if len(s) == 0 {
			return Empty
		}
		return indexed{n: len(s), at: func(i int) any { return s[i] }}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return Empty
		}
		return indexed{n: rv.Len(), at: func(i int) any { return rv.Index(i).Interface() }}
	case reflect.Map:
		if rv.Len() == 0 {
			return Empty
		}
		return keyed(rv)
	}
	return Of(v)
}

// Iter returns a fresh cursor over From(v).
func Iter(v any) Iterator {
	return From(v).Iterator()
}

// IsSequence reports whether v is an Iterable, an Iterator, a slice or an
// array. Strings and maps are not.
func IsSequence(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case Iterable, Iterator, []any:
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Of is the sequence of the given values.
func Of(values ...any) Iterable {
	return From(slices.Clone(values))
}

type indexed struct {
	n  int
	at func(int) any
}

func (x indexed) Iterator() Iterator {
	i := 0
	return cursor(func() Step {
		if i >= x.n {
			return doneStep
		}
		i++
		return Step{Value: x.at(i - 1)}
	})
}

func keyed(rv reflect.Value) Iterable {
	return IterableFunc(func() Iterator {
		keys := rv.MapKeys()
		slices.SortFunc(keys, compareKeys)
		i := 0
		return cursor(func() Step {
			if i >= len(keys) {
				return doneStep
			}
			k := keys[i]
			i++
			return Step{Value: []any{k.Interface(), rv.MapIndex(k).Interface()}}
		})
	})
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a, b = a.Elem(), b.Elem()
	}
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		}
	}
	return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}
