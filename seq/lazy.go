package seq

import (
	"sync"

	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/samber/lo"
)

func fromAll(seqs []any) []Iterable {
	return lo.Map(seqs, func(s any, _ int) Iterable { return From(s) })
}

// Map applies f across seqs in lock-step: the i-th element is f applied to
// the i-th element of every input. It ends as soon as any input ends.
// Nothing is pulled and f is not called until a cursor is advanced.
func Map(f any, seqs ...any) Iterable {
	mapper := fn.From(f)
	sources := fromAll(seqs)
	return IterableFunc(func() Iterator {
		cursors := lo.Map(sources, func(s Iterable, _ int) Iterator { return s.Iterator() })
		return cursor(func() Step {
			args, ok := pullAll(cursors)
			if !ok {
				return doneStep
			}
			return Step{Value: mapper.Call(args...)}
		})
	})
}

// pullAll advances every cursor once. It reports false when there are no
// cursors or any of them is done.
func pullAll(cursors []Iterator) ([]any, bool) {
	if len(cursors) == 0 {
		return nil, false
	}
	args := make([]any, len(cursors))
	for i, c := range cursors {
		s := c.Next()
		if s.Done {
			return nil, false
		}
		args[i] = s.Value
	}
	return args, true
}

// Zip yields []any tuples of the elements of seqs at the same position.
func Zip(seqs ...any) Iterable {
	return Map(fn.Tuple, seqs...)
}

// MapVal maps f over the values of a sequence of []any{key, value} pairs.
func MapVal(f any, s any) Iterable {
	return Map(fn.Knit(fn.Identity, f), s)
}

// Index yields []any{i, value} pairs.
func Index(s any) Iterable {
	source := From(s)
	return IterableFunc(func() Iterator {
		it := source.Iterator()
		i := 0
		return cursor(func() Step {
			step := it.Next()
			if step.Done {
				return doneStep
			}
			i++
			return Step{Value: []any{i - 1, step.Value}}
		})
	})
}

func Filter(pred any, s any) Iterable {
	keep := fn.From(pred)
	source := From(s)
	return IterableFunc(func() Iterator {
		it := source.Iterator()
		return cursor(func() Step {
			for {
				step := it.Next()
				if step.Done || fn.Truthy(keep.Call(step.Value)) {
					return step
				}
			}
		})
	})
}

// Take yields at most n elements and pulls no more than that from s.
func Take(n int, s any) Iterable {
	source := From(s)
	return IterableFunc(func() Iterator {
		it := source.Iterator()
		taken := 0
		return cursor(func() Step {
			if taken >= n {
				return doneStep
			}
			taken++
			return it.Next()
		})
	})
}

// Concat joins a sequence of sequences one level deep.
func Concat(s any) Iterable {
	source := From(s)
	return IterableFunc(func() Iterator {
		outer := source.Iterator()
		var inner Iterator
		return cursor(func() Step {
			for {
				if inner != nil {
					if step := inner.Next(); !step.Done {
						return step
					}
					inner = nil
				}
				step := outer.Next()
				if step.Done {
					return doneStep
				}
				inner = Iter(step.Value)
			}
		})
	})
}

// Flatten yields the leaves of arbitrarily nested sequences depth first.
// Nesting is walked with an explicit stack of cursors, not recursion.
func Flatten(s any) Iterable {
	source := From(s)
	return IterableFunc(func() Iterator {
		stack := []Iterator{source.Iterator()}
		return cursor(func() Step {
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				step := top.Next()
				switch {
				case step.Done:
					stack = stack[:len(stack)-1]
				case IsSequence(step.Value):
					stack = append(stack, Iter(step.Value))
				default:
					return step
				}
			}
			return doneStep
		})
	})
}

// Expand unfolds a sequence from seed. Each step calls f with the current
// seed and either stops when ok is false or yields value and continues from
// next.
func Expand(f func(seed any) (next any, value any, ok bool), seed any) Iterable {
	return IterableFunc(func() Iterator {
		current := seed
		return cursor(func() Step {
			next, value, ok := f(current)
			if !ok {
				return doneStep
			}
			current = next
			return Step{Value: value}
		})
	})
}

type memoIterable struct {
	mu      sync.Mutex
	source  Iterable
	it      Iterator
	cache   []any
	drained bool
}

// Memo caches the elements of s as they are first pulled, so that later
// cursors replay them instead of pulling s again. This makes a single-pass
// source re-iterable. Memo of a memoized sequence returns it unchanged.
func Memo(s any) Iterable {
	if m, ok := s.(*memoIterable); ok {
		return m
	}
	return &memoIterable{source: From(s)}
}

func (m *memoIterable) Iterator() Iterator {
	i := 0
	return cursor(func() Step {
		v, ok := m.at(i)
		if !ok {
			return doneStep
		}
		i++
		return Step{Value: v}
	})
}

func (m *memoIterable) at(i int) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i >= len(m.cache) {
		if m.drained {
			return nil, false
		}
		if m.it == nil {
			m.it = m.source.Iterator()
		}
		step := m.it.Next()
		if step.Done {
			m.drained = true
			m.it = nil
			return nil, false
		}
		m.cache = append(m.cache, step.Value)
	}
	return m.cache[i], true
}
