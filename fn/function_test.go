package fn_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/stretchr/testify/assert"
)

func TestFrom_AnyShapes(t *testing.T) {
	tests := []struct {
		name  string
		f     any
		arity int
		args  []any
		want  any
	}{
		{"variadic", func(args ...any) any { return len(args) }, 0, []any{1, 2, 3}, 3},
		{"nullary", func() any { return "x" }, 0, nil, "x"},
		{"unary", func(a any) any { return a }, 1, []any{7}, 7},
		{"binary", func(a, b any) any { return []any{a, b} }, 2, []any{1}, []any{1, nil}},
		{"ternary", func(a, b, c any) any { return c }, 3, []any{1, 2, 3}, 3},
		{"predicate", func(a any) bool { return a == nil }, 1, nil, true},
		{"relation", func(a, b any) bool { return a == b }, 2, []any{1, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fn.From(tt.f)
			assert.Equal(t, tt.arity, f.Arity())
			assert.Equal(t, tt.want, f.Call(tt.args...))
		})
	}
}

func TestFrom_ReflectedFuncs(t *testing.T) {
	add := fn.From(func(a, b int) int { return a + b })
	assert.Equal(t, 2, add.Arity())
	assert.Equal(t, 5, add.Call(2, 3))
	// missing arguments become zero values, extra ones are dropped
	assert.Equal(t, 2, add.Call(2))
	assert.Equal(t, 5, add.Call(2, 3, 4))
	// numeric arguments are converted
	assert.Equal(t, 5, add.Call(int64(2), 3.0))

	atoi := fn.From(strconv.Atoi)
	assert.Equal(t, 42, atoi.Call("42"))
	err, ok := atoi.Call("x").(error)
	assert.True(t, ok)
	assert.Error(t, err)

	sum := fn.From(func(base int, rest ...int) int {
		for _, r := range rest {
			base += r
		}
		return base
	})
	assert.Equal(t, 1, sum.Arity())
	assert.Equal(t, 10, sum.Call(1, 2, 3, 4))

	pair := fn.From(func(s string) (string, int) { return s, len(s) })
	assert.Equal(t, []any{"ab", 2}, pair.Call("ab"))

	assert.Nil(t, fn.From(func() {}).Call())
}

func TestFrom_Panics(t *testing.T) {
	assert.PanicsWithError(t, "not a function: int", func() { fn.From(1) })
	assert.Panics(t, func() { fn.From((func(any) any)(nil)) })

	strlen := fn.From(func(s string) int { return len(s) })
	assert.Panics(t, func() { strlen.Call(1) })
	defer func() {
		err, _ := recover().(error)
		assert.True(t, errors.Is(err, fn.ErrArgType))
	}()
	strlen.Call(1)
}

func TestFrom_Idempotent(t *testing.T) {
	f := fn.New(2, func(args ...any) any { return nil })
	assert.Same(t, f, fn.From(f))
	assert.True(t, fn.IsFunction(f))
	assert.True(t, fn.IsFunction(strconv.Itoa))
	assert.False(t, fn.IsFunction("nope"))
	assert.False(t, fn.IsFunction((*fn.Function)(nil)))
}

func TestNew_ClampsArity(t *testing.T) {
	assert.Equal(t, 0, fn.New(-3, func(args ...any) any { return nil }).Arity())
	assert.Panics(t, func() { fn.New(1, nil) })
}

func TestCall(t *testing.T) {
	assert.Equal(t, "7", fn.Call(strconv.Itoa, 7))
}
