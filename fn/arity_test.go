package fn_test

import (
	"testing"

	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func add3(a, b, c int) int { return a + b + c }

func list3(a, b, c any) any { return []any{a, b, c} }

func asFn(t *testing.T, v any) *fn.Function {
	t.Helper()
	f, ok := v.(*fn.Function)
	require.Truef(t, ok, "expected *fn.Function, got %T", v)
	return f
}

func TestArity(t *testing.T) {
	variadic := fn.From(func(args ...any) any { return args })

	wrapped := fn.Arity(3, variadic)
	assert.Equal(t, 3, wrapped.Arity())
	// every argument is forwarded regardless of the declared arity
	assert.Equal(t, []any{1, 2, 3, 4, 5}, wrapped.Call(1, 2, 3, 4, 5))
	assert.Equal(t, []any{1}, wrapped.Call(1))

	// identity fast path
	assert.Same(t, wrapped, fn.Arity(3, wrapped))
	assert.Equal(t, 0, fn.Arity(-1, wrapped).Arity())
}

func TestCurry_CollectsArguments(t *testing.T) {
	curried := fn.Curry(add3)
	assert.True(t, fn.IsCurried(curried))
	assert.Equal(t, 3, curried.Arity())

	assert.Equal(t, 6, asFn(t, asFn(t, curried.Call(1)).Call(2)).Call(3))
	assert.Equal(t, 6, asFn(t, curried.Call(1, 2)).Call(3))
	assert.Equal(t, 6, asFn(t, curried.Call(1)).Call(2, 3))
	assert.Equal(t, 6, curried.Call(1, 2, 3))

	partial := asFn(t, curried.Call(1))
	assert.Equal(t, 2, partial.Arity())
	assert.True(t, fn.IsCurried(partial))
}

func TestCurry_ZeroArgsReturnsItself(t *testing.T) {
	curried := fn.Curry(add3)
	assert.Same(t, curried, curried.Call())

	partial := asFn(t, curried.Call(1))
	assert.Same(t, partial, partial.Call())
	assert.Equal(t, 6, asFn(t, partial.Call()).Call(2, 3))
}

func TestCurry_PartialsAreIndependent(t *testing.T) {
	curried := fn.Curry(list3)
	one := asFn(t, curried.Call(1))
	a := asFn(t, one.Call("a"))
	b := asFn(t, one.Call("b"))
	assert.Equal(t, []any{1, "a", "x"}, a.Call("x"))
	assert.Equal(t, []any{1, "b", "y"}, b.Call("y"))
}

func TestCurry_ExtraArgumentsAreForwarded(t *testing.T) {
	curried := fn.Curry(func(args ...any) any { return len(args) }, 2)
	assert.Equal(t, 4, curried.Call(1, 2, 3, 4))
	assert.Equal(t, 3, asFn(t, curried.Call(1)).Call(2, 3))
}

func TestCurry_RecurryUsesOriginal(t *testing.T) {
	original := fn.From(add3)
	curried := fn.Curry(original)
	assert.Same(t, original, fn.Uncurry(curried))

	recurried := fn.Curry(curried)
	assert.Same(t, original, fn.Uncurry(recurried))
	assert.Equal(t, 3, recurried.Arity())
	assert.Equal(t, 6, asFn(t, recurried.Call(1)).Call(2, 3))

	assert.Same(t, original, fn.Uncurry(original))
	assert.False(t, fn.IsCurried(original))
}

func TestCurry_LowArityIsNoop(t *testing.T) {
	unary := fn.From(func(a any) any { return a })
	assert.Same(t, unary, fn.Curry(unary))
	assert.False(t, fn.IsCurried(fn.Curry(unary)))

	nullary := fn.From(func() any { return 1 })
	assert.Same(t, nullary, fn.Curry(nullary))

	// an explicit arity overrides the declared one
	f := fn.From(add3)
	assert.Same(t, f, fn.Curry(f, 1))
}

func TestCurryRight(t *testing.T) {
	curried := fn.CurryRight(list3)
	assert.True(t, fn.IsCurried(curried))

	assert.Equal(t, []any{"c", "b", "a"}, asFn(t, asFn(t, curried.Call("a")).Call("b")).Call("c"))
	assert.Equal(t, []any{"c", "a", "b"}, asFn(t, curried.Call("a", "b")).Call("c"))
	assert.Equal(t, []any{"b", "c", "a"}, asFn(t, curried.Call("a")).Call("b", "c"))
	assert.Equal(t, []any{"a", "b", "c"}, curried.Call("a", "b", "c"))

	sub := fn.CurryRight(func(a, b int) int { return a - b })
	assert.Equal(t, 9, asFn(t, sub.Call(1)).Call(10))
}
