package fn_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/loda_ive_go/fn"
	"github.com/stretchr/testify/assert"
)

type point struct{ X, Y int }

type approx float64

func (a approx) Equals(other any) bool {
	o, ok := other.(approx)
	return ok && math.Abs(float64(a-o)) < 0.01
}

type holder struct{ V any }

func TestIs(t *testing.T) {
	assert.True(t, fn.Is(nil, nil))
	assert.False(t, fn.Is(nil, 0))
	assert.True(t, fn.Is(1, 1))
	assert.False(t, fn.Is(1, int64(1)))
	assert.True(t, fn.Is(math.NaN(), math.NaN()))
	assert.True(t, fn.Is(0.0, math.Copysign(0, -1)))
	assert.True(t, fn.Is(point{1, 2}, point{1, 2}))
	assert.True(t, fn.Is(approx(1.001), approx(1.002)))
	assert.False(t, fn.Is(approx(1), approx(2)))
	assert.True(t, fn.Is([]int{1, 2}, []int{1, 2}))
	assert.False(t, fn.Is([]int{1, 2}, []int{2, 1}))
	// comparable type holding a non-comparable value
	assert.True(t, fn.Is(holder{[]int{1}}, holder{[]int{1}}))
}

func TestEq(t *testing.T) {
	isOne := asFn(t, fn.Eq.Call(1))
	assert.Equal(t, true, isOne.Call(1))
	assert.Equal(t, false, isOne.Call(2))
	assert.Equal(t, true, fn.Eq.Call("a", "a"))
}

func TestTruthy(t *testing.T) {
	for _, v := range []any{nil, false, 0, uint8(0), 0.0, math.NaN(), ""} {
		assert.Falsef(t, fn.Truthy(v), "%#v", v)
	}
	for _, v := range []any{true, 1, -1, 0.5, "x", []int{}, struct{}{}} {
		assert.Truef(t, fn.Truthy(v), "%#v", v)
	}
}
