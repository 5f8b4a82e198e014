package fn

import (
	"slices"

	"github.com/samber/lo"
)

// Identity returns its first argument.
var Identity = New(1, func(args ...any) any { return argAt(args, 0) })

// Tuple returns its arguments as a slice.
var Tuple = New(0, func(args ...any) any { return slices.Clone(args) })

// Compose threads the result of the last function through the others, right
// to left. The composition declares the arity of the last function, which
// receives all call arguments.
func Compose(fns ...any) *Function {
	switch len(fns) {
	case 0:
		return Identity
	case 1:
		return From(fns[0])
	}
	steps := lo.Map(fns, func(f any, _ int) *Function { return From(f) })
	first := steps[len(steps)-1]
	return Arity(first.arity, func(args ...any) any {
		result := first.call(args...)
		for i := len(steps) - 2; i >= 0; i-- {
			result = steps[i].call(result)
		}
		return result
	})
}

// ComposeRight is Compose with the functions listed in call order.
func ComposeRight(fns ...any) *Function {
	return Compose(lo.Reverse(slices.Clone(fns))...)
}

// Pipe holds args and returns a function of functions: the first one is
// called with args and its result is threaded through the rest, left to right.
//
//	fn.Pipe(1, 2, 3).Call(add3, double) // 12
func Pipe(args ...any) *Function {
	held := slices.Clone(args)
	return New(0, func(fns ...any) any {
		return ComposeRight(fns...).Call(held...)
	})
}

// Partial binds leading arguments of f.
func Partial(f any, args ...any) *Function {
	target := From(f)
	if len(args) == 0 {
		return target
	}
	bound := slices.Clone(args)
	return Arity(target.arity-len(bound), func(more ...any) any {
		return target.call(append(slices.Clone(bound), more...)...)
	})
}

// PartialRight binds trailing arguments of f.
func PartialRight(f any, args ...any) *Function {
	target := From(f)
	if len(args) == 0 {
		return target
	}
	bound := slices.Clone(args)
	return Arity(target.arity-len(bound), func(more ...any) any {
		return target.call(append(slices.Clone(more), bound...)...)
	})
}

// Apply calls f with the elements of argList.
func Apply(f any, argList []any) any {
	return From(f).call(argList...)
}

// Flip calls f with its arguments reversed.
func Flip(f any) *Function {
	target := From(f)
	return Arity(target.arity, func(args ...any) any {
		return target.call(lo.Reverse(slices.Clone(args))...)
	})
}

// Complement negates the truthiness of f's result.
func Complement(f any) *Function {
	target := From(f)
	return Arity(target.arity, func(args ...any) any {
		return !Truthy(target.call(args...))
	})
}

// Juxt calls every function with the same arguments and collects the results.
func Juxt(fns ...any) *Function {
	steps := lo.Map(fns, func(f any, _ int) *Function { return From(f) })
	arity := 0
	if len(steps) > 0 {
		arity = steps[0].arity
	}
	return Arity(arity, func(args ...any) any {
		return lo.Map(steps, func(step *Function, _ int) any { return step.call(args...) })
	})
}

// Knit applies the i-th function to the i-th element of a tuple.
func Knit(fns ...any) *Function {
	steps := lo.Map(fns, func(f any, _ int) *Function { return From(f) })
	return New(1, func(args ...any) any {
		tuple, _ := argAt(args, 0).([]any)
		return lo.Map(steps, func(step *Function, i int) any { return step.call(argAt(tuple, i)) })
	})
}
