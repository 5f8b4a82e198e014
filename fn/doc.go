// Package fn provides any-typed function values and the combinators built on
// them.
//
// A Function carries a declared arity next to its Go func. The arity is what
// Curry counts arguments against and what Compose and Partial preserve, so a
// pipeline built from these combinators keeps reporting the right number of
// parameters even though every Function accepts any number of arguments.
//
//	add3 := fn.Curry(func(a, b, c int) int { return a + b + c })
//	add3.Call(1).(*fn.Function).Call(2, 3) // 6
//
// Any Go func can be turned into a Function with From. Common any-typed
// shapes are wrapped directly and other funcs are called through reflection.
//
// Memo caches results by argument list and is only meant for pure
// functions: a cached call never runs the function again.
package fn
