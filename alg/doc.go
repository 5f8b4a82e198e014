// Package alg dispatches Map, Unit, Chain and Ap over every kind of
// context the module knows about: slices, maybe.Maybe, *promise.Promise,
// seq sequences, custom types implementing the capability interfaces, and
// plain values.
//
// Classify decides the Kind of a value once, and every operation switches
// on it. Custom types opt in by implementing Mapper, Pointed, Aper, Chainer
// or Thenable.
//
//	alg.Map(inc, []int{1, 2})                  // []any{2, 3}
//	alg.Map(inc, maybe.Of(1))                  // maybe.Of(2)
//	alg.ArrayM([]any{maybe.Of(1), maybe.None}) // maybe.None
package alg
