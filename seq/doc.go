// Package seq implements lazy, pull-based sequences.
//
// An Iterator hands out one Step at a time and an Iterable hands out
// Iterators. From turns slices, arrays, maps, cursor factories and plain
// values into Iterables, and the combinators in this package (Map, Filter,
// Take, Concat, Flatten, Memo) build new Iterables without pulling anything
// until a cursor is advanced. The reducers (Reduce, Array, Object, Count,
// Every, ...) drive a cursor to the end.
//
// Cursors built here keep returning a Done step once they have returned one.
package seq
