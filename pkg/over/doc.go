// Package over provides generic helpers that let you chain off of any value.
//
// Each helper takes a value and a callback, invokes the callback exactly once
// with the value, and hands back whatever the callback returned:
// - Over: pass the value itself, return the callback result
// - OverRef: pass a pointer for read-only use, return the callback result
// - OverMut: pass a pointer for in-place mutation, return nothing
// - OverDeref: pass the Deref view of the value, return the callback result
// - OverDerefMut: pass the mutable DerefMut view, return nothing
//
// OverDeref and OverDerefMut are only available for types that implement
// [Deref] and [DerefMut] respectively; using them with any other type is a
// compile error, not a runtime failure.
//
// Supporting helpers:
// - OverTry: pass-through for callbacks returning (R, error)
// - OverMutWith/OverDerefMutWith: mutable variants that also return a result
// - Tap: run a side effect and return the value unchanged
// - Unit/Effect: explicit "no value" result for mutating callbacks
// - Option: present-or-absent value, handy as a wrapping callback
//
// The helpers never inspect, wrap, recover or log what the callback produces.
// Errors come back exactly as returned and panics unwind through the helper as
// if the callback had been called directly.
//
//	n := 5
//	over.Over(n, func(n int) int { return n * 2 }) // 10
//	over.OverMut(&n, func(n *int) { *n = *n*3 + 1 })  // n == 16
package over
