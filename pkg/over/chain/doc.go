// Package chain provides a fluent wrapper that threads one value through the
// over helpers, stopping at the first error.
//
// Key operations:
// - Start/FromTry: begin a chain from a value or a (value, error) pair
// - Then: transform the value (T -> U) via over.Over
// - ThenTry: call a function (U, error); an error halts the chain
// - Mut: mutate the held value in place via over.OverMut
// - Tap: run a side effect without changing the value
// - Finally: collapse the chain into a final value via handlers
//
// Once a chain holds an error no further callbacks run; the error is carried
// to Result/Finally untouched.
package chain
