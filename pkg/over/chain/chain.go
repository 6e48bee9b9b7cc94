package chain

import "github.com/ib-77/over/pkg/over"

// Chain holds a value, or the error that stopped the chain
type Chain[T any] struct {
	value T
	err   error
}

// Start creates a new chain from a value
func Start[T any](value T) *Chain[T] {
	return &Chain[T]{value: value}
}

// FromTry creates a new chain from the usual (value, error) pair
func FromTry[T any](value T, err error) *Chain[T] {
	return &Chain[T]{value: value, err: err}
}

// Value returns the held value, the zero value once the chain has failed
func (c *Chain[T]) Value() T {
	if c.err != nil {
		var zero T
		return zero
	}
	return c.value
}

func (c *Chain[T]) Err() error {
	return c.err
}

func (c *Chain[T]) Result() (T, error) {
	return c.Value(), c.err
}

// Then chains a function that transforms T into U
func Then[T, U any](c *Chain[T], f func(T) U) *Chain[U] {
	if c.err != nil {
		return &Chain[U]{err: c.err}
	}
	return &Chain[U]{value: over.Over(c.value, f)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], f func(T) (U, error)) *Chain[U] {
	if c.err != nil {
		return &Chain[U]{err: c.err}
	}
	u, err := over.OverTry(c.value, f)
	return &Chain[U]{value: u, err: err}
}

// Mut mutates the held value in place
func (c *Chain[T]) Mut(f func(*T)) *Chain[T] {
	if c.err == nil {
		over.OverMut(&c.value, f)
	}
	return c
}

// Tap performs a side effect without changing the value
func (c *Chain[T]) Tap(f func(T)) *Chain[T] {
	if c.err == nil {
		over.Tap(c.value, f)
	}
	return c
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onValue func(T) U, onError func(error) U) U {
	if c.err != nil {
		return onError(c.err)
	}
	return over.Over(c.value, onValue)
}
