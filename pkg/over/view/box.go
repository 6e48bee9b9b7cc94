package view

import "github.com/ib-77/over/pkg/over"

// Box owns a single value of type T.
type Box[T any] struct {
	value T
}

var (
	_ over.Deref[int]    = (*Box[int])(nil)
	_ over.DerefMut[int] = (*Box[int])(nil)
)

func NewBox[T any](v T) *Box[T] {
	return &Box[T]{value: v}
}

// Deref returns a copy of the boxed value
func (b *Box[T]) Deref() T {
	return b.value
}

// DerefMut returns a pointer into the box
func (b *Box[T]) DerefMut() *T {
	return &b.value
}

// Unbox returns the boxed value
func (b *Box[T]) Unbox() T {
	return b.value
}
