package view

import "github.com/ib-77/over/pkg/over"

// Vec is an owned, growable buffer of T.
//
// Its Deref view is a slice over the same backing array, so element writes made
// through the view land in the Vec. Growing the slice through DerefMut is
// allowed too since the pointer refers to the Vec's own slice header.
type Vec[T any] struct {
	items []T
}

var (
	_ over.Deref[[]int]    = (*Vec[int])(nil)
	_ over.DerefMut[[]int] = (*Vec[int])(nil)
)

func NewVec[T any](items ...T) *Vec[T] {
	v := &Vec[T]{items: make([]T, 0, len(items))}
	v.items = append(v.items, items...)
	return v
}

func (v *Vec[T]) Push(items ...T) {
	v.items = append(v.items, items...)
}

func (v *Vec[T]) Len() int {
	return len(v.items)
}

func (v *Vec[T]) Deref() []T {
	return v.items
}

func (v *Vec[T]) DerefMut() *[]T {
	return &v.items
}
