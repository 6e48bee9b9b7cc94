// Package view contains small owning types that expose a view of their
// contents through over.Deref and over.DerefMut:
// - Box: a single owned value, viewed as the value itself
// - Vec: a growable buffer, viewed as a slice over its own storage
// - Text: an owned string, viewed read-only as a string
//
// Text has no mutable view, so over.OverDerefMut does not accept it.
package view
