package over

// Deref is implemented by types that can be viewed, read-only, as a W.
//
// The view is expected to share identity with the receiver, e.g. a slice over
// the receiver's own storage rather than a fresh copy.
type Deref[W any] interface {
	Deref() W
}

// DerefMut is implemented by types that expose a mutable view of type W.
// Writes through the returned pointer must be visible through the receiver.
type DerefMut[W any] interface {
	DerefMut() *W
}

// OverDeref obtains the read-only view of v and passes it to f.
func OverDeref[V Deref[W], W, R any](v V, f func(W) R) R {
	return f(v.Deref())
}

// OverDerefMut obtains the mutable view of v and passes it to f for in-place
// mutation.
func OverDerefMut[V DerefMut[W], W any](v V, f func(*W)) {
	f(v.DerefMut())
}

// OverDerefMutWith is OverDerefMut for callbacks that also produce a result
func OverDerefMutWith[V DerefMut[W], W, R any](v V, f func(*W) R) R {
	return f(v.DerefMut())
}
