package over

// Over passes v to f and returns f's result.
//
// v is handed over by value; callers should not keep using it afterwards when
// V shares backing storage (slices, maps, pointers) that f may retain.
func Over[V, R any](v V, f func(V) R) R {
	return f(v)
}

// OverRef passes a pointer to the caller's value to f and returns f's result.
// f must only read through the pointer and must not keep it after returning.
func OverRef[V, R any](v *V, f func(*V) R) R {
	return f(v)
}

// OverMut passes a pointer to the caller's value to f for in-place mutation.
// The changes made by f are visible through v once OverMut returns.
func OverMut[V any](v *V, f func(*V)) {
	f(v)
}

// OverMutWith is OverMut for callbacks that also produce a result
func OverMutWith[V, R any](v *V, f func(*V) R) R {
	return f(v)
}

// OverTry passes v to a fallible f. The error is returned as is.
func OverTry[V, R any](v V, f func(V) (R, error)) (R, error) {
	return f(v)
}

// Tap runs f for its side effect and returns v unchanged
func Tap[V any](v V, f func(V)) V {
	f(v)
	return v
}
