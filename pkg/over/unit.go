package over

// Unit is a type not containing any value, the explicit "nothing" returned by
// mutating callbacks.
type Unit struct{}

// Effect adapts a mutating callback into one returning Unit, so that it can
// be used wherever a result-returning callback is expected.
func Effect[V any](f func(*V)) func(*V) Unit {
	return func(v *V) Unit {
		f(v)
		return Unit{}
	}
}
