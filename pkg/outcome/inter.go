package outcome

// Carrier is the minimal capability a success/failure container must
// provide. Analyze must invoke exactly one of the two handlers, exactly
// once, with the payload of the active variant, and return the handler's
// result unmodified. Conforming implementations perform no effects beyond
// what the supplied handlers do.
//
// A generic method cannot introduce its own return type parameter, so the
// interface routes the handler results through any; the typed fold over a
// Carrier is the package-level Analyze function.
type Carrier[V, E any] interface {
	Analyze(onSuccess func(v V) any, onFailure func(err E) any) any
}

// Convertible is implemented by error types that can absorb an arbitrary
// raised value into their own representation. It is required only by
// solo.Try, which hands FromAny either the non-nil error returned by the
// guarded function or the value it panicked with.
//
// FromAny is called on the zero value of E, so it must not depend on
// receiver state.
type Convertible[E any] interface {
	FromAny(v any) E
}
