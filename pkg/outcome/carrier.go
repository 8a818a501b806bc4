package outcome

type option[T any] struct {
	val T
	ok  bool
}

func some[T any](v T) option[T] {
	return option[T]{val: v, ok: true}
}

func none[T any]() option[T] {
	return option[T]{}
}

// Analyze is the typed fold over any Carrier: it invokes exactly one of the
// handlers via the carrier's primitive and restores the handler's static
// return type at this single boundary.
func Analyze[Out, V, E any](c Carrier[V, E], onSuccess func(v V) Out, onFailure func(err E) Out) Out {
	out, _ := c.Analyze(
		func(v V) any { return onSuccess(v) },
		func(err E) any { return onFailure(err) },
	).(Out)
	return out
}

// ValueOf returns the success payload of any conforming carrier. Derived
// entirely from the Analyze primitive.
func ValueOf[V, E any](c Carrier[V, E]) (V, bool) {
	o := Analyze(c,
		some[V],
		func(E) option[V] { return none[V]() })
	return o.val, o.ok
}

// ErrOf returns the failure payload of any conforming carrier. Derived
// entirely from the Analyze primitive.
func ErrOf[V, E any](c Carrier[V, E]) (E, bool) {
	o := Analyze(c,
		func(V) option[E] { return none[E]() },
		some[E])
	return o.val, o.ok
}

// From re-canonicalizes any conforming carrier into a Result so it can
// enter the combinator algebra. A Result passes through unchanged, stamp
// included; foreign carriers are rebuilt from their active payload.
func From[V, E any](c Carrier[V, E]) Result[V, E] {
	if r, ok := c.(Result[V, E]); ok {
		return r
	}
	return Analyze(c, Success[V, E], Fail[V, E])
}
