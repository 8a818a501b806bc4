package solo

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Pair carries both success payloads produced by Combine.
type Pair[L, R any] struct {
	First  L
	Second R
}

// Combine evaluates left, then right, with first-failure-wins semantics:
// if left failed, that failure is returned and the right thunk is never
// invoked; if right failed, right's failure is returned; two successes
// produce a success of the pair.
//
// The right operand is a thunk, not a value: short-circuiting must be
// observable, since right may have side effects that must not occur once
// the left side has failed.
func Combine[L, R, E any](left outcome.Result[L, E],
	right func() outcome.Result[R, E]) outcome.Result[Pair[L, R], E] {

	l, ok := left.Value()
	if !ok {
		return outcome.FailFrom[Pair[L, R]](left)
	}

	res := right()
	r, ok := res.Value()
	if !ok {
		return outcome.FailFrom[Pair[L, R]](res)
	}

	return Succeed[Pair[L, R], E](Pair[L, R]{First: l, Second: r})
}
