package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Result is the canonical two-variant container: a success carrying a value
// of type V, or a failure carrying an error of type E. Exactly one variant
// is active; the value is immutable after construction. Each Result carries
// an identity stamp (id + creation time) for provenance; the stamp never
// participates in success/failure semantics.
type Result[V, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	err       E
	isSuccess bool
}

var _ Carrier[int, error] = Result[int, error]{}

func Success[V, E any](v V) Result[V, E] {
	return Result[V, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[V, E any](err E) Result[V, E] {
	return Result[V, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom rewraps a failure under a new value type, forwarding the error
// payload and the identity stamp untouched. Calling it on a success yields
// a zero-error failure; combinators guard against that.
func FailFrom[Out, In, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom rewraps a success under a new error type, forwarding the value
// payload and the identity stamp untouched.
func SuccessFrom[E2, V, E any](from Result[V, E]) Result[V, E2] {
	return Result[V, E2]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Analyze invokes exactly one of the two handlers, exactly once, with the
// payload of the active variant, and returns the handler's result
// unmodified. It is the single observation primitive: every other accessor
// on Result derives from it, and this is the only place the tag is read.
func (r Result[V, E]) Analyze(onSuccess func(v V) any, onFailure func(err E) any) any {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Value returns the success payload if the success variant is active.
func (r Result[V, E]) Value() (V, bool) {
	return ValueOf[V, E](r)
}

// Err returns the error payload if the failure variant is active.
func (r Result[V, E]) Err() (E, bool) {
	return ErrOf[V, E](r)
}

func (r Result[V, E]) IsSuccess() bool {
	return Analyze(r,
		func(V) bool { return true },
		func(E) bool { return false })
}

func (r Result[V, E]) IsFailure() bool {
	return !r.IsSuccess()
}

func (r Result[V, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[V, E]) Id() uuid.UUID {
	return r.id
}
