package solo

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[V, E any](input V) outcome.Result[V, E] {
	return outcome.Success[V, E](input)
}

func Fail[V, E any](err E) outcome.Result[V, E] {
	return outcome.Fail[V, E](err)
}

// Switch moves from Result[In] to Result[Out]: on success it delegates
// entirely to onSuccess, on failure it forwards the original error
// untouched. This is the primitive composition operator; Map is built on
// top of it.
func Switch[In, Out, E any](input outcome.Result[In, E],
	onSuccess func(r In) outcome.Result[Out, E]) outcome.Result[Out, E] {

	if v, ok := input.Value(); ok {
		return onSuccess(v)
	}
	return outcome.FailFrom[Out](input)
}

// Map transforms the successful value, preserving any failure unchanged.
func Map[In, Out, E any](input outcome.Result[In, E],
	onSuccess func(r In) Out) outcome.Result[Out, E] {

	return Switch(input, func(v In) outcome.Result[Out, E] {
		return Succeed[Out, E](onSuccess(v))
	})
}

// SwitchErr is the error-channel dual of Switch: on failure it delegates to
// onFailure, on success it forwards the original value untouched.
func SwitchErr[V, E, E2 any](input outcome.Result[V, E],
	onFailure func(err E) outcome.Result[V, E2]) outcome.Result[V, E2] {

	if err, failed := input.Err(); failed {
		return onFailure(err)
	}
	return outcome.SuccessFrom[E2](input)
}

// MapErr transforms the failure payload, preserving success unchanged.
func MapErr[V, E, E2 any](input outcome.Result[V, E],
	onFailure func(err E) E2) outcome.Result[V, E2] {

	return SwitchErr(input, func(err E) outcome.Result[V, E2] {
		return Fail[V, E2](onFailure(err))
	})
}

func Validate[V, E any](input V,
	validate func(in V) (valid bool, err E)) outcome.Result[V, E] {
	return AndValidate(Succeed[V, E](input), validate)
}

func AndValidate[V, E any](input outcome.Result[V, E],
	validate func(in V) (valid bool, err E)) outcome.Result[V, E] {

	if v, ok := input.Value(); ok {
		if valid, err := validate(v); !valid {
			return Fail[V, E](err)
		}
	}
	return input
}

// FailOnErr turns a success into a failure when maybeErr reports one;
// existing failures pass through untouched.
func FailOnErr[V, E any](input outcome.Result[V, E],
	maybeErr func(in V) (E, bool)) outcome.Result[V, E] {

	if v, ok := input.Value(); ok {
		if err, failed := maybeErr(v); failed {
			return Fail[V, E](err)
		}
	}
	return input
}

// Tee triggers a side effect on success without changing the result.
func Tee[V, E any](input outcome.Result[V, E],
	onSuccess func(r V)) outcome.Result[V, E] {

	if v, ok := input.Value(); ok {
		onSuccess(v)
	}
	return input
}

// DoubleTee triggers one of the two side effects without changing the
// result.
func DoubleTee[V, E any](input outcome.Result[V, E],
	onSuccess func(r V),
	onFailure func(err E)) outcome.Result[V, E] {

	if v, ok := input.Value(); ok {
		onSuccess(v)
	} else if err, failed := input.Err(); failed {
		onFailure(err)
	}
	return input
}

// Finally reduces a result to a concrete value via the two handlers.
func Finally[In, Out, E any](input outcome.Result[In, E],
	onSuccess func(r In) Out,
	onFailure func(err E) Out) Out {

	return outcome.Analyze(input, onSuccess, onFailure)
}
