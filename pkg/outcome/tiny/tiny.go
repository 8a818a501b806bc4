package tiny

import (
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

type Chain[V, E any] struct {
	res outcome.Result[V, E]
}

func Start[V, E any](r outcome.Result[V, E]) Chain[V, E] {
	return Chain[V, E]{res: r}
}

func FromValue[V, E any](v V) Chain[V, E] {
	return Start(outcome.Success[V, E](v))
}

func (c Chain[V, E]) Result() outcome.Result[V, E] {
	return c.res
}

// Then composes functions that already return outcome.Result
func (c Chain[V, E]) Then(onSuccess func(v V) outcome.Result[V, E]) Chain[V, E] {
	if c.res.IsFailure() {
		return c
	}
	v, _ := c.res.Value()
	return Chain[V, E]{res: onSuccess(v)}
}

// Map transforms the successful value to a new value
func (c Chain[V, E]) Map(onSuccess func(v V) V) Chain[V, E] {
	return Chain[V, E]{res: solo.Map(c.res, onSuccess)}
}

// MapErr transforms the error payload, leaving success untouched
func (c Chain[V, E]) MapErr(onFailure func(err E) E) Chain[V, E] {
	return Chain[V, E]{res: solo.MapErr(c.res, onFailure)}
}

// Ensure triggers side effects for success/failure without changing the
// result
func (c Chain[V, E]) Ensure(onSuccess func(v V), onFailure func(err E)) Chain[V, E] {
	if err, failed := c.res.Err(); failed {
		if onFailure != nil {
			onFailure(err)
		}
		return c
	}

	if onSuccess != nil {
		v, _ := c.res.Value()
		onSuccess(v)
	}
	return c
}

func (c Chain[V, E]) Or(alternative Chain[V, E]) Chain[V, E] {
	return c.or(alternative)
}

// or returns the first successful candidate; if none succeeded, the first
// failure wins.
func (c Chain[V, E]) or(chains ...Chain[V, E]) Chain[V, E] {
	candidates := make([]Chain[V, E], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	for _, ch := range candidates {
		if ch.res.IsSuccess() {
			return ch
		}
	}
	return candidates[0]
}

func (c Chain[V, E]) And(required Chain[V, E]) Chain[V, E] {
	return c.and(required)
}

// and returns the first failure among the candidates; if all succeeded,
// the last success wins.
func (c Chain[V, E]) and(chains ...Chain[V, E]) Chain[V, E] {
	candidates := make([]Chain[V, E], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	last := c
	for _, ch := range candidates {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// ThenTry composes functions that return (V, error), normalizing raised
// errors through the Convertible capability. Package-level because the
// capability bound cannot attach to a method.
func ThenTry[V any, E outcome.Convertible[E]](c Chain[V, E],
	exec func(v V) (V, error)) Chain[V, E] {
	return Chain[V, E]{res: solo.Try(c.res, exec)}
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func Finally[V, Out, E any](c Chain[V, E],
	onSuccess func(v V) Out,
	onFailure func(err E) Out) Out {
	return solo.Finally(c.res, onSuccess, onFailure)
}
