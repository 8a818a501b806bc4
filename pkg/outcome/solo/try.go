package solo

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Try calls a function (Out, error) against the success value and converts
// any raised error into the outcome's own error type via the Convertible
// capability. Both raise mechanisms are bridged here: a non-nil returned
// error and a panic inside exec. Original failures are forwarded untouched
// and exec is never called for them.
//
// This is the module's only boundary to exception-style code; everywhere
// else failure is represented purely as a value.
func Try[In, Out any, E outcome.Convertible[E]](input outcome.Result[In, E],
	exec func(r In) (Out, error)) outcome.Result[Out, E] {

	if input.IsFailure() {
		return outcome.FailFrom[Out](input)
	}

	v, _ := input.Value()
	out, raised := catch(func() (Out, error) { return exec(v) })
	if raised != nil {
		var conv E
		return Fail[Out](conv.FromAny(raised))
	}
	return Succeed[Out, E](out)
}

// catch is the only recover point in the module. It reports the raised
// value: the non-nil error exec returned, or whatever exec panicked with.
func catch[Out any](exec func() (Out, error)) (out Out, raised any) {
	defer func() {
		if r := recover(); r != nil {
			var zero Out
			out, raised = zero, r
		}
	}()

	var err error
	if out, err = exec(); err != nil {
		raised = err
	}
	return out, raised
}
