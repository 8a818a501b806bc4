// Package solo contains single-value, synchronous primitives that operate
// on outcome.Result[V, E]. These functions form the core building blocks
// for error-aware composition without unwinding control flow.
//
// Highlights:
// - Succeed/Fail: construct Result[V, E]
// - Switch/Map: compose or transform the success channel
// - SwitchErr/MapErr: the duals over the error channel
// - Try: call a function (Out, error) and normalize any raised error into
//   the outcome's error type via the Convertible capability
// - Combine: pair two results with left-to-right, first-failure-wins
//   short-circuiting (the right operand is a thunk)
// - Validate/AndValidate/FailOnErr: produce failures from predicates
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
//
// Every combinator is total: it always returns a well-formed result,
// forwards failure payloads unchanged unless an error-mapping combinator
// is used, and never panics on its own behalf.
package solo
