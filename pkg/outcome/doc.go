// Package outcome defines the core success/failure container Result[V, E]
// and the capability contracts around it.
//
// Highlights:
// - Success/Fail: construct a Result
// - Analyze: the single observation primitive (method on Result, typed
//   fold as a package function over any Carrier)
// - Value/Err, ValueOf/ErrOf: comma-ok accessors derived from Analyze
// - Carrier: the minimal interface a container must implement to gain the
//   derived accessors and to enter the combinator algebra via From
// - Convertible: opt-in capability for error types that can absorb an
//   arbitrary raised value (used by solo.Try)
//
// Results are immutable values: combinators derive new outcomes, they never
// modify existing ones. Each Result is stamped with an id and UTC creation
// time; rewraps forward the stamp so a failure can be traced to where it
// was first constructed.
//
// For single-value synchronous combinators see package solo; for fluent
// same-type chaining see package tiny.
package outcome
