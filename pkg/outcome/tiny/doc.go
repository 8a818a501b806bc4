// Package tiny provides a minimal fluent Chain[V, E] for synchronous
// composition of same-type Result values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/MapErr: transform the success or error payload
// - Ensure: trigger side effects without changing the result
// - Or/And: select between chains (first success / first failure wins)
// - Finally: reduce to a concrete value via handlers
//
// Tiny is ideal where lightweight fluent chaining improves readability;
// for cross-type composition use the free functions in package solo.
package tiny
