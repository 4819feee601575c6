// Package fast provides fixed-arity traversal specializations that
// sacrifice the runtime-arity engine's validation and observability
// for raw speed.
//
// # When to use this package
//
// Each function here is specialized for one arity (2, 3, or 4), with
// dispatch fixed at compile time:
//
//   - No arity validation: the call shape is checked by the type
//     system, so no error returns exist
//   - No row buffer: elements are passed as plain arguments, and the
//     element types of the sequences may differ
//   - No hooks: traverse/observe wrappers do not apply
//
// Use it on hot paths traversing a handful of sequences of known
// count, and for benchmarking the cost of the runtime-arity engine.
//
// # When NOT to use this package
//
//   - When the number of sequences is only known at runtime
//   - When you need the NotApplicableError taxonomy
//   - When observability hooks are required
//
// Semantics are otherwise identical to traverse: every walk stops at
// the shortest sequence, visits positions in order, and never mutates
// its inputs.
package fast
