// Package traverse provides lockstep traversal of a fixed small number
// of aligned sequences, without zipping them into intermediate tuples
// first. Every multi-sequence primitive takes one homogeneous
// collection of sequences, walks them in lockstep, and stops as soon
// as any one of them is exhausted.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The traverse/core subpackage contains
// the engine itself and is rarely needed directly. Structural
// combinators (Zip, Unzip, Transpose) live in traverse/combine, closed
// option templates in traverse/options, and fixed-arity specializations
// in traverse/fast.
package traverse

import (
	"github.com/lguimbarda/lockstep/traverse/core"
)

// Type aliases for core abstractions.
// These allow users to work with the library without importing core directly.
type (
	// Step is the outcome of one FlatMapReduce invocation: Continue
	// with values and a new accumulator, or Halt with a final one.
	Step[V, A any] = core.Step[V, A]

	// NotApplicableError reports a call shape no traversal supports.
	NotApplicableError = core.NotApplicableError

	// UnknownOptionError reports an option key outside its template.
	UnknownOptionError = core.UnknownOptionError

	// ArityMismatchError reports a row of unexpected width.
	ArityMismatchError = core.ArityMismatchError
)

// DefaultMaxArity is the arity ceiling when no override is configured.
const DefaultMaxArity = core.DefaultMaxArity

// Step constructors - wrappers around core functions.

// Continue creates a Step carrying values and the next accumulator.
func Continue[V, A any](values []V, acc A) Step[V, A] {
	return core.Continue(values, acc)
}

// Halt creates a Step that stops the walk with a final accumulator.
func Halt[V, A any](acc A) Step[V, A] {
	return core.Halt[V](acc)
}

// Traversal primitives.

// Map collects f(row) for each aligned row, stopping at the shortest
// sequence. The row slice is reused between invocations.
func Map[T, R any](seqs [][]T, f func(row []T) R) ([]R, error) {
	return core.Map(seqs, f)
}

// FlatMap concatenates the slices f returns per row, in order.
func FlatMap[T, R any](seqs [][]T, f func(row []T) []R) ([]R, error) {
	return core.FlatMap(seqs, f)
}

// Reduce left-folds f over the aligned rows.
func Reduce[T, A any](seqs [][]T, acc A, f func(row []T, acc A) A) (A, error) {
	return core.Reduce(seqs, acc, f)
}

// MapReduce maps and folds in a single walk.
func MapReduce[T, R, A any](seqs [][]T, acc A, f func(row []T, acc A) (R, A)) ([]R, A, error) {
	return core.MapReduce(seqs, acc, f)
}

// FlatMapReduce walks the rows until f halts or the shortest sequence
// is exhausted, concatenating the values each Continue step carries.
func FlatMapReduce[T, V, A any](seqs [][]T, acc A, f func(row []T, acc A) Step[V, A]) ([]V, A, error) {
	return core.FlatMapReduce(seqs, acc, f)
}

// Each invokes f per aligned row for its side effects.
func Each[T any](seqs [][]T, f func(row []T)) error {
	return core.Each(seqs, f)
}

// Single-sequence utilities and introspection.

// Split returns the first clamp(n, 0, len(s)) elements of s and the
// remainder.
func Split[T any](s []T, n int) (prefix, suffix []T) {
	return core.Split(s, n)
}

// Applicable reports whether seqs forms a valid call shape:
// 1 <= len(seqs) <= MaxArity().
func Applicable[T any](seqs [][]T) bool {
	return core.Applicable(seqs)
}

// MaxArity returns the arity ceiling, fixed for the process lifetime.
func MaxArity() int {
	return core.MaxArity()
}
