package core

// Step represents the outcome of one FlatMapReduce invocation.
// It exists in one of two states:
//   - Continue: carries zero or more values to append to the output and
//     the accumulator for the next row.
//   - Halt: carries the final accumulator; the walk stops immediately
//     and the combinator is never invoked again.
//
// Prefer the Continue() and Halt() constructors over building a Step
// by hand.
type Step[V, A any] struct {
	values []V
	acc    A
	halt   bool
}

// Continue creates a Step that appends values to the output, in order,
// and advances every cursor with the given accumulator.
func Continue[V, A any](values []V, acc A) Step[V, A] {
	return Step[V, A]{values: values, acc: acc}
}

// Halt creates a Step that stops the walk at once, keeping the output
// collected so far and the given accumulator. Halting is a successful
// early completion, not an error.
func Halt[V, A any](acc A) Step[V, A] {
	return Step[V, A]{acc: acc, halt: true}
}

// Halted returns true if this Step stops the walk.
func (s Step[V, A]) Halted() bool {
	return s.halt
}

// Values returns the values carried by a Continue step.
// Returns nil for a Halt step.
func (s Step[V, A]) Values() []V {
	if s.halt {
		return nil
	}
	return s.values
}

// Acc returns the accumulator carried by this Step.
func (s Step[V, A]) Acc() A {
	return s.acc
}
