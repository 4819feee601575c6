// package core defines the engine for lockstep traversal of aligned
// sequences: the primitive walks (Map, FlatMap, Reduce, MapReduce,
// FlatMapReduce, Each), the Step outcome type, the arity ceiling, and
// the error taxonomy. Higher-level packages build on these walks.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other traverse packages.
package core

// minLen returns the length of the shortest sequence. Traversal never
// inspects elements beyond this offset.
func minLen[T any](seqs [][]T) int {
	shortest := len(seqs[0])
	for _, s := range seqs[1:] {
		if len(s) < shortest {
			shortest = len(s)
		}
	}
	return shortest
}

// checkArity validates the call shape: the number of sequences must lie
// in [1, MaxArity()].
func checkArity[T any](seqs [][]T) error {
	if n := len(seqs); n < 1 || n > MaxArity() {
		return &NotApplicableError{Arity: n, Max: MaxArity()}
	}
	return nil
}

// fillRow copies the j-th element of every sequence into row.
func fillRow[T any](seqs [][]T, row []T, j int) {
	for i := range seqs {
		row[i] = seqs[i][j]
	}
}

// Map invokes f once per aligned row of the given sequences, in order,
// stopping at the shortest sequence, and collects the results.
//
// The row slice passed to f is reused between invocations; f must copy
// it if it retains it beyond the call.
func Map[T, R any](seqs [][]T, f func(row []T) R) ([]R, error) {
	if err := checkArity(seqs); err != nil {
		return nil, err
	}
	stop := minLen(seqs)
	out := make([]R, stop)
	row := make([]T, len(seqs))
	for j := 0; j < stop; j++ {
		fillRow(seqs, row, j)
		out[j] = f(row)
	}
	return out, nil
}

// FlatMap invokes f once per aligned row and concatenates the returned
// slices in traversal order. The result is flat, never nested.
func FlatMap[T, R any](seqs [][]T, f func(row []T) []R) ([]R, error) {
	if err := checkArity(seqs); err != nil {
		return nil, err
	}
	stop := minLen(seqs)
	out := make([]R, 0, stop)
	row := make([]T, len(seqs))
	for j := 0; j < stop; j++ {
		fillRow(seqs, row, j)
		out = append(out, f(row)...)
	}
	return out, nil
}

// Reduce threads an accumulator through f, one invocation per aligned
// row, as a strict left fold. The final accumulator is returned.
func Reduce[T, A any](seqs [][]T, acc A, f func(row []T, acc A) A) (A, error) {
	if err := checkArity(seqs); err != nil {
		return acc, err
	}
	stop := minLen(seqs)
	row := make([]T, len(seqs))
	for j := 0; j < stop; j++ {
		fillRow(seqs, row, j)
		acc = f(row, acc)
	}
	return acc, nil
}

// MapReduce combines Map and Reduce in a single walk: f returns both
// the mapped value for the row and the next accumulator.
func MapReduce[T, R, A any](seqs [][]T, acc A, f func(row []T, acc A) (R, A)) ([]R, A, error) {
	if err := checkArity(seqs); err != nil {
		return nil, acc, err
	}
	stop := minLen(seqs)
	out := make([]R, stop)
	row := make([]T, len(seqs))
	for j := 0; j < stop; j++ {
		fillRow(seqs, row, j)
		out[j], acc = f(row, acc)
	}
	return out, acc, nil
}

// FlatMapReduce is the most general walk: per row, f returns a Step
// that either continues with zero or more values and a new accumulator,
// or halts with a final accumulator. On Halt the walk stops at once:
// values collected so far are kept, the remaining elements of every
// sequence are discarded, and f is not invoked again. Halting is a
// successful completion, distinct from the implicit stop at the
// shortest sequence.
func FlatMapReduce[T, V, A any](seqs [][]T, acc A, f func(row []T, acc A) Step[V, A]) ([]V, A, error) {
	if err := checkArity(seqs); err != nil {
		return nil, acc, err
	}
	stop := minLen(seqs)
	out := make([]V, 0, stop)
	row := make([]T, len(seqs))
	for j := 0; j < stop; j++ {
		fillRow(seqs, row, j)
		step := f(row, acc)
		acc = step.acc
		if step.halt {
			return out, acc, nil
		}
		out = append(out, step.values...)
	}
	return out, acc, nil
}

// Each invokes f once per aligned row for its side effects, in order,
// stopping at the shortest sequence.
func Each[T any](seqs [][]T, f func(row []T)) error {
	if err := checkArity(seqs); err != nil {
		return err
	}
	stop := minLen(seqs)
	row := make([]T, len(seqs))
	for j := 0; j < stop; j++ {
		fillRow(seqs, row, j)
		f(row)
	}
	return nil
}
