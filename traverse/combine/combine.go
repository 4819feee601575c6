// Package combine provides structural combinators over aligned
// sequences: Zip, Unzip, FlatUnzip, and Transpose. Rows are homogeneous
// []T slices; a "tuple" of arity N is a row of length N.
package combine

import (
	"github.com/lguimbarda/lockstep/traverse/core"
)

// Zip returns one freshly allocated row per aligned position of the
// given sequences, stopping at the shortest, so the result length is
// the minimum input length. The call shape is arity-validated like the
// traversal primitives.
func Zip[T any](seqs [][]T) ([][]T, error) {
	return core.Map(seqs, func(row []T) []T {
		out := make([]T, len(row))
		copy(out, row)
		return out
	})
}

// Unzip splits a sequence of rows into one sequence per slot: output
// sequence i collects element i of every row, preserving row order.
// The arity is inferred from the first row; a row of any other width
// is an ArityMismatchError. An empty input yields nil.
func Unzip[T any](rows [][]T) ([][]T, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	want := len(rows[0])
	cols := make([][]T, want)
	for i := range cols {
		cols[i] = make([]T, len(rows))
	}
	for r, row := range rows {
		if len(row) != want {
			return nil, &core.ArityMismatchError{Row: r, Got: len(row), Want: want}
		}
		for i, v := range row {
			cols[i][r] = v
		}
	}
	return cols, nil
}

// FlatUnzip is Unzip for rows whose slots hold sub-sequences rather
// than scalars: output slot i is the concatenation, in row order, of
// slot i's sub-sequence across all rows.
func FlatUnzip[T any](rows [][][]T) ([][]T, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	want := len(rows[0])
	cols := make([][]T, want)
	for i := range cols {
		cols[i] = []T{}
	}
	for r, row := range rows {
		if len(row) != want {
			return nil, &core.ArityMismatchError{Row: r, Got: len(row), Want: want}
		}
		for i, sub := range row {
			cols[i] = append(cols[i], sub...)
		}
	}
	return cols, nil
}
