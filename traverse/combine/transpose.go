package combine

// Transpose turns rows into columns: column k collects the k-th element
// of every row, for k up to the shortest row's length. Ragged inputs
// are truncated to the shortest row; rectangular inputs round-trip, so
// Transpose(Transpose(rows)) == rows when all rows have equal length.
//
// Unlike Zip, Transpose treats its rows as data rather than as a call
// shape, so it has no arity ceiling and cannot fail. An empty input
// yields nil.
func Transpose[T any](rows [][]T) [][]T {
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) < width {
			width = len(row)
		}
	}
	cols := make([][]T, width)
	for k := 0; k < width; k++ {
		col := make([]T, len(rows))
		for i, row := range rows {
			col[i] = row[k]
		}
		cols[k] = col
	}
	return cols
}
