// Package sql adapts database/sql result sets into aligned sequences.
// A result set is a sequence of equal-width rows; extracting its
// columns yields exactly the input shape the traversal primitives and
// structural combinators consume.
package sql

import (
	"context"
	"database/sql"
)

// Scanner is a function that scans the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Rows executes a query and collects one scanned value per row, in
// result-set order.
func Rows[T any](ctx context.Context, db *sql.DB, query string, scan Scanner[T], args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		value, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Columns executes a query and returns its result set column-wise: one
// sequence per selected column, all of equal length, aligned by row.
// The output feeds directly into the traversal primitives.
func Columns(ctx context.Context, db *sql.DB, query string, args ...any) ([][]any, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	width := len(names)
	cols := make([][]any, width)

	values := make([]any, width)
	ptrs := make([]any, width)
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			cols[i] = append(cols[i], v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cols, nil
}
