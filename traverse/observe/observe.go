// Package observe provides observation hooks for traversals. The
// engine itself stays pure; hooks wrap a caller's combinator and fire
// around it without changing its semantics.
//
// Usage pattern:
//
//	var c observe.Counter
//	f := observe.Rows(observe.CountHooks[int](&c), func(row []int) int {
//		return row[0] * row[1]
//	})
//	got, err := traverse.Map(seqs, f)
//	fmt.Printf("rows visited: %d\n", c.Rows())
package observe

import (
	"sync/atomic"

	"github.com/lguimbarda/lockstep/traverse/core"
)

// Hooks observes one traversal. Nil callbacks are skipped.
type Hooks[T any] struct {
	// OnRow fires once per aligned row visited, before the wrapped
	// combinator. The row slice is the engine's reused buffer; copy it
	// to retain it.
	OnRow func(row []T)

	// OnHalt fires when a wrapped step combinator halts the walk.
	OnHalt func()
}

// Rows wraps a map-shaped combinator so OnRow fires per visited row.
func Rows[T, R any](h Hooks[T], f func(row []T) R) func(row []T) R {
	return func(row []T) R {
		if h.OnRow != nil {
			h.OnRow(row)
		}
		return f(row)
	}
}

// Fold wraps a reduce-shaped combinator so OnRow fires per visited row.
func Fold[T, A any](h Hooks[T], f func(row []T, acc A) A) func(row []T, acc A) A {
	return func(row []T, acc A) A {
		if h.OnRow != nil {
			h.OnRow(row)
		}
		return f(row, acc)
	}
}

// Steps wraps a step-shaped combinator so OnRow fires per visited row
// and OnHalt fires when the combinator halts the walk.
func Steps[T, V, A any](h Hooks[T], f func(row []T, acc A) core.Step[V, A]) func(row []T, acc A) core.Step[V, A] {
	return func(row []T, acc A) core.Step[V, A] {
		if h.OnRow != nil {
			h.OnRow(row)
		}
		step := f(row, acc)
		if step.Halted() && h.OnHalt != nil {
			h.OnHalt()
		}
		return step
	}
}

// Counter provides thread-safe counting of visited rows and halts.
type Counter struct {
	rows  atomic.Int64
	halts atomic.Int64
}

// Rows returns the count of rows visited.
func (c *Counter) Rows() int64 { return c.rows.Load() }

// Halts returns the count of halted walks.
func (c *Counter) Halts() int64 { return c.halts.Load() }

// CountHooks returns Hooks that update the counter.
func CountHooks[T any](c *Counter) Hooks[T] {
	return Hooks[T]{
		OnRow:  func([]T) { c.rows.Add(1) },
		OnHalt: func() { c.halts.Add(1) },
	}
}
