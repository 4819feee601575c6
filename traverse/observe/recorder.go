package observe

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// Recorder bridges traversal hooks to OpenTelemetry instruments. One
// Recorder may serve many traversals concurrently; the instruments are
// created once.
type Recorder struct {
	calls metric.Int64Counter
	rows  metric.Int64Counter
	halts metric.Int64Counter
}

// NewRecorder creates the traverse instrument set on the given meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	calls, err := meter.Int64Counter("traverse.calls",
		metric.WithDescription("traversals started"))
	if err != nil {
		return nil, err
	}
	rows, err := meter.Int64Counter("traverse.rows",
		metric.WithDescription("aligned rows visited"))
	if err != nil {
		return nil, err
	}
	halts, err := meter.Int64Counter("traverse.halts",
		metric.WithDescription("walks stopped early by a halting step"))
	if err != nil {
		return nil, err
	}
	return &Recorder{calls: calls, rows: rows, halts: halts}, nil
}

// Call records the start of one traversal.
func (r *Recorder) Call(ctx context.Context) {
	r.calls.Add(ctx, 1)
}

// RecordHooks returns Hooks that feed the recorder's instruments.
func RecordHooks[T any](ctx context.Context, r *Recorder) Hooks[T] {
	return Hooks[T]{
		OnRow:  func([]T) { r.rows.Add(ctx, 1) },
		OnHalt: func() { r.halts.Add(ctx, 1) },
	}
}
