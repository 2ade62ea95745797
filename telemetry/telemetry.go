// Package telemetry records how long the phases of a validation run take.
//
// A Collector travels through the context, so instrumented code does not need
// to know whether timings are being collected:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.StartTimer(ctx, "household.check")
//	entries, err := ledger.New().Process(ctx, directives)
//	timer.End()
//
//	collector.Report(os.Stderr, output.NewStyles(os.Stderr))
package telemetry

import (
	"context"
	"io"

	"github.com/robinvdvleuten/beancount-household/output"
)

type contextKey struct{}

// Collector gathers timers into a report.
type Collector interface {
	// Start begins timing an operation nested under the innermost running timer.
	Start(name string) Timer

	// Report writes the collected timings. styles may be nil for plain output.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks a single operation.
type Timer interface {
	End()
	Child(name string) Timer
}

// WithCollector adds a collector to a context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, contextKey{}, collector)
}

// FromContext returns the collector in ctx, or one that discards everything.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(contextKey{}).(Collector); ok {
		return collector
	}
	return discard{}
}

// StartTimer starts a timer on the collector in ctx.
func StartTimer(ctx context.Context, name string) Timer {
	return FromContext(ctx).Start(name)
}

// discard is used when no collector is configured.
type discard struct{}

func (discard) Start(string) Timer               { return discard{} }
func (discard) Report(io.Writer, *output.Styles) {}
func (discard) End()                             {}
func (discard) Child(string) Timer               { return discard{} }
