// Package observability provides instrumentation hooks for map generation.
//
// Hooks are no-ops until a consumer registers an implementation at startup,
// so the libraries that emit events carry no dependency on a metrics or
// tracing backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlotHooks(&myPlotHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Plot().OnPlotStart(ctx, rows)
//	// ... draw rows ...
//	observability.Plot().OnPlotComplete(ctx, rows, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PlotHooks receives events from the map orchestrator.
type PlotHooks interface {
	OnPlotStart(ctx context.Context, rows int)
	OnRow(ctx context.Context, index int, id, category string)
	OnPlotComplete(ctx context.Context, rows int, duration time.Duration, err error)
}

// TableHooks receives events from the input table reader.
type TableHooks interface {
	// OnTableRead records one table; present is false for a missing
	// optional table.
	OnTableRead(ctx context.Context, name string, rows int, present bool)
}

// NoopPlotHooks is a no-op implementation of PlotHooks.
type NoopPlotHooks struct{}

func (NoopPlotHooks) OnPlotStart(context.Context, int)                          {}
func (NoopPlotHooks) OnRow(context.Context, int, string, string)                {}
func (NoopPlotHooks) OnPlotComplete(context.Context, int, time.Duration, error) {}

// NoopTableHooks is a no-op implementation of TableHooks.
type NoopTableHooks struct{}

func (NoopTableHooks) OnTableRead(context.Context, string, int, bool) {}

var (
	plotHooks  PlotHooks  = NoopPlotHooks{}
	tableHooks TableHooks = NoopTableHooks{}
	hooksMu    sync.RWMutex
)

// SetPlotHooks registers custom plot hooks. A nil h is ignored.
func SetPlotHooks(h PlotHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		plotHooks = h
	}
}

// SetTableHooks registers custom table hooks. A nil h is ignored.
func SetTableHooks(h TableHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		tableHooks = h
	}
}

// Plot returns the registered plot hooks.
func Plot() PlotHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return plotHooks
}

// Tables returns the registered table hooks.
func Tables() TableHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return tableHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	plotHooks = NoopPlotHooks{}
	tableHooks = NoopTableHooks{}
}
