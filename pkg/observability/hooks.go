// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about sort runs and experiments.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSortHooks(&mySortHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Sort().OnSortStart(ctx, algorithm, lightCount)
//	// ... sort ...
//	observability.Sort().OnSortComplete(ctx, algorithm, lightCount, swaps, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Sort Hooks
// =============================================================================

// SortHooks receives events from sort runs.
type SortHooks interface {
	// OnSortStart is called before an algorithm runs on a row of 2*lightCount disks.
	OnSortStart(ctx context.Context, algorithm string, lightCount int)

	// OnSortComplete is called after the algorithm returns.
	OnSortComplete(ctx context.Context, algorithm string, lightCount, swaps int, duration time.Duration)
}

// ExperimentHooks receives events from experiment runs.
type ExperimentHooks interface {
	OnExperimentStart(ctx context.Context, runID string, cases int)
	OnExperimentComplete(ctx context.Context, runID string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSortHooks is a no-op implementation of SortHooks.
type NoopSortHooks struct{}

func (NoopSortHooks) OnSortStart(context.Context, string, int)                        {}
func (NoopSortHooks) OnSortComplete(context.Context, string, int, int, time.Duration) {}

// NoopExperimentHooks is a no-op implementation of ExperimentHooks.
type NoopExperimentHooks struct{}

func (NoopExperimentHooks) OnExperimentStart(context.Context, string, int)                     {}
func (NoopExperimentHooks) OnExperimentComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sortHooks       SortHooks       = NoopSortHooks{}
	experimentHooks ExperimentHooks = NoopExperimentHooks{}
	hooksMu         sync.RWMutex
)

// SetSortHooks registers custom sort hooks.
// This should be called once at application startup before any sort runs.
func SetSortHooks(h SortHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sortHooks = h
	}
}

// SetExperimentHooks registers custom experiment hooks.
func SetExperimentHooks(h ExperimentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		experimentHooks = h
	}
}

// Sort returns the registered sort hooks.
func Sort() SortHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sortHooks
}

// Experiment returns the registered experiment hooks.
func Experiment() ExperimentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return experimentHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sortHooks = NoopSortHooks{}
	experimentHooks = NoopExperimentHooks{}
}
