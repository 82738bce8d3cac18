// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation is optional: the pipeline reports stage events to whatever
// [PipelineHooks] implementation is registered, and the default discards
// them. Backends (OpenTelemetry, Prometheus, plain logs) are plugged in by
// main, not by the libraries, so library packages never import them.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnBuildStart(ctx, input)
//	// ... build hierarchy ...
//	observability.Pipeline().OnBuildComplete(ctx, input, nodeCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the scene pipeline.
type PipelineHooks interface {
	// Build events (input tree → hierarchy)
	OnBuildStart(ctx context.Context, input string)
	OnBuildComplete(ctx context.Context, input string, nodeCount int, duration time.Duration, err error)

	// Layout events (layout + direction mapping + composition)
	OnLayoutStart(ctx context.Context, direction string, nodeCount int)
	OnLayoutComplete(ctx context.Context, direction string, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, engine string, formats []string)
	OnRenderComplete(ctx context.Context, engine string, formats []string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnBuildStart(context.Context, string) {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                     {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)                {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
