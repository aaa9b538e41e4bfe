// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation is optional and carries no dependency on a specific backend.
// Consumers register hooks at startup; the pipeline calls them around each
// stage:
//
//	observability.SetPipelineHooks(&myHooks{})
//
//	observability.Pipeline().OnLayoutStart(ctx, style)
//	// ... build scene ...
//	observability.Pipeline().OnLayoutComplete(ctx, style, hexagons, duration)
//
// Until something is registered every hook is a no-op.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the generation pipeline.
type PipelineHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, style string)
	OnLayoutComplete(ctx context.Context, style string, hexagons int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, int, time.Duration)        {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

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

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
