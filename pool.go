//go:build !nomemctx

package memctx

import "github.com/bnclabs/memctx/lib"

// Local is the per-thread bounded LIFO of idle Contexts, together with the
// rolling peak-usage average that drives trimming, described in
// SPEC_FULL.md §4.4-4.5. Go has no first-class thread-local storage, so
// this package makes per-thread partitioning explicit: each worker
// goroutine owns one *Local (typically as a field on its own worker
// struct, the way the teacher's LLRBWriter owns its own channels rather
// than reaching into global state) and passes it to New. Callers that want
// lazy, process-wide partitioning instead can go through a Registry.
type Local struct {
	idle  []*Context
	peaks *lib.RingAvg
}

// NewLocal creates an empty pool with a peak-history ring of
// PeakHistoryLength.
func NewLocal() *Local {
	return &Local{peaks: lib.NewRingAvg(PeakHistoryLength)}
}

// take pops the newest pooled Context whose total capacity is at least
// hint, if one exists, removing it from the pool. Returns nil if the pool
// is empty or holds nothing large enough, in which case the caller falls
// back to allocating a fresh Context.
func (l *Local) take(hint int64) *Context {
	for i := len(l.idle) - 1; i >= 0; i-- {
		if capacityOf(l.idle[i]) >= hint {
			ctx := l.idle[i]
			l.idle = append(l.idle[:i], l.idle[i+1:]...)
			return ctx
		}
	}
	return nil
}

// put returns an idle Context (obj_count already zero) to the pool,
// trimming it to the pool's current notion of how large it ought to be.
func (l *Local) put(ctx *Context) {
	if len(l.idle) >= MaxPoolSize {
		debugf("memctx: pool at capacity %v, dropping released context", MaxPoolSize)
		ctx.blocks = nil
		return
	}

	target := int64(float64(lib.MaxInt64(l.peaks.Mean(), ctx.hint)) * Slack)
	for len(ctx.blocks) > 1 && capacityOf(ctx) > target {
		ctx.blocks = ctx.blocks[:len(ctx.blocks)-1]
	}
	ctx.objCount, ctx.peak = 0, 0
	for _, b := range ctx.blocks {
		b.used = 0
	}
	l.idle = append(l.idle, ctx)
}

// Size returns the number of idle Contexts currently held.
func (l *Local) Size() int {
	return len(l.idle)
}

// AvgPeak returns the current rolling average of realized Context peaks
// observed on this Local.
func (l *Local) AvgPeak() int64 {
	return l.peaks.Mean()
}

func capacityOf(ctx *Context) int64 {
	total := int64(0)
	for _, b := range ctx.blocks {
		total += b.size()
	}
	return total
}
