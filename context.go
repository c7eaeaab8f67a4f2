//go:build !nomemctx

package memctx

import "github.com/bnclabs/memctx/lib"

// Context is an arena holding the storage for one logical top-level object
// and all of its shallow copies. It is single-owner: exactly one goroutine
// may call any operation on a Context, or on any object allocated from it,
// at any instant (see the package doc and SPEC_FULL.md §5). No locks or
// atomics guard obj_count because of this.
type Context struct {
	blocks   []*block
	objCount int64
	peak     int64 // high-water mark of total used bytes across blocks
	hint     int64 // peak_history_hint stamped at creation time

	local *Local // where this Context returns to on release, if any
}

// New creates a Context with an initial Block sized max(MinBlockSize,
// hint). If local is non-nil its pool is checked first for a Context whose
// capacity already covers hint, and its rolling peak average stamps the new
// Context's peak_history_hint when none is reused. The only failure mode is
// the system allocator refusing the initial Block, reported as
// ErrorOutOfMemory rather than left to crash the caller.
func New(local *Local, hint int64) (*Context, error) {
	if local != nil {
		if ctx := local.take(hint); ctx != nil {
			return ctx, nil
		}
	}
	size := lib.MaxInt64(MinBlockSize, hint)
	b, err := trynewblock(size)
	if err != nil {
		warnf("memctx: failed to create a %v byte context: %v", size, err)
		return nil, err
	}
	ctx := &Context{
		blocks: []*block{b},
		local:  local,
	}
	if local != nil {
		ctx.hint = local.peaks.Mean()
	}
	return ctx, nil
}

// Alloc reserves n bytes from ctx, returning the reserved region. It
// examines at most the last MaxTrailingBlocksForAlloc Blocks for a first
// fit; failing that it appends a new Block sized to at least n and
// GrowthFactor times the previous tail Block, which keeps the Block count
// O(log total_bytes) and allocation amortised O(1). The only failure mode
// is system out-of-memory while appending that new Block.
func (ctx *Context) Alloc(n int64) []byte {
	if ctx.blocks == nil {
		panic(ErrorContextReleased)
	}
	start := 0
	if ln := len(ctx.blocks); ln > MaxTrailingBlocksForAlloc {
		start = ln - MaxTrailingBlocksForAlloc
	}
	for _, b := range ctx.blocks[start:] {
		if buf, ok := b.alloc(n, Alignment); ok {
			ctx.bumppeak()
			return buf
		}
	}
	prev := ctx.blocks[len(ctx.blocks)-1].size()
	size := lib.MaxInt64(MinBlockSize, lib.MaxInt64(n, prev*GrowthFactor))
	nb, err := trynewblock(size)
	if err != nil {
		warnf("memctx: failed to grow context for a %v byte allocation: %v", n, err)
		panic(ErrorOutOfMemory)
	}
	buf, ok := nb.alloc(n, Alignment)
	if !ok {
		// n alone exceeds the size we just computed for it — cannot happen
		// unless n is negative or system allocation silently truncated.
		warnf("memctx: failed to grow context for a %v byte allocation", n)
		panic(ErrorOutOfMemory)
	}
	ctx.blocks = append(ctx.blocks, nb)
	ctx.bumppeak()
	debugf("memctx: grew context to %v blocks, %v bytes", len(ctx.blocks), size)
	return buf
}

// FreePtr is a no-op. It exists only so Context satisfies the serializer's
// allocator-callback contract (see shim.go); bytes allocated from a Context
// are reclaimed in bulk, never individually.
func (ctx *Context) FreePtr([]byte) {}

// Inc records a new live top-level object, shallow copy or serializer
// message attached to ctx.
func (ctx *Context) Inc() {
	if ctx.blocks == nil {
		panic(ErrorContextReleased)
	}
	ctx.objCount++
}

// Dec releases one reference previously counted with Inc. When obj_count
// returns to zero, ctx is handed back to its Local pool (or destroyed, if
// it has none or the pool refuses it).
func (ctx *Context) Dec() {
	if ctx.blocks == nil {
		panic(ErrorContextReleased)
	} else if ctx.objCount == 0 {
		panic(ErrorContextBusy)
	}
	ctx.objCount--
	if ctx.objCount == 0 {
		ctx.release()
	}
}

// ObjCount returns the current live-object tally.
func (ctx *Context) ObjCount() int64 {
	return ctx.objCount
}

// Free destroys ctx immediately, releasing its Blocks to the system rather
// than returning it to any Local pool. Only legal when obj_count == 0; used
// by the malformed-input path (SPEC_FULL.md §7) where a partially unpacked
// message must be discarded without ever having incremented obj_count. This
// is deliberately not the dec-to-zero path: per SPEC_FULL.md §7/§8 (S6),
// explicit Free destroys, it does not pool.
func (ctx *Context) Free() {
	if ctx.blocks == nil {
		panic(ErrorContextReleased)
	} else if ctx.objCount != 0 {
		panic(ErrorContextBusy)
	}
	ctx.blocks = nil
}

// release is the dec-to-zero path: hand ctx to its Local pool if it has
// one, else drop it for the GC to reclaim.
func (ctx *Context) release() {
	if ctx.local != nil {
		ctx.local.peaks.Add(ctx.peak)
		ctx.local.put(ctx)
		return
	}
	ctx.blocks = nil
}

// Stats reports the number of Blocks, total capacity, total bytes in use
// and the running peak for ctx.
func (ctx *Context) Stats() (blocks int, capacity, used, peak int64) {
	for _, b := range ctx.blocks {
		capacity += b.size()
		used += b.used
	}
	return len(ctx.blocks), capacity, used, ctx.peak
}

func (ctx *Context) bumppeak() {
	total := int64(0)
	for _, b := range ctx.blocks {
		total += b.used
	}
	if total > ctx.peak {
		ctx.peak = total
	}
}
