//go:build nomemctx

package memctx

import "unsafe"
import "sync"

// Building with the nomemctx tag collapses the whole subsystem to the
// system allocator (SPEC_FULL.md §6, the USE_SR_MEM_MGMT build switch).
// Context back-pointers still exist but carry no Block bookkeeping; every
// Alloc is a fresh system allocation and obj_count is tracked only so the
// public API's observable behaviour — Invariant 7, "disable equivalence" —
// stays identical. This mode exists for memory-error analysis tooling that
// cannot see through arena bookkeeping.

// Context is the degenerate, unmanaged form of the type described in
// context.go: no Blocks, no pooling, no peak tracking.
type Context struct {
	objCount int64
}

// New ignores local and hint and returns a fresh, unpooled Context. This
// mode never fails: err is always nil, kept only so callers compile
// unchanged against the managed build's signature.
func New(local *Local, hint int64) (*Context, error) {
	return &Context{}, nil
}

// Alloc always performs a fresh system allocation.
func (ctx *Context) Alloc(n int64) []byte {
	return make([]byte, n)
}

// FreePtr is a no-op, as in the managed build.
func (ctx *Context) FreePtr([]byte) {}

// Inc records a new live reference.
func (ctx *Context) Inc() {
	ctx.objCount++
}

// Dec releases one reference. With no pool to return to, reaching zero
// simply leaves ctx for the garbage collector.
func (ctx *Context) Dec() {
	if ctx.objCount == 0 {
		panic(ErrorContextBusy)
	}
	ctx.objCount--
}

// ObjCount returns the current live-object tally.
func (ctx *Context) ObjCount() int64 {
	return ctx.objCount
}

// Free is only legal once obj_count is zero, exactly as in the managed
// build.
func (ctx *Context) Free() {
	if ctx.objCount != 0 {
		panic(ErrorContextBusy)
	}
}

// Stats reports zero Blocks and zero capacity: there is nothing to
// account for bytes-wise in this mode.
func (ctx *Context) Stats() (blocks int, capacity, used, peak int64) {
	return 0, 0, 0, 0
}

// Snapshot is a value type recording only obj_count: with no bump pointer
// to rewind there is nothing else to capture, but the count still round-
// trips so callers see identical obj_count behaviour to the managed build.
type Snapshot struct {
	objCount int64
}

// Snapshot captures ctx's current obj_count.
func (ctx *Context) Snapshot() Snapshot {
	return Snapshot{objCount: ctx.objCount}
}

// Restore resets obj_count to the captured value. Bytes allocated after
// capture are not reclaimed in this mode — residency differs from the
// managed build by design, observable behaviour does not.
func (ctx *Context) Restore(snap Snapshot) {
	ctx.objCount = snap.objCount
}

// Local is a no-op stand-in so callers that thread a *Local through their
// code compile unchanged under nomemctx.
type Local struct{}

// NewLocal returns an inert Local.
func NewLocal() *Local {
	return &Local{}
}

// Size always reports zero: nothing is ever pooled in this mode.
func (l *Local) Size() int {
	return 0
}

// AvgPeak always reports zero: nothing is ever tracked in this mode.
func (l *Local) AvgPeak() int64 {
	return 0
}

// ThreadID identifies a logical worker for Registry partitioning.
type ThreadID int64

// Registry is a no-op stand-in mirroring the managed build's API.
type Registry struct {
	mu     sync.Mutex
	locals map[ThreadID]*Local
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{locals: make(map[ThreadID]*Local)}
}

// Local returns the Local owned by id, creating it on first use.
func (r *Registry) Local(id ThreadID) *Local {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locals[id]
	if !ok {
		l = NewLocal()
		r.locals[id] = l
	}
	return l
}

// Threads returns the set of ThreadIDs that have an initialized Local.
func (r *Registry) Threads() []ThreadID {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]ThreadID, 0, len(r.locals))
	for id := range r.locals {
		ids = append(ids, id)
	}
	return ids
}

// SerializerAllocator mirrors the managed build's callback contract.
type SerializerAllocator interface {
	Alloc(size int) unsafe.Pointer
	Free(ptr unsafe.Pointer)
}

type ctxAllocator struct {
	ctx *Context
}

// AsAllocator adapts ctx to the SerializerAllocator contract.
func AsAllocator(ctx *Context) SerializerAllocator {
	return ctxAllocator{ctx: ctx}
}

func (a ctxAllocator) Alloc(size int) unsafe.Pointer {
	buf := a.ctx.Alloc(int64(size))
	return unsafe.Pointer(unsafe.SliceData(buf))
}

func (a ctxAllocator) Free(ptr unsafe.Pointer) {}

// FieldAlloc always performs a system allocation in this mode, whether or
// not arena is nil — mirrors the managed build's fallback path for
// unmanaged objects, applied universally.
func FieldAlloc(arena *Context, n int64) []byte {
	return make([]byte, n)
}

// ShallowCopy allocates the enclosing struct's own bytes on the system
// heap.
func ShallowCopy(arena *Context, structSize int64) []byte {
	return FieldAlloc(arena, structSize)
}

// KeepAlive counts the copy against arena if it is non-nil, as in the
// managed build.
func KeepAlive(arena *Context) {
	if arena != nil {
		arena.Inc()
	}
}

// Release decrements arena's obj_count if the object is arena-managed.
func Release(arena *Context) {
	if arena != nil {
		arena.Dec()
	}
}
