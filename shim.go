//go:build !nomemctx

package memctx

import "unsafe"

// SerializerAllocator is the callback pair a third-party serializer expects
// when asked to unpack a wire message directly into caller-supplied
// memory. opaque in the serializer's own terms is the Context back-pointer;
// this package hides that by binding the callbacks to a Context up front.
// Only the contract matters here — the concrete serializer on the other
// side of it is an external collaborator out of this module's scope.
type SerializerAllocator interface {
	// Alloc returns size bytes of storage for the serializer to fill in.
	Alloc(size int) unsafe.Pointer

	// Free is a no-op: bytes handed out by a Context are never freed
	// individually, only reclaimed in bulk with the Context itself.
	Free(ptr unsafe.Pointer)
}

type ctxAllocator struct {
	ctx *Context
}

// AsAllocator adapts ctx to the SerializerAllocator contract, so that a
// single incoming message can be unpacked into one Context with at most
// one underlying system allocation (or zero, if a pooled Context already
// had room).
func AsAllocator(ctx *Context) SerializerAllocator {
	return ctxAllocator{ctx: ctx}
}

func (a ctxAllocator) Alloc(size int) unsafe.Pointer {
	buf := a.ctx.Alloc(int64(size))
	return unsafe.Pointer(unsafe.SliceData(buf))
}

func (a ctxAllocator) Free(ptr unsafe.Pointer) {
	a.ctx.FreePtr(nil)
}
