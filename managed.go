//go:build !nomemctx

package memctx

// Record constructors and destructors follow the discipline described in
// SPEC_FULL.md §4.6 and §6: every managed type embeds an Arena *Context
// field. A nil Arena means "not managed; use the system allocator for each
// field in the destructor" — the backward-compatibility path for objects
// that predate, or intentionally opt out of, arena management. A non-nil
// Arena means the object is counted against that Context and its
// destructor must call Release.

// FieldAlloc allocates n bytes for a field of a managed object, falling
// back to a plain system allocation when arena is nil so the same
// constructor code works for both arena-backed and unmanaged objects.
func FieldAlloc(arena *Context, n int64) []byte {
	if arena == nil {
		return make([]byte, n)
	}
	return arena.Alloc(n)
}

// ShallowCopy allocates only the enclosing struct's own bytes (structSize)
// from arena; the caller is responsible for pointing the copy's fields at
// the original's owned bytes rather than duplicating them. Per the
// SPEC_FULL.md §3 resolution, a shallow copy never bumps obj_count on its
// own — conversions that must discard their shallow copies are expected to
// bracket themselves in Snapshot/Restore instead. Callers with a shallow
// copy that genuinely must outlive the original call KeepAlive instead.
func ShallowCopy(arena *Context, structSize int64) []byte {
	return FieldAlloc(arena, structSize)
}

// KeepAlive is the documented escape hatch for the rare shallow copy that
// must outlive the original in a way the original's destructor cannot
// cover: it counts the copy against arena so some destructor will release
// it. Safe to call with a nil arena.
func KeepAlive(arena *Context) {
	if arena != nil {
		arena.Inc()
	}
}

// Release is the generic destructor hook matching the Arena back-pointer
// convention: decrements arena's obj_count if the object is arena-managed,
// and is a no-op otherwise, leaving field-by-field system-allocator cleanup
// to the caller.
func Release(arena *Context) {
	if arena != nil {
		arena.Dec()
	}
}
