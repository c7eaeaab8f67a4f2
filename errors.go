package memctx

import "errors"

// ErrorOutOfMemory is returned by New when the system allocator cannot
// satisfy its initial Block. Alloc faces the same failure when it must
// append a Block, but has no error return of its own — the
// SerializerAllocator callback contract it serves (see shim.go) is
// alloc(size) -> pointer with no error channel — so there it is raised as a
// panic instead.
var ErrorOutOfMemory = errors.New("memctx.outofmemory")

// ErrorContextReleased is raised, as a panic, by Alloc, Inc, Dec, Free,
// Snapshot and Restore on a Context whose Blocks have been released, either
// by Free or by the Dec that brings obj_count to zero on a Context with no
// Local pool or whose pool is full. Stats, ObjCount and FreePtr do not check
// for it, and the nomemctx build never raises it. Using a released Context
// is a contract violation, not a recoverable error.
var ErrorContextReleased = errors.New("memctx.contextreleased")

// ErrorContextBusy is raised, as a panic, by Free when obj_count is not
// zero. Free is only legal once every constructor's matching destructor has
// run.
var ErrorContextBusy = errors.New("memctx.contextbusy")
