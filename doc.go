// Package memctx implements arena-style memory contexts for a datastore
// engine that converts native records into a serializer's message shape.
//
// A Context is a bump-allocated, ordered list of Blocks. Allocating from a
// Context never frees individual bytes; instead a whole Context is reused
// once its object counter (obj_count) returns to zero, either by being
// pooled for the next constructor on the same thread or by being released
// to the system allocator. Context.Snapshot and Context.Restore let a
// caller discard the transient shallow copies made while converting a
// record into its serializer form without discarding the record itself.
//
// A Context is single-owner: exactly one goroutine may call any operation
// on a Context, or on any object allocated from it, between well-defined
// handoff points. The package takes no internal locks and keeps no atomics
// on obj_count because of this. The per-thread idle-Context pool and peak-
// usage window are modeled explicitly as a *Local value (see pool.go)
// rather than as implicit thread-local storage, since Go has none; callers
// that want process-wide, lazily-initialized partitioning instead of an
// explicitly threaded *Local can use a Registry.
//
// Building with the "nomemctx" tag collapses every operation in this
// package to a direct call into the system allocator, for use with memory
// debugging tooling that cannot see through arena bookkeeping.
package memctx
