// Package fakewire is a minimal stand-in for the external wire-format
// serializer described by SPEC_FULL.md §4.3/§6. The real serializer is an
// out-of-scope collaborator; this package exists only so the shim tests in
// this module can exercise the allocator-callback contract end to end
// without pulling in an unrelated codec dependency.
package fakewire

import "encoding/binary"
import "unsafe"

// Allocator mirrors memctx.SerializerAllocator so tests can exchange a
// Context-backed allocator for fakewire's decoder without this package
// importing memctx itself.
type Allocator interface {
	Alloc(size int) unsafe.Pointer
	Free(ptr unsafe.Pointer)
}

// Encode packs payload as a four-byte big-endian length prefix followed by
// the payload bytes.
func Encode(payload []byte) []byte {
	record := make([]byte, 4+len(payload))
	binary.BigEndian.PutUint32(record, uint32(len(payload)))
	copy(record[4:], payload)
	return record
}

// Decode unpacks a record produced by Encode, requesting the destination
// storage from alloc instead of allocating it itself — the behaviour a real
// serializer needs from an arena-backed message Context.
func Decode(record []byte, alloc Allocator) []byte {
	if len(record) < 4 {
		panic("fakewire: truncated record")
	}
	n := binary.BigEndian.Uint32(record)
	if uint32(len(record)-4) < n {
		panic("fakewire: record shorter than declared length")
	}
	ptr := alloc.Alloc(int(n))
	dst := unsafe.Slice((*byte)(ptr), int(n))
	copy(dst, record[4:4+n])
	return dst
}
