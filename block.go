//go:build !nomemctx

package memctx

import "github.com/bnclabs/memctx/lib"

// block is a contiguous slab owned by a Context. Allocation is strictly
// sequential: bytes once consumed are never reclaimed except by releasing
// the whole block or by a snapshot restore rewinding used back to a
// previously captured value. There is no per-allocation header, no
// free-list and no coalescing — the only per-allocation cost is the
// alignment bump.
type block struct {
	storage []byte // backing slab, len(storage) == size
	used    int64  // bytes consumed from the low end, 0 <= used <= size
}

func newblock(size int64) *block {
	return &block{storage: make([]byte, size)}
}

// trynewblock is newblock guarded against the recoverable subset of
// allocation failures (negative or overflowing size), converting a panic
// into ErrorOutOfMemory so New can report it to its caller rather than let
// it crash the process. A true system-wide exhaustion inside make() is a Go
// runtime fatal error and cannot be recovered by any means; that case is
// not, and cannot be, covered here.
func trynewblock(size int64) (b *block, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, ErrorOutOfMemory
		}
	}()
	return newblock(size), nil
}

func (b *block) size() int64 {
	return int64(len(b.storage))
}

func (b *block) residual() int64 {
	return b.size() - b.used
}

// alloc reserves n bytes aligned to align, advancing used. Returns the
// reserved region and true, or (nil, false) if the block has insufficient
// residual capacity.
func (b *block) alloc(n, align int64) ([]byte, bool) {
	off := lib.CeilInt64(b.used, align)
	if off+n > b.size() {
		return nil, false
	}
	b.used = off + n
	return b.storage[off : off+n : off+n], true
}
