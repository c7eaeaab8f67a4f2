package memctx

// MinBlockSize is the smallest Block a Context will allocate, regardless of
// how small the first requested allocation is. Keeps pathologically small
// hint_size callers from forcing a Block per object.
const MinBlockSize = int64(4 * 1024)

// MaxTrailingBlocksForAlloc bounds how many Blocks, counted from the tail of
// a Context's Block list, Alloc will first-fit over before giving up and
// appending a new Block. Keeps allocation cost amortised O(1) instead of
// degrading as a Context accumulates Blocks.
const MaxTrailingBlocksForAlloc = 3

// GrowthFactor is the multiplier applied to the previous tail Block's size
// when a Context must append a new Block, producing geometric growth and an
// O(log total_bytes) Block count.
const GrowthFactor = int64(2)

// MaxPoolSize is the per-thread idle-Context pool capacity.
const MaxPoolSize = 64

// PeakHistoryLength is the length of the per-thread ring of realized
// Context peaks used to compute the rolling average that drives both local
// pool trimming and piggybacked cross-thread sizing.
const PeakHistoryLength = 32

// Slack is the multiplier applied to max(local_avg_peak, peak_history_hint)
// when trimming a Context on return to the pool.
const Slack = float64(1.5)

// Alignment is the default alignment applied to every Block.alloc request
// that does not specify a stricter alignment of its own.
const Alignment = int64(8)

// MEMUtilization documents the rough fraction of a pooled Context's
// capacity that trimming aims to keep productively occupied. Informational
// only — unlike the teacher's size-class pools, Slack is what actually
// drives trimming here.
const MEMUtilization = float64(0.95)
