package lib

// RingAvg is a fixed-length ring of the most recently added int64 samples,
// together with their running average. Unlike a cumulative average it
// forgets samples once the ring wraps, which is what lets a peak-usage
// tracker follow a workload whose allocation sizes drift over time instead
// of being dragged down by its entire history.
type RingAvg struct {
	window []int64
	size   int
	filled int
	next   int
	sum    int64
}

// NewRingAvg allocates a ring of the given length. length must be positive.
func NewRingAvg(length int) *RingAvg {
	if length <= 0 {
		panic("lib.NewRingAvg: length must be positive")
	}
	return &RingAvg{window: make([]int64, length)}
}

// Add pushes a new sample into the ring, evicting the oldest sample once
// the ring is full.
func (r *RingAvg) Add(sample int64) {
	if r.filled == len(r.window) {
		r.sum -= r.window[r.next]
	} else {
		r.filled++
	}
	r.window[r.next] = sample
	r.sum += sample
	r.next = (r.next + 1) % len(r.window)
}

// Mean returns the rolling average of the samples currently held in the
// ring, or zero if no sample has been added yet.
func (r *RingAvg) Mean() int64 {
	if r.filled == 0 {
		return 0
	}
	return r.sum / int64(r.filled)
}

// Samples returns the number of samples currently held in the ring (at most
// its configured length).
func (r *RingAvg) Samples() int {
	return r.filled
}

// Len returns the configured ring length.
func (r *RingAvg) Len() int {
	return len(r.window)
}
