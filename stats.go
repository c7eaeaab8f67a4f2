package memctx

import gohumanize "github.com/dustin/go-humanize"

// LogStats writes a human-readable summary of ctx's current Stats at info
// level, the way the teacher's llrb instance logs its own size with
// go-humanize rather than raw byte counts.
func LogStats(ctx *Context) {
	blocks, capacity, used, peak := ctx.Stats()
	infof(
		"memctx: %v blocks, capacity %v, used %v, peak %v",
		blocks, gohumanize.Bytes(uint64(capacity)), gohumanize.Bytes(uint64(used)),
		gohumanize.Bytes(uint64(peak)),
	)
}

// LogPoolStats writes a human-readable summary of a Local's pool occupancy
// and rolling peak average.
func LogPoolStats(l *Local) {
	infof(
		"memctx: pool holds %v idle contexts, avg peak %v",
		l.Size(), gohumanize.Bytes(uint64(l.AvgPeak())),
	)
}
