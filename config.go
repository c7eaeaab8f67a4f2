package memctx

import "fmt"

import s "github.com/prataprc/gosettings"
import "github.com/cloudfoundry/gosigar"

// memctx default settings. "minblock", "maxpoolsize", "peakhistory" and
// "slack" carry the values of MinBlockSize, MaxPoolSize, PeakHistoryLength
// and Slack; New, Alloc and Local use those constants directly and do not
// read these keys. Only "poolhint" is read back, by PoolHint.
//
// "minblock" (int64, default: 4096)
//		Smallest Block a Context will allocate.
//
// "maxpoolsize" (int64, default: 64)
//		Per-thread idle-Context pool capacity.
//
// "peakhistory" (int64, default: 32)
//		Length of the per-thread rolling peak-usage window.
//
// "slack" (float64, default: 1.5)
//		Multiplier applied to the rolling peak average when trimming a
//		Context on return to its pool.
//
// "poolhint" (int64, default: derived from free system memory)
//		Starting hint_size passed to New for Contexts with no prior peak
//		history, sized conservatively off free system RAM the way the
//		teacher's Bogn sizes its own in-memory capacities.
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	return s.Settings{
		"minblock":    int64(MinBlockSize),
		"maxpoolsize": int64(MaxPoolSize),
		"peakhistory": int64(PeakHistoryLength),
		"slack":       Slack,
		"poolhint":    int64(free / 1024),
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}

// PoolHint extracts "poolhint" from settings for use as the hint argument
// to New, panicking if the key is missing or of the wrong type — settings
// built by anything other than Defaultsettings is a caller contract
// violation, not a recoverable condition.
func PoolHint(settings s.Settings) int64 {
	v, ok := settings["poolhint"]
	if !ok {
		panic(fmt.Errorf("memctx: settings missing %q", "poolhint"))
	}
	hint, ok := v.(int64)
	if !ok {
		panic(fmt.Errorf("memctx: settings %q not an int64", "poolhint"))
	}
	return hint
}
