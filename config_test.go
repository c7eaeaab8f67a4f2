package memctx

import "testing"

import "github.com/stretchr/testify/require"

func TestDefaultsettingsHasRequiredKeys(t *testing.T) {
	st := Defaultsettings()
	for _, key := range []string{"minblock", "maxpoolsize", "peakhistory", "slack", "poolhint"} {
		_, ok := st[key]
		require.True(t, ok, "expected settings to carry %q", key)
	}
}

func TestPoolHintRoundTrips(t *testing.T) {
	st := Defaultsettings()
	hint := PoolHint(st)
	require.GreaterOrEqual(t, hint, int64(0))
}

func TestPoolHintPanicsOnMissingKey(t *testing.T) {
	require.Panics(t, func() { PoolHint(nil) })
}
