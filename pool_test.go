//go:build !nomemctx

package memctx

import "testing"

func TestLocalRoundTrip(t *testing.T) {
	local := NewLocal()
	ctx, err := New(local, 0)
	if err != nil {
		t.Fatal(err)
	}
	if local.Size() != 0 {
		t.Fatalf("expected nothing pooled until release")
	}
	ctx.Inc()
	ctx.Dec()
	if local.Size() != 1 {
		t.Errorf("expected released context to be pooled, got pool size %v", local.Size())
	}
}

func TestLocalReusesPooledContext(t *testing.T) {
	local := NewLocal()
	first, err := New(local, 0)
	if err != nil {
		t.Fatal(err)
	}
	first.Inc()
	first.Dec()
	second, err := New(local, 0)
	if err != nil {
		t.Fatal(err)
	}
	if local.Size() != 0 {
		t.Errorf("expected the pooled context to have been taken, pool size %v", local.Size())
	}
	_, capacity, _, _ := second.Stats()
	if capacity < MinBlockSize {
		t.Errorf("expected reused context to retain its capacity, got %v", capacity)
	}
}

func TestLocalRejectsTooSmallReuse(t *testing.T) {
	local := NewLocal()
	first, err := New(local, 0)
	if err != nil {
		t.Fatal(err)
	}
	first.Inc()
	first.Dec()
	second, err := New(local, MinBlockSize*8)
	if err != nil {
		t.Fatal(err)
	}
	if local.Size() != 1 {
		t.Errorf("expected the too-small pooled context to remain pooled, got %v", local.Size())
	}
	_, capacity, _, _ := second.Stats()
	if capacity < MinBlockSize*8 {
		t.Errorf("expected a fresh context sized to the hint, got %v", capacity)
	}
}

func TestLocalEnforcesMaxPoolSize(t *testing.T) {
	local := NewLocal()
	ctxs := make([]*Context, 0, MaxPoolSize+4)
	for i := 0; i < MaxPoolSize+4; i++ {
		ctx, err := New(local, 0)
		if err != nil {
			t.Fatal(err)
		}
		ctx.Inc()
		ctxs = append(ctxs, ctx)
	}
	for _, ctx := range ctxs {
		ctx.Dec()
	}
	if local.Size() != MaxPoolSize {
		t.Errorf("expected pool to cap at %v, got %v", MaxPoolSize, local.Size())
	}
}

func TestLocalTracksRollingPeak(t *testing.T) {
	local := NewLocal()
	ctx, err := New(local, 0)
	if err != nil {
		t.Fatal(err)
	}
	ctx.Alloc(2048)
	ctx.Inc()
	ctx.Dec()
	if local.AvgPeak() != 2048 {
		t.Errorf("expected avg peak 2048, got %v", local.AvgPeak())
	}
}

func TestLocalTrimsOversizedContextOnReturn(t *testing.T) {
	local := NewLocal()
	ctx, err := New(local, 0)
	if err != nil {
		t.Fatal(err)
	}
	ctx.Alloc(MinBlockSize * 10) // forces a second block, sized to the request
	blocksBefore, _, _, _ := ctx.Stats()
	if blocksBefore < 2 {
		t.Fatalf("expected the allocation burst to span multiple blocks")
	}
	ctx.Inc()
	ctx.Dec()
	reused, err := New(local, 0)
	if err != nil {
		t.Fatal(err)
	}
	blocksAfter, capacity, _, _ := reused.Stats()
	if blocksAfter > blocksBefore {
		t.Errorf("expected trimming to reduce or keep block count, got %v from %v", blocksAfter, blocksBefore)
	}
	if capacity <= 0 {
		t.Errorf("expected a usable capacity after trimming, got %v", capacity)
	}
}

func BenchmarkLocalRoundTrip(b *testing.B) {
	local := NewLocal()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx, err := New(local, 0)
		if err != nil {
			b.Fatal(err)
		}
		ctx.Inc()
		ctx.Dec()
	}
}
