//go:build !nomemctx

package memctx

import "testing"

func TestSnapshotRestoreRewindsUsage(t *testing.T) {
	ctx, err := New(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	ctx.Alloc(512)
	snap := ctx.Snapshot()
	ctx.Alloc(1024)
	ctx.Restore(snap)
	_, _, used, _ := ctx.Stats()
	if used != 512 {
		t.Errorf("expected used to rewind to 512, got %v", used)
	}
}

func TestSnapshotRestoreDropsTrailingBlocks(t *testing.T) {
	ctx, err := New(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	ctx.Alloc(512)
	snap := ctx.Snapshot()
	ctx.Alloc(MinBlockSize * 4) // forces at least one new block
	blocksBefore, _, _, _ := ctx.Stats()
	if blocksBefore < 2 {
		t.Fatalf("expected the large allocation to append a block")
	}
	ctx.Restore(snap)
	blocksAfter, _, _, _ := ctx.Stats()
	if blocksAfter != 1 {
		t.Errorf("expected restore to drop trailing blocks, got %v", blocksAfter)
	}
}

func TestSnapshotRestoreResetsObjCount(t *testing.T) {
	ctx, err := New(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	snap := ctx.Snapshot()
	ctx.Inc()
	ctx.Inc()
	ctx.Restore(snap)
	if ctx.ObjCount() != 0 {
		t.Errorf("expected obj_count reset to 0, got %v", ctx.ObjCount())
	}
}

func TestNestedSnapshots(t *testing.T) {
	ctx, err := New(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	ctx.Alloc(64)
	outer := ctx.Snapshot()
	ctx.Alloc(64)
	inner := ctx.Snapshot()
	ctx.Alloc(64)
	ctx.Restore(inner)
	_, _, used, _ := ctx.Stats()
	if used != 128 {
		t.Errorf("expected inner restore to land at 128, got %v", used)
	}
	ctx.Restore(outer)
	_, _, used, _ = ctx.Stats()
	if used != 64 {
		t.Errorf("expected outer restore to land at 64, got %v", used)
	}
}

func TestSnapshotOnReleasedContextPanics(t *testing.T) {
	ctx, err := New(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	ctx.Free()
	defer func() {
		if r := recover(); r != ErrorContextReleased {
			t.Errorf("expected ErrorContextReleased panic, got %v", r)
		}
	}()
	ctx.Snapshot()
}
