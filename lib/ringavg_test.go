package lib

import "testing"

func TestRingAvgEmpty(t *testing.T) {
	r := NewRingAvg(4)
	if mean := r.Mean(); mean != 0 {
		t.Errorf("expected 0, got %v", mean)
	} else if n := r.Samples(); n != 0 {
		t.Errorf("expected 0, got %v", n)
	}
}

func TestRingAvgFillsThenWraps(t *testing.T) {
	r := NewRingAvg(4)
	for _, sample := range []int64{10, 20, 30} {
		r.Add(sample)
	}
	if n := r.Samples(); n != 3 {
		t.Errorf("expected 3, got %v", n)
	}
	if mean := r.Mean(); mean != 20 {
		t.Errorf("expected 20, got %v", mean)
	}

	r.Add(40) // ring now full: 10,20,30,40
	if n := r.Samples(); n != 4 {
		t.Errorf("expected 4, got %v", n)
	} else if mean := r.Mean(); mean != 25 {
		t.Errorf("expected 25, got %v", mean)
	}

	r.Add(100) // evicts 10: 20,30,40,100
	if n := r.Samples(); n != 4 {
		t.Errorf("expected len unchanged at 4, got %v", n)
	}
	if mean := r.Mean(); mean != 47 {
		t.Errorf("expected 47, got %v", mean)
	}
}

func TestRingAvgPanicsOnBadLength(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic")
		}
	}()
	NewRingAvg(0)
}

func BenchmarkRingAvgAdd(b *testing.B) {
	r := NewRingAvg(32)
	for i := 0; i < b.N; i++ {
		r.Add(int64(i))
	}
}
