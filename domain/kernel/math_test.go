package kernel

import "testing"

func TestBpsApply(t *testing.T) {
	cases := []struct {
		x, bps, want uint64
	}{
		{2_000_000, 7500, 1_500_000},
		{0, 7500, 0},
		{100, 0, 0},
		{100, 10000, 100},
		{1, 1, 0}, // floor(1*1/10000) = 0
	}
	for _, c := range cases {
		got, err := BpsApply(c.x, c.bps)
		if err != nil {
			t.Fatalf("BpsApply(%d, %d) returned error: %v", c.x, c.bps, err)
		}
		if got != c.want {
			t.Errorf("BpsApply(%d, %d) = %d, want %d", c.x, c.bps, got, c.want)
		}
	}
}

func TestWeighted(t *testing.T) {
	got, err := Weighted(1_500_000, 5_000_000, 10_000_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 750_000 {
		t.Errorf("Weighted = %d, want 750000", got)
	}

	if _, err := Weighted(1, 1, 0); err != ErrArithmeticOverflow {
		t.Errorf("expected ErrArithmeticOverflow for zero total, got %v", err)
	}
}

func TestWeightedLargeIntermediate(t *testing.T) {
	// a*b overflows 64 bits but the true quotient still fits.
	x := uint64(1<<63) + 1000
	got, err := Weighted(x, x, x)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != x {
		t.Errorf("Weighted(x, x, x) = %d, want %d", got, x)
	}
}

func TestMinCap(t *testing.T) {
	if got := MinCap(500, 0); got != 500 {
		t.Errorf("MinCap with cap=0 should be uncapped, got %d", got)
	}
	if got := MinCap(500, 300); got != 300 {
		t.Errorf("MinCap(500, 300) = %d, want 300", got)
	}
	if got := MinCap(200, 300); got != 200 {
		t.Errorf("MinCap(200, 300) = %d, want 200", got)
	}
}

func TestSafeAddSafeSub(t *testing.T) {
	sum, err := SafeAdd(1, 2)
	if err != nil || sum != 3 {
		t.Errorf("SafeAdd(1,2) = %d, %v; want 3, nil", sum, err)
	}

	if _, err := SafeAdd(^uint64(0), 1); err != ErrArithmeticOverflow {
		t.Errorf("expected overflow error, got %v", err)
	}

	diff, err := SafeSub(5, 3)
	if err != nil || diff != 2 {
		t.Errorf("SafeSub(5,3) = %d, %v; want 2, nil", diff, err)
	}

	if _, err := SafeSub(3, 5); err != ErrArithmeticOverflow {
		t.Errorf("expected underflow error, got %v", err)
	}
}
