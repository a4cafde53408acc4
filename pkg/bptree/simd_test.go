package bptree

import (
	"testing"

	"arenabtree/pkg/arena"
)

// TestSIMDEligibility verifies the reflect-based gate picks out exactly
// int32 among a handful of representative Key types.
func TestSIMDEligibility(t *testing.T) {
	if !simdEligible(int32(0)) {
		t.Errorf("expected int32 to be SIMD-eligible")
	}
	if simdEligible(int64(0)) {
		t.Errorf("expected int64 to be SIMD-ineligible")
	}
	if simdEligible(uint32(0)) {
		t.Errorf("expected uint32 (unsigned) to be SIMD-ineligible")
	}
	if simdEligible(float32(0)) {
		t.Errorf("expected float32 to be SIMD-ineligible")
	}
}

// TestSIMDLeafScanTailLanesNotTrusted verifies that a leaf with
// numKeys not a multiple of 8 never reports a hit against the
// indeterminate data left in the tail lanes of its last chunk, per
// spec.md §8's boundary behavior on SIMD tail lanes.
func TestSIMDLeafScanTailLanesNotTrusted(t *testing.T) {
	g := newGeometry(16, 4, 8)
	a, err := arena.New(1 << 12)
	if err != nil {
		t.Fatalf("arena.New: %v", err)
	}
	defer a.Close()

	_, buf, err := a.Allocate(g.nodeSize)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	n := makeNode[int32, int64](buf, g)
	n.setLeaf(true)
	n.setNumKeys(5)
	for i := 0; i < 5; i++ {
		n.setKeyAt(i, int32(i*10))
		n.setValueAt(i, int64(i))
	}
	// Poison the unused tail slots (indices 5..15) with a value that
	// would look like a hit if the scan ever read past numKeys.
	for i := 5; i < 16; i++ {
		n.setKeyAt(i, 777)
		n.setValueAt(i, 9999)
	}

	if _, ok := simdLeafScan(n, int32(777)); ok {
		t.Errorf("simdLeafScan returned a hit for key 777, which only exists in an indeterminate tail slot")
	}
	if v, ok := simdLeafScan(n, int32(20)); !ok || v != 2 {
		t.Errorf("simdLeafScan(20) = (%v, %v), want (2, true)", v, ok)
	}
}

// TestSIMDDescendMatchesLinearDescend verifies simdDescend agrees with
// the shared linear descent rule across chunk boundaries, including
// when numKeys exceeds one 8-wide chunk.
func TestSIMDDescendMatchesLinearDescend(t *testing.T) {
	g := newGeometry(20, 4, 8)
	a, err := arena.New(1 << 12)
	if err != nil {
		t.Fatalf("arena.New: %v", err)
	}
	defer a.Close()

	_, buf, err := a.Allocate(g.nodeSize)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	n := makeNode[int32, int64](buf, g)
	n.setLeaf(false)
	n.setNumKeys(17)
	for i := 0; i < 17; i++ {
		n.setKeyAt(i, int32(i*10))
	}

	for _, probe := range []int32{-5, 0, 1, 75, 80, 159, 160, 1000} {
		want := linearDescend(n, probe)
		got := simdDescend(n, probe)
		if got != want {
			t.Errorf("simdDescend(%d) = %d, want %d (linearDescend)", probe, got, want)
		}
	}
}

// TestPrefetchIsANoOp verifies prefetch never panics regardless of
// input, matching spec.md's "hints only" guarantee.
func TestPrefetchIsANoOp(t *testing.T) {
	prefetch(nil)
	prefetch([]byte{1, 2, 3})
}
