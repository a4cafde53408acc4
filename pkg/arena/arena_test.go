// These tests provide coverage for the Arena's allocation,
// alignment, accounting, and reset behavior.
package arena

import (
	"bytes"
	"errors"
	"testing"
)

// TestNewRejectsNonPositiveCapacity verifies that New refuses to
// construct an arena with a zero or negative capacity.
func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -4096} {
		if _, err := New(capacity); !errors.Is(err, ErrAllocationFailed) {
			t.Errorf("New(%d): expected ErrAllocationFailed, got %v", capacity, err)
		}
	}
}

// TestAllocateWithinCapacity verifies that Allocate returns usable,
// distinct, ascending-offset blocks while capacity remains.
func TestAllocateWithinCapacity(t *testing.T) {
	a, err := New(4096)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	ref1, b1, err := a.Allocate(10)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(b1) != 10 {
		t.Errorf("expected 10-byte view, got %d", len(b1))
	}

	ref2, b2, err := a.Allocate(10)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(b2) != 10 {
		t.Errorf("expected 10-byte view, got %d", len(b2))
	}

	if ref2 <= ref1 {
		t.Errorf("expected ref2 (%d) > ref1 (%d)", ref2, ref1)
	}
	if ref2-ref1 != align {
		t.Errorf("expected allocations to be spaced by the 64-byte alignment, got %d", ref2-ref1)
	}

	copy(b1, []byte("first data"))
	copy(b2, []byte("second dta"))
	if bytes.Equal(b1, b2) {
		t.Error("expected distinct, non-overlapping allocations")
	}
}

// TestAllocateRoundsUpToAlignment verifies every block begins on a
// 64-byte boundary regardless of the requested size.
func TestAllocateRoundsUpToAlignment(t *testing.T) {
	a, err := New(4096)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	for _, size := range []int{1, 63, 64, 65, 127} {
		ref, _, err := a.Allocate(size)
		if err != nil {
			t.Fatalf("Allocate(%d): %v", size, err)
		}
		if uint32(ref)%align != 0 {
			t.Errorf("Allocate(%d): ref %d is not 64-byte aligned", size, ref)
		}
		a.Reset()
	}
}

// TestOutOfArena verifies that Allocate fails once the arena's
// capacity is exhausted, without ever exceeding the arena's capacity.
func TestOutOfArena(t *testing.T) {
	a, err := New(128)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if _, _, err := a.Allocate(64); err != nil {
		t.Fatalf("first Allocate(64): %v", err)
	}
	if _, _, err := a.Allocate(64); err != nil {
		t.Fatalf("second Allocate(64): %v", err)
	}
	if _, _, err := a.Allocate(1); !errors.Is(err, ErrOutOfArena) {
		t.Errorf("expected ErrOutOfArena, got %v", err)
	}
	if a.Used() > a.Capacity() {
		t.Errorf("used (%d) exceeds capacity (%d)", a.Used(), a.Capacity())
	}
}

// TestResetReclaimsCapacity verifies Reset makes the full capacity
// available again and that accounting returns to zero.
func TestResetReclaimsCapacity(t *testing.T) {
	a, err := New(128)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if _, _, err := a.Allocate(128); err != nil {
		t.Fatalf("Allocate(128): %v", err)
	}
	if _, _, err := a.Allocate(1); !errors.Is(err, ErrOutOfArena) {
		t.Fatalf("expected arena to be full before reset, got %v", err)
	}

	a.Reset()
	if a.Used() != 0 {
		t.Errorf("expected Used() == 0 after Reset, got %d", a.Used())
	}
	if _, _, err := a.Allocate(128); err != nil {
		t.Errorf("Allocate(128) after Reset: %v", err)
	}
}

// TestUsedAccounting verifies Used() tracks the sum of rounded
// allocation sizes, matching spec.md §8's arena accounting property.
func TestUsedAccounting(t *testing.T) {
	a, err := New(1024)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	sizes := []int{1, 64, 65, 200}
	want := 0
	for _, size := range sizes {
		if _, _, err := a.Allocate(size); err != nil {
			t.Fatalf("Allocate(%d): %v", size, err)
		}
		want += alignUp(size)
	}

	if a.Used() != want {
		t.Errorf("Used() = %d, want %d", a.Used(), want)
	}
}

// TestViewRoundTrip verifies that View reproduces the same bytes
// written through the slice originally returned by Allocate.
func TestViewRoundTrip(t *testing.T) {
	a, err := New(256)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	ref, buf, err := a.Allocate(16)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	copy(buf, []byte("0123456789abcdef"))

	view := a.View(ref, 16)
	if !bytes.Equal(view, buf) {
		t.Errorf("View mismatch: got %q, want %q", view, buf)
	}
}

// TestCloseIsIdempotent verifies Close can be called more than once
// without error, mirroring the teacher's Storage.Close expectations.
func TestCloseIsIdempotent(t *testing.T) {
	a, err := New(64)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
