package store

import (
	"testing"
)

func TestUpsertAndLookup(t *testing.T) {
	t.Parallel()

	s := New()

	if _, ok := s.Lookup(1); ok {
		t.Fatal("expected absent key to be reported absent")
	}

	prev, existed := s.Upsert(1, []byte("alpha\n"))
	if existed {
		t.Fatal("expected first upsert to report not-existed")
	}
	if prev != nil {
		t.Fatalf("expected nil prev, got %q", prev)
	}

	if s.Size() != 1 {
		t.Fatalf("expected size 1, got %d", s.Size())
	}

	payload, ok := s.Lookup(1)
	if !ok || string(payload) != "alpha\n" {
		t.Fatalf("expected alpha, got %q ok=%v", payload, ok)
	}

	prev, existed = s.Upsert(1, []byte("beta\n"))
	if !existed {
		t.Fatal("expected second upsert to report existed")
	}
	if string(prev) != "alpha\n" {
		t.Fatalf("expected previous payload alpha, got %q", prev)
	}
	if s.Size() != 1 {
		t.Fatalf("expected size unchanged at 1, got %d", s.Size())
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	s := New()
	s.Upsert(1, []byte("a\n"))
	s.Upsert(2, []byte("b\n"))

	prev, existed := s.Remove(1)
	if !existed || string(prev) != "a\n" {
		t.Fatalf("expected to remove a, got %q existed=%v", prev, existed)
	}

	if s.Size() != 1 {
		t.Fatalf("expected size 1 after remove, got %d", s.Size())
	}

	if _, ok := s.Lookup(1); ok {
		t.Fatal("expected key 1 to be gone")
	}

	if _, existed := s.Remove(99); existed {
		t.Fatal("expected remove of absent key to report not-existed")
	}
}

func TestScanOrdering(t *testing.T) {
	t.Parallel()

	s := New()
	// Insert out of order to exercise tree balancing, not just append order.
	keys := []int{5, 3, 1, 4, 2}
	for _, k := range keys {
		s.Upsert(k, []byte{byte('0' + k)})
	}

	var got []int
	s.Scan(1, 5, func(k int, _ []byte) bool {
		got = append(got, k)
		return true
	})

	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestScanRangeAndEarlyStop(t *testing.T) {
	t.Parallel()

	s := New()
	for k := 1; k <= 10; k++ {
		s.Upsert(k, []byte{byte(k)})
	}

	var got []int
	s.Scan(3, 7, func(k int, _ []byte) bool {
		got = append(got, k)
		return k != 5
	})

	want := []int{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("expected early stop at %v, got %v", want, got)
	}
}

func TestShiftDownClosesGap(t *testing.T) {
	t.Parallel()

	s := New()
	for k := 1; k <= 5; k++ {
		s.Upsert(k, []byte{byte('A' + k - 1)})
	}

	// Simulate DELETE(2,3): caller removes keys 2 and 3 first, then shifts.
	s.Remove(2)
	s.Remove(3)
	s.ShiftDown(2, 3)

	if s.Size() != 3 {
		t.Fatalf("expected size 3, got %d", s.Size())
	}

	var got []int
	s.Scan(1, 3, func(k int, _ []byte) bool {
		got = append(got, k)
		return true
	})

	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected renumbered keys %v, got %v", want, got)
		}
	}

	payload, _ := s.Lookup(2)
	if string(payload) != "D" {
		t.Fatalf("expected line D at renumbered index 2, got %q", payload)
	}
}

func TestShiftUpReopensGap(t *testing.T) {
	t.Parallel()

	s := New()
	for k := 1; k <= 3; k++ {
		s.Upsert(k, []byte{byte('A' + k - 1)})
	}

	s.ShiftUp(2, 3)
	s.Upsert(2, []byte("B"))
	s.Upsert(3, []byte("C"))

	if s.Size() != 5 {
		t.Fatalf("expected size 5 after reopening the gap, got %d", s.Size())
	}

	var got []string
	s.Scan(1, 5, func(_ int, payload []byte) bool {
		got = append(got, string(payload))
		return true
	})

	want := []string{"A", "B", "C", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDensityInvariantUnderChurn(t *testing.T) {
	t.Parallel()

	s := New()
	for k := 1; k <= 200; k++ {
		s.Upsert(k, []byte{byte(k % 256)})
	}

	// Delete an interior range and renumber, then verify keys are
	// exactly 1..N with no gaps or duplicates.
	for k := 50; k <= 74; k++ {
		s.Remove(k)
	}
	s.ShiftDown(50, 74)

	if s.Size() != 175 {
		t.Fatalf("expected size 175, got %d", s.Size())
	}

	expected := 1
	s.Scan(1, s.Size(), func(k int, _ []byte) bool {
		if k != expected {
			t.Fatalf("expected contiguous key %d, got %d", expected, k)
		}
		expected++
		return true
	})
	if expected-1 != s.Size() {
		t.Fatalf("scan did not cover all %d keys, stopped at %d", s.Size(), expected-1)
	}
}
