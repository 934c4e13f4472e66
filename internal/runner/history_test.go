package runner

import "testing"

func TestHistoryKeepsInsertionOrder(t *testing.T) {
	h := NewHistory(5)
	for _, v := range []float64{1, 2, 3} {
		h.Push(v)
	}

	got := h.Values()
	want := []float64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v at %d, got %v", want[i], i, got[i])
		}
	}
}

func TestHistoryEvictsOldestAtCapacity(t *testing.T) {
	h := NewHistory(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		h.Push(v)
	}

	if h.Len() != 3 {
		t.Fatalf("expected length capped at 3, got %d", h.Len())
	}
	got := h.Values()
	want := []float64{3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v at %d, got %v", want[i], i, got[i])
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(3)
	if h.Len() != 0 {
		t.Fatalf("expected empty history, got %d", h.Len())
	}
	if got := h.Values(); len(got) != 0 {
		t.Fatalf("expected no values, got %v", got)
	}
}
