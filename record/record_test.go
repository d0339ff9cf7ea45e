package record

import "testing"

func TestMemoryStore(t *testing.T) {
	s := NewMemory()

	if got := s.Best("best_score"); got != 0 {
		t.Fatalf("expected absent key to read 0, got %d", got)
	}

	if err := s.SetBest("best_score", 120); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := s.Best("best_score"); got != 120 {
		t.Fatalf("expected 120, got %d", got)
	}

	// keys are independent
	if got := s.Best("best_distance"); got != 0 {
		t.Fatalf("expected other key untouched, got %d", got)
	}
}
