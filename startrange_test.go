package timewheel

import "testing"

func TestStartRangeInvalidRange(t *testing.T) {
	w := NewWheel()
	tm := NewTimeout()
	if err := w.StartRange(tm, 10, 5, nil); err != ErrInvalidRange {
		t.Fatalf("StartRange(min>max) = %v, want ErrInvalidRange", err)
	}
	if tm.linked() {
		t.Fatalf("a rejected StartRange must not link the timeout")
	}
}

func TestStartRangeAlignsDownFromMax(t *testing.T) {
	w := NewWheel()
	tm := NewTimeout()

	// order(max^min) = order(12^8) = order(0b0100) = 2, mask clears
	// the low 2 bits: 12 & ^0b11 = 12.
	if err := w.StartRange(tm, 8, 12, "payload"); err != nil {
		t.Fatalf("StartRange returned %v", err)
	}
	if got := tm.Expiry(); got != 12 {
		t.Errorf("Expiry() = %d, want 12", got)
	}
	if tm.Payload() != "payload" {
		t.Errorf("Payload() = %v, want %q", tm.Payload(), "payload")
	}
	if !tm.linked() {
		t.Errorf("StartRange should have started the timeout")
	}
}

func TestStartRangeEqualBoundsIsExact(t *testing.T) {
	w := NewWheel()
	tm := NewTimeout()
	if err := w.StartRange(tm, 42, 42, nil); err != nil {
		t.Fatalf("StartRange returned %v", err)
	}
	if got := tm.Expiry(); got != 42 {
		t.Errorf("Expiry() = %d, want 42", got)
	}
}
