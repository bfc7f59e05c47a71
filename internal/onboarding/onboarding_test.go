package onboarding

import "testing"

func TestFlowCursor(t *testing.T) {
	completed := 0
	f := New(func() { completed++ })

	f.Prev()
	if f.Index() != 0 {
		t.Errorf("Prev on first step moved to %d", f.Index())
	}
	if f.Current().Kind != StepWelcome {
		t.Errorf("first step = %v", f.Current().Kind)
	}

	for i := 0; i < len(Steps)-1; i++ {
		f.Next()
	}
	if !f.IsLast() || f.Current().Kind != StepDone {
		t.Fatalf("expected last step, at %d", f.Index())
	}
	if completed != 0 {
		t.Error("completion fired before the last Next")
	}

	f.Next()
	if completed != 1 || !f.Done() {
		t.Errorf("completed = %d, done = %v", completed, f.Done())
	}
	f.Next()
	if completed != 1 {
		t.Error("completion callback fired twice")
	}

	f.Prev()
	if f.Current().Kind != StepMetaphor {
		t.Errorf("Prev from last = %v", f.Current().Kind)
	}
}

func TestSnapCapacity(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 50},
		{50, 50},
		{54, 50},
		{55, 60},
		{100, 100},
		{149, 150},
		{400, 150},
	}
	for _, tt := range tests {
		if got := SnapCapacity(tt.in); got != tt.want {
			t.Errorf("SnapCapacity(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCapacityOptions(t *testing.T) {
	opts := CapacityOptions()
	if len(opts) != 11 || opts[0] != 50 || opts[len(opts)-1] != 150 {
		t.Errorf("options = %v", opts)
	}
}
