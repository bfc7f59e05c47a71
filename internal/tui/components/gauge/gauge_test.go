package gauge

import (
	"strings"
	"testing"

	"github.com/julianstephens/enough/internal/energy"
)

func gaugeOf(capacity int, values ...int) energy.Gauge {
	var segs []energy.Segment
	total := 0
	for i, v := range values {
		segs = append(segs, energy.Segment{Category: string(rune('a' + i)), Value: v, Color: "#ffffff"})
		total += v
	}
	return energy.NewGauge(energy.Summary{Total: total, Overflow: energy.Overflow(total, capacity), Segments: segs}, capacity)
}

func sum(cells []int) int {
	n := 0
	for _, c := range cells {
		n += c
	}
	return n
}

func TestCells(t *testing.T) {
	tests := []struct {
		name     string
		g        energy.Gauge
		width    int
		wantSum  int
		wantLast int
	}{
		{"half full", gaugeOf(100, 25, 25), 20, 10, 5},
		{"exactly full", gaugeOf(100, 40, 60), 20, 20, 12},
		{"over capacity clamps", gaugeOf(100, 70, 70), 20, 20, 6},
		{"thirds round on cumulative", gaugeOf(90, 30, 30, 30), 10, 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := Cells(tt.g, tt.width)
			if got := sum(cells); got != tt.wantSum {
				t.Errorf("sum = %d, want %d (%v)", got, tt.wantSum, cells)
			}
			if cells[len(cells)-1] != tt.wantLast {
				t.Errorf("last = %d, want %d (%v)", cells[len(cells)-1], tt.wantLast, cells)
			}
		})
	}
}

func TestCellsZeroCapacity(t *testing.T) {
	g := gaugeOf(0, 10)
	if sum(Cells(g, 20)) != 0 {
		t.Error("zero capacity should draw nothing")
	}
}

func TestLabel(t *testing.T) {
	if l := Label(gaugeOf(100, 40)); !strings.Contains(l, "40 / 100") || !strings.Contains(l, "60 left") {
		t.Errorf("Label = %q", l)
	}
	if l := Label(gaugeOf(100, 80, 50)); !strings.Contains(l, "30 over") {
		t.Errorf("Label = %q", l)
	}
}

func TestBarMarksOverflow(t *testing.T) {
	if b := Bar(gaugeOf(50, 60), 10); !strings.Contains(b, "+10") {
		t.Errorf("Bar = %q", b)
	}
}
