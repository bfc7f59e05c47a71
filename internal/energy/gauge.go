package energy

// Gauge holds the values a cup or circle renderer needs: what is visible
// inside the container versus what is logically planned.
type Gauge struct {
	Capacity     int
	Total        int
	Display      int     // min(Total, Capacity), 0 when capacity is not positive
	FillRatio    float64 // 0..1 share of the container that is filled
	OverCapacity bool
	Overflow     int
	Remaining    int
	Visible      []Segment
}

func NewGauge(summary Summary, capacity int) Gauge {
	safeCapacity := capacity
	if safeCapacity <= 0 {
		safeCapacity = 1
	}

	g := Gauge{
		Capacity: capacity,
		Total:    summary.Total,
		Overflow: Overflow(summary.Total, capacity),
		Visible:  Clamp(summary.Segments, capacity),
	}

	if capacity > 0 {
		g.Display = min(summary.Total, capacity)
		g.OverCapacity = summary.Total > capacity
		g.Remaining = max(0, capacity-summary.Total)
	} else {
		g.OverCapacity = summary.Total > 0
	}

	ratio := float64(summary.Total) / float64(safeCapacity)
	if capacity <= 0 {
		ratio = 0
	}
	g.FillRatio = max(0, min(ratio, 1))

	return g
}

// Percent is the planned total as a whole-number percentage of capacity.
func (g Gauge) Percent() int {
	if g.Capacity <= 0 {
		return 0
	}
	return int(float64(g.Total)/float64(g.Capacity)*100 + 0.5)
}
