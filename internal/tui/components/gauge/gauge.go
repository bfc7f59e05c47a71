// Package gauge draws an energy.Gauge as a horizontal bar of colored cells.
package gauge

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/enough/internal/energy"
)

const (
	filledCell = "█"
	emptyCell  = "░"
)

var (
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	overflowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Cells splits width cells across the visible segments. Boundaries are
// rounded on the cumulative sum so the cells never exceed width.
func Cells(g energy.Gauge, width int) []int {
	cells := make([]int, len(g.Visible))
	if g.Capacity <= 0 || width <= 0 {
		return cells
	}
	cum, prev := 0, 0
	for i, seg := range g.Visible {
		cum += seg.Value
		edge := int(math.Round(float64(cum) / float64(g.Capacity) * float64(width)))
		edge = min(edge, width)
		cells[i] = edge - prev
		prev = edge
	}
	return cells
}

// Bar renders the gauge without a label.
func Bar(g energy.Gauge, width int) string {
	var b strings.Builder
	used := 0
	for i, n := range Cells(g, width) {
		if n <= 0 {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(g.Visible[i].Color))
		b.WriteString(style.Render(strings.Repeat(filledCell, n)))
		used += n
	}
	if rest := width - used; rest > 0 {
		b.WriteString(emptyStyle.Render(strings.Repeat(emptyCell, rest)))
	}
	if g.OverCapacity && g.Overflow > 0 {
		b.WriteString(overflowStyle.Render(fmt.Sprintf(" +%d", g.Overflow)))
	}
	return b.String()
}

// Label is the "used / capacity" caption shown next to the bar.
func Label(g energy.Gauge) string {
	if g.OverCapacity {
		return overflowStyle.Render(fmt.Sprintf("%d / %d energy (%d over)", g.Total, g.Capacity, g.Overflow))
	}
	return labelStyle.Render(fmt.Sprintf("%d / %d energy, %d left", g.Total, g.Capacity, g.Remaining))
}

// Render joins the bar and its label on one line.
func Render(g energy.Gauge, width int) string {
	return Bar(g, width) + "  " + Label(g)
}

// Legend lists each visible segment with its color swatch.
func Legend(g energy.Gauge) string {
	parts := make([]string, 0, len(g.Visible))
	for _, seg := range g.Visible {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(seg.Color)).Render(filledCell)
		parts = append(parts, fmt.Sprintf("%s %s %d", swatch, seg.Category, seg.Value))
	}
	return strings.Join(parts, "  ")
}
