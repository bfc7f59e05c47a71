// Package energy derives the energy view-model (totals, overflow, category
// segments and gauge values) from a task list and settings. Every function
// here is pure; results are recomputed from scratch on each call.
package energy

import (
	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/models"
)

// Segment is one category's contribution to the pending energy total.
type Segment struct {
	Category string `json:"category" yaml:"category"`
	Value    int    `json:"value" yaml:"value"`
	Color    string `json:"color" yaml:"color"`
}

// Summary is the aggregated energy state for a task list.
type Summary struct {
	Total    int       `json:"total" yaml:"total"`
	Overflow int       `json:"overflow" yaml:"overflow"`
	Segments []Segment `json:"segments" yaml:"segments"`
}

var categoryColors = map[string]string{
	"work":     "#6366f1",
	"personal": "#f97316",
	"home":     "#10b981",
	"health":   "#ef4444",
	"creative": "#a855f7",
	"social":   "#0ea5e9",
}

// ColorFor returns the display color for a category, falling back to the
// neutral default for categories outside the built-in table.
func ColorFor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return constants.DefaultCategoryColor
}

// Compute sums pending (not completed) energy and breaks it down by category.
// Segments follow the declared category order first, then undeclared
// categories in the order they are first encountered in tasks.
func Compute(tasks []models.Task, settings models.Settings) Summary {
	totals := make(map[string]int)
	var encountered []string
	total := 0

	for _, task := range tasks {
		if task.Completed {
			continue
		}
		if _, seen := totals[task.Category]; !seen {
			encountered = append(encountered, task.Category)
		}
		totals[task.Category] += task.EnergyCost
		total += task.EnergyCost
	}

	segments := make([]Segment, 0, len(totals))
	declared := make(map[string]bool, len(settings.Categories))
	for _, category := range settings.Categories {
		if declared[category] {
			continue
		}
		declared[category] = true
		if v := totals[category]; v > 0 {
			segments = append(segments, Segment{Category: category, Value: v, Color: ColorFor(category)})
		}
	}
	for _, category := range encountered {
		if declared[category] {
			continue
		}
		if v := totals[category]; v > 0 {
			segments = append(segments, Segment{Category: category, Value: v, Color: ColorFor(category)})
		}
	}

	return Summary{
		Total:    total,
		Overflow: Overflow(total, settings.DailyCapacity),
		Segments: segments,
	}
}

// Overflow is the pending energy beyond capacity, never negative.
func Overflow(total, capacity int) int {
	if total > capacity {
		return total - capacity
	}
	return 0
}

// Clamp returns the part of segments that fits inside capacity. Segments are
// consumed in order; the first one that exceeds the remaining budget is
// truncated to it and everything after is dropped.
func Clamp(segments []Segment, capacity int) []Segment {
	if capacity <= 0 {
		return []Segment{}
	}

	remaining := capacity
	out := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		if remaining <= 0 {
			break
		}
		if seg.Value <= 0 {
			continue
		}
		if seg.Value > remaining {
			seg.Value = remaining
		}
		out = append(out, seg)
		remaining -= seg.Value
	}
	return out
}

// Sum adds up segment values.
func Sum(segments []Segment) int {
	total := 0
	for _, s := range segments {
		total += s.Value
	}
	return total
}

// CapacityWarning reports how far over capacity adding energy would go.
// ok is false when the addition still fits.
func CapacityWarning(current, capacity, energy int) (overflow int, ok bool) {
	if current+energy > capacity {
		return current + energy - capacity, true
	}
	return 0, false
}
