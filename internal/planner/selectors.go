package planner

import (
	"fmt"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/models"
)

// Pending returns the tasks that are not completed.
func Pending(s State) []models.Task {
	var out []models.Task
	for _, t := range s.Tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Unscheduled returns pending tasks without an hour, the pool shown beside
// the schedule view.
func Unscheduled(s State) []models.Task {
	var out []models.Task
	for _, t := range s.Tasks {
		if !t.Completed && !t.IsScheduled() {
			out = append(out, t)
		}
	}
	return out
}

// HourSlot is one row of the schedule view.
type HourSlot struct {
	Hour    int
	Label   string
	Tasks   []models.Task
	Energy  int
	Working bool
}

// Hours returns one slot per hour of the day. Energy counts only pending tasks.
func Hours(s State) []HourSlot {
	slots := make([]HourSlot, 0, constants.MaxHour+1)
	for h := constants.MinHour; h <= constants.MaxHour; h++ {
		slots = append(slots, HourSlot{
			Hour:    h,
			Label:   FormatHour(h),
			Working: s.Settings.WorkingHours.Contains(h),
		})
	}
	for _, t := range s.Tasks {
		h, ok := t.Hour()
		if !ok || !models.ValidHour(h) {
			continue
		}
		slots[h].Tasks = append(slots[h].Tasks, t)
		if !t.Completed {
			slots[h].Energy += t.EnergyCost
		}
	}
	return slots
}

// FormatHour renders an hour on a 12-hour clock, e.g. "12 AM", "3 PM".
func FormatHour(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
