// Package achievements decides which milestones an event unlocks and records
// unlocks on the stats value. Unlocks are one-way.
package achievements

import (
	"time"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/models"
)

type EventKind int

const (
	TaskCompleted EventKind = iota
	TaskInstantiated
	TaskScheduled
	DayCompleted
	VisitRecorded
)

func (k EventKind) String() string {
	switch k {
	case TaskCompleted:
		return "task_completed"
	case TaskInstantiated:
		return "task_instantiated"
	case TaskScheduled:
		return "task_scheduled"
	case DayCompleted:
		return "day_completed"
	case VisitRecorded:
		return "visit_recorded"
	default:
		return "unknown"
	}
}

// Event describes something that just happened. Only the fields relevant to
// the kind are read.
type Event struct {
	Kind EventKind

	// TaskCompleted
	PrevCompleted int
	NextCompleted int

	// TaskInstantiated
	TotalEnergyManaged int

	// TaskScheduled
	Hour int

	// DayCompleted
	Perfect bool

	// VisitRecorded
	Streak int
}

type rule struct {
	id    string
	kind  EventKind
	check func(Event) bool
}

var rules = []rule{
	{constants.AchievementFirstTask, TaskCompleted, func(e Event) bool {
		return e.PrevCompleted == 0 && e.NextCompleted == 1
	}},
	{constants.AchievementEnergyMaster, TaskInstantiated, func(e Event) bool {
		return e.TotalEnergyManaged >= constants.EnergyMasterThreshold
	}},
	{constants.AchievementEarlyBird, TaskScheduled, func(e Event) bool {
		return e.Hour < constants.EarlyBirdBeforeHour
	}},
	{constants.AchievementNightOwl, TaskScheduled, func(e Event) bool {
		return e.Hour >= constants.NightOwlFromHour
	}},
	{constants.AchievementPerfectDay, DayCompleted, func(e Event) bool {
		return e.Perfect
	}},
	{constants.AchievementWeekStreak, VisitRecorded, func(e Event) bool {
		return e.Streak >= constants.WeekStreakDays
	}},
}

// Evaluate returns the achievements whose predicate holds for the event and
// that are not yet unlocked in stats.
func Evaluate(event Event, stats models.UserStats) []string {
	var ids []string
	for _, r := range rules {
		if r.kind != event.Kind || !r.check(event) {
			continue
		}
		if a, ok := stats.Achievement(r.id); ok && a.Unlocked {
			continue
		}
		ids = append(ids, r.id)
	}
	return ids
}

// Unlock marks the achievement unlocked. It reports false, leaving stats
// untouched, when the ID is unknown or already unlocked.
func Unlock(stats models.UserStats, id string, now time.Time) (models.UserStats, bool) {
	for i, a := range stats.Achievements {
		if a.ID != id {
			continue
		}
		if a.Unlocked {
			return stats, false
		}
		out := stats.Clone()
		at := now
		out.Achievements[i].Unlocked = true
		out.Achievements[i].UnlockedAt = &at
		return out, true
	}
	return stats, false
}

// Apply evaluates the event and unlocks everything it earns, returning the
// newly unlocked IDs in rule order.
func Apply(event Event, stats models.UserStats, now time.Time) (models.UserStats, []string) {
	var unlocked []string
	for _, id := range Evaluate(event, stats) {
		var ok bool
		stats, ok = Unlock(stats, id, now)
		if ok {
			unlocked = append(unlocked, id)
		}
	}
	return stats, unlocked
}
