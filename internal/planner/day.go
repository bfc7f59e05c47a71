package planner

import (
	"fmt"
	"time"

	"github.com/julianstephens/enough/internal/achievements"
	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/energy"
)

// DayReport summarizes the day when the user marks it done.
type DayReport struct {
	Completed      int     `json:"completed" yaml:"completed"`
	Total          int     `json:"total" yaml:"total"`
	CompletionRate float64 `json:"completionRate" yaml:"completion_rate"`
	// Percent is rounded down so an unfinished day never reads 100.
	Percent        int     `json:"percent" yaml:"percent"`
	PendingEnergy  int     `json:"pendingEnergy" yaml:"pending_energy"`
	Perfect        bool    `json:"perfect" yaml:"perfect"`
	Message        string  `json:"message" yaml:"message"`
	OfferClear     bool    `json:"offerClear" yaml:"offer_clear"`
}

// ClearPrompt is the question asked after a day report when completed tasks exist.
const ClearPrompt = "Would you like to clear completed tasks for a fresh start tomorrow?"

// CompleteDay produces the day report and records a perfect day. It never
// clears or reschedules tasks; ClearCompleted is a separate, optional step.
type CompleteDay struct{}

func (CompleteDay) Apply(s State, env Env) (State, Result, error) {
	total := len(s.Tasks)
	if total == 0 {
		return s, Result{}, ErrNoTasks
	}

	completed := 0
	for _, t := range s.Tasks {
		if t.Completed {
			completed++
		}
	}

	pending := energy.Compute(s.Tasks, s.Settings).Total
	rate := float64(completed) / float64(total)
	report := &DayReport{
		Completed:      completed,
		Total:          total,
		CompletionRate: rate,
		Percent:        completed * 100 / total,
		PendingEnergy:  pending,
		Perfect:        completed == total && pending <= s.Settings.DailyCapacity,
		OfferClear:     completed > 0,
	}
	report.Message = dayMessage(completed == total, report.Percent)

	if !report.Perfect {
		return s, Result{Report: report}, nil
	}

	next := s.Clone()
	next.Stats.PerfectDays++
	var unlocked []string
	next.Stats, unlocked = achievements.Apply(achievements.Event{
		Kind:    achievements.DayCompleted,
		Perfect: true,
	}, next.Stats, env.Now())

	return next, Result{Changed: StatsChanged, Unlocked: unlocked, Report: report}, nil
}

func dayMessage(all bool, percent int) string {
	switch {
	case all:
		return "🎉 Perfect day! You completed everything. You did enough, and you ARE enough!"
	case percent >= 80:
		return fmt.Sprintf("✨ Amazing work! You completed %d%% of your tasks. That's more than enough!", percent)
	case percent >= 60:
		return fmt.Sprintf("💪 Great job! You completed %d%% of your tasks. You did enough today!", percent)
	default:
		return fmt.Sprintf("🌟 You completed %d%% of your tasks. Every step forward counts. You are enough!", percent)
	}
}

// RecordVisit counts a day of use toward the streak. Day is interpreted in
// its own location; only the calendar date matters.
type RecordVisit struct {
	Day time.Time
}

func (r RecordVisit) Apply(s State, env Env) (State, Result, error) {
	day := r.Day
	if day.IsZero() {
		day = env.Now()
	}
	today := day.Format(constants.DateFormat)
	if s.Stats.LastActiveDay == today {
		return s, Result{}, nil
	}

	next := s.Clone()
	yesterday := day.AddDate(0, 0, -1).Format(constants.DateFormat)
	if s.Stats.LastActiveDay == yesterday {
		next.Stats.CurrentStreak++
	} else {
		next.Stats.CurrentStreak = 1
	}
	next.Stats.LongestStreak = max(next.Stats.LongestStreak, next.Stats.CurrentStreak)
	next.Stats.LastActiveDay = today

	var unlocked []string
	next.Stats, unlocked = achievements.Apply(achievements.Event{
		Kind:   achievements.VisitRecorded,
		Streak: next.Stats.CurrentStreak,
	}, next.Stats, env.Now())

	return next, Result{Changed: StatsChanged, Unlocked: unlocked}, nil
}
