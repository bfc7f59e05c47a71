// Package onboarding models the first-run walkthrough as a fixed list of
// steps with a cursor.
package onboarding

import (
	"github.com/julianstephens/enough/internal/constants"
)

type StepKind int

const (
	StepWelcome StepKind = iota
	StepCapacity
	StepMetaphor
	StepDone
)

type Step struct {
	Kind  StepKind
	Title string
	Body  string
}

// Steps is the walkthrough in display order.
var Steps = []Step{
	{
		Kind:  StepWelcome,
		Title: "Welcome to Enough! 👋",
		Body:  "Enough helps you plan your day by energy, not just time. Let's get you set up in just a few steps.",
	},
	{
		Kind:  StepCapacity,
		Title: "Your Daily Capacity",
		Body:  "Everyone has different energy levels. What feels like a full day for you?",
	},
	{
		Kind:  StepMetaphor,
		Title: "The Energy Metaphor",
		Body:  "Think of your energy like a cup or circle that fills up as you add tasks. When it's full, you've planned enough for the day.",
	},
	{
		Kind:  StepDone,
		Title: "You're All Set! 🎉",
		Body:  "Start by adding your first task using the templates, or create a custom one. Remember: the goal is to do enough, and feel enough.",
	},
}

// Flow is the walkthrough cursor. OnComplete fires when Next is called on
// the last step.
type Flow struct {
	index      int
	done       bool
	OnComplete func()
}

func New(onComplete func()) *Flow {
	return &Flow{OnComplete: onComplete}
}

func (f *Flow) Current() Step {
	return Steps[f.index]
}

func (f *Flow) Index() int {
	return f.index
}

func (f *Flow) IsLast() bool {
	return f.index == len(Steps)-1
}

func (f *Flow) Done() bool {
	return f.done
}

// Next advances the cursor, or completes the flow on the last step.
func (f *Flow) Next() {
	if !f.IsLast() {
		f.index++
		return
	}
	if f.done {
		return
	}
	f.done = true
	if f.OnComplete != nil {
		f.OnComplete()
	}
}

// Prev moves back one step; it stays on the first step.
func (f *Flow) Prev() {
	if f.index > 0 {
		f.index--
	}
}

// SnapCapacity rounds a capacity to the nearest slider step inside the
// onboarding range.
func SnapCapacity(capacity int) int {
	lo, hi, step := constants.MinOnboardingCapacity, constants.MaxOnboardingCapacity, constants.OnboardingCapacityStep
	if capacity <= lo {
		return lo
	}
	if capacity >= hi {
		return hi
	}
	offset := capacity - lo
	snapped := lo + (offset+step/2)/step*step
	return min(snapped, hi)
}

// CapacityOptions lists every selectable capacity, lowest first.
func CapacityOptions() []int {
	var out []int
	for c := constants.MinOnboardingCapacity; c <= constants.MaxOnboardingCapacity; c += constants.OnboardingCapacityStep {
		out = append(out, c)
	}
	return out
}
