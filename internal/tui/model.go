// Package tui is the interactive planner: an energy gauge over a task list
// and an hour-by-hour schedule.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/energy"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/planner"
	"github.com/julianstephens/enough/internal/session"
	"github.com/julianstephens/enough/internal/tui/components/schedule"
	"github.com/julianstephens/enough/internal/tui/components/tasklist"
	"github.com/julianstephens/enough/internal/tui/forms"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	headerHeight  = 6
)

type Model struct {
	session        *session.Session
	state          constants.SessionState
	returnState    constants.SessionState
	keys           KeyMap
	help           help.Model
	taskList       tasklist.Model
	schedule       schedule.Model
	form           *huh.Form
	quickForm      *forms.QuickAddFormModel
	scheduleForm   *forms.ScheduleFormModel
	confirmForm    *forms.ConfirmFormModel
	onboardingForm *forms.OnboardingFormModel
	target         models.Task // task a prompt is about
	report         *planner.DayReport
	status         string
	warning        string
	quitting       bool
	width          int
	height         int
}

func NewModel(s *session.Session) Model {
	m := Model{
		session:  s,
		state:    constants.StateList,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		taskList: tasklist.New(s.Tasks(), defaultWidth, defaultHeight-headerHeight),
		schedule: schedule.New(defaultWidth, defaultHeight-headerHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.schedule.SetState(s.State())

	if !s.Settings().OnboardingCompleted {
		m.onboardingForm = &forms.OnboardingFormModel{}
		m.form = forms.NewOnboardingForm(m.onboardingForm)
		m.state = constants.StateOnboarding
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Add, m.keys.CompleteDay}
	if m.state == constants.StateList {
		tk := tasklist.DefaultKeyMap()
		keys = append(keys, tk.Toggle, tk.Schedule, tk.Delete)
	}
	return append(keys, m.keys.Quit, m.keys.Help)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	actions := []key.Binding{m.keys.Add, m.keys.CompleteDay, m.keys.Clear}
	tk := tasklist.DefaultKeyMap()
	tasks := []key.Binding{tk.Toggle, tk.Delete, tk.Schedule, tk.Unschedule, tk.MoveUp, tk.MoveDown}
	return [][]key.Binding{global, actions, tasks}
}

// dispatch applies an intent, refreshes the views and reports errors in the
// status line. It returns false when the intent was rejected.
func (m *Model) dispatch(intent planner.Intent) (planner.Result, bool) {
	res, err := m.session.Dispatch(context.Background(), intent)
	if err != nil {
		m.status = "⚠ " + err.Error()
		return res, false
	}
	m.status = ""
	m.announce(res.Unlocked)
	if werr := m.session.LastWriteError(); werr != nil {
		m.warning = fmt.Sprintf("⚠ Changes could not be saved: %v", werr)
	}
	m.refresh()
	return res, true
}

func (m *Model) announce(ids []string) {
	if len(ids) == 0 {
		return
	}
	stats := m.session.Stats()
	for _, id := range ids {
		if a, ok := stats.Achievement(id); ok {
			m.status = fmt.Sprintf("%s Achievement unlocked: %s", a.Icon, a.Title)
		}
	}
}

func (m *Model) refresh() {
	m.taskList.SetTasks(m.session.Tasks())
	m.schedule.SetState(m.session.State())
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
}

// capacityWarning is the nudge shown when a quick add overflows the day.
func (m *Model) capacityWarning(before int) {
	capacity := m.session.Settings().DailyCapacity
	if over, warn := energy.CapacityWarning(before, capacity, constants.QuickAddEnergy); warn {
		m.setStatus("This puts you %d over your daily capacity of %d. Maybe that's enough for today?", over, capacity)
	}
}
