package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/planner"
	"github.com/julianstephens/enough/internal/tui/components/tasklist"
	"github.com/julianstephens/enough/internal/tui/forms"
)

// updateForm feeds msg to the active form. Esc aborts it.
func (m *Model) updateForm(msg tea.Msg) (tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return nil, true
	}
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	return cmd, m.form.State == huh.StateAborted
}

func (m *Model) closeForm() {
	m.form = nil
	m.state = m.returnState
}

func (m *Model) handleTaskMessage(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tasklist.ToggleTaskMsg:
		if res, ok := m.dispatch(planner.Toggle{ID: msg.ID}); ok && res.Task != nil && m.status == "" {
			if res.Task.Completed {
				m.setStatus("✓ %s", res.Task.Name)
			} else {
				m.setStatus("○ %s is pending again", res.Task.Name)
			}
		}
	case tasklist.DeleteTaskMsg:
		if task, ok := m.taskList.Selected(); ok && task.ID == msg.ID {
			m.target = task
			m.returnState = m.state
			m.state = constants.StateConfirmDelete
		}
	case tasklist.ScheduleTaskMsg:
		m.target = msg.Task
		hour, ok := msg.Task.Hour()
		if !ok {
			hour = m.session.Settings().WorkingHours.Start
		}
		m.scheduleForm = &forms.ScheduleFormModel{Hour: hour}
		m.form = forms.NewScheduleForm(m.scheduleForm, msg.Task.Name)
		m.returnState = m.state
		m.state = constants.StateSchedulePrompt
		return m.form.Init()
	case tasklist.UnscheduleTaskMsg:
		if res, ok := m.dispatch(planner.Unschedule{ID: msg.ID}); ok && res.Changed == planner.NoChange {
			m.setStatus("Task was not scheduled")
		}
	case tasklist.MoveTaskMsg:
		m.dispatch(planner.Move{ID: msg.ID, Index: msg.Index})
	}
	return nil
}

func (m *Model) startQuickAdd() tea.Cmd {
	m.quickForm = &forms.QuickAddFormModel{}
	m.form = forms.NewQuickAddForm(m.quickForm)
	m.returnState = m.state
	m.state = constants.StateQuickAdd
	return m.form.Init()
}

func (m *Model) handleQuickAdd(msg tea.Msg) tea.Cmd {
	cmd, aborted := m.updateForm(msg)
	if aborted {
		m.closeForm()
		return nil
	}
	if m.form.State == huh.StateCompleted {
		m.closeForm()
		m.quickAdd(m.quickForm.Name)
	}
	return cmd
}

func (m *Model) quickAdd(name string) {
	before := m.session.Energy().Total
	res, ok := m.dispatch(planner.QuickAdd{Name: forms.TrimName(name)})
	if !ok || res.Task == nil {
		return
	}
	if m.status == "" {
		m.setStatus("Added %s", res.Task.Name)
	}
	m.capacityWarning(before)
}

func (m *Model) handleSchedulePrompt(msg tea.Msg) tea.Cmd {
	cmd, aborted := m.updateForm(msg)
	if aborted {
		m.closeForm()
		return nil
	}
	if m.form.State == huh.StateCompleted {
		m.closeForm()
		if _, ok := m.dispatch(planner.Schedule{ID: m.target.ID, Hour: m.scheduleForm.Hour}); ok && m.status == "" {
			m.setStatus("Scheduled %s at %s", m.target.Name, planner.FormatHour(m.scheduleForm.Hour))
		}
	}
	return cmd
}

func (m *Model) handleConfirmDelete(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			m.state = m.returnState
			if _, ok := m.dispatch(planner.Delete{ID: m.target.ID}); ok {
				m.setStatus("Deleted %s", m.target.Name)
			}
		case "n", "N", "esc":
			m.state = m.returnState
		}
	}
	return nil
}

func (m *Model) startConfirmClear() tea.Cmd {
	if len(m.session.Tasks()) == len(planner.Pending(m.session.State())) {
		m.setStatus("No completed tasks to clear")
		return nil
	}
	m.confirmForm = &forms.ConfirmFormModel{}
	m.form = forms.NewConfirmForm(m.confirmForm, "Clear all completed tasks?", "Clear", "Keep")
	m.returnState = m.state
	m.state = constants.StateConfirmClear
	return m.form.Init()
}

func (m *Model) handleConfirmClear(msg tea.Msg) tea.Cmd {
	cmd, aborted := m.updateForm(msg)
	if aborted {
		m.closeForm()
		return nil
	}
	if m.form.State == huh.StateCompleted {
		m.closeForm()
		if m.confirmForm.Confirmed {
			m.clearCompleted()
		}
	}
	return cmd
}

func (m *Model) clearCompleted() {
	before := len(m.session.Tasks())
	if _, ok := m.dispatch(planner.ClearCompleted{}); ok {
		m.setStatus("Cleared %d completed tasks. Fresh start!", before-len(m.session.Tasks()))
	}
}

// completeDay shows the day report. Tasks are only cleared if the user
// answers the prompt on the report.
func (m *Model) completeDay() {
	res, err := m.session.Dispatch(context.Background(), planner.CompleteDay{})
	if errors.Is(err, planner.ErrNoTasks) {
		m.status = planner.NoTasksMessage
		return
	}
	if err != nil {
		m.status = "⚠ " + err.Error()
		return
	}
	m.status = ""
	m.announce(res.Unlocked)
	m.report = res.Report
	m.returnState = m.state
	m.state = constants.StateDayReport
}

func (m *Model) handleDayReport(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.report != nil && m.report.OfferClear {
		switch keyMsg.String() {
		case "y", "Y":
			m.report = nil
			m.state = m.returnState
			m.clearCompleted()
		case "n", "N", "esc":
			m.report = nil
			m.state = m.returnState
		}
		return nil
	}
	m.report = nil
	m.state = m.returnState
	return nil
}

func (m *Model) handleOnboarding(msg tea.Msg) tea.Cmd {
	cmd, aborted := m.updateForm(msg)
	if aborted {
		// Skipping keeps the defaults; the flow runs again next launch.
		m.form = nil
		m.state = constants.StateList
		return nil
	}
	if m.form.State == huh.StateCompleted {
		m.form = nil
		m.state = constants.StateList
		if _, ok := m.dispatch(planner.CompleteOnboarding{
			Capacity: m.onboardingForm.Capacity,
			Style:    m.onboardingForm.Style,
		}); ok {
			m.setStatus("Daily capacity set to %d. Press 'a' to add your first task.", m.onboardingForm.Capacity)
		}
	}
	return cmd
}
