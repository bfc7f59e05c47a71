package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/tui/components/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		bodyHeight := max(msg.Height-headerHeight-2, 3)
		m.taskList.SetSize(msg.Width-4, bodyHeight)
		m.schedule.SetSize(msg.Width-4, bodyHeight)
		return m, nil
	}

	switch m.state {
	case constants.StateOnboarding:
		return m, m.handleOnboarding(msg)
	case constants.StateQuickAdd:
		return m, m.handleQuickAdd(msg)
	case constants.StateSchedulePrompt:
		return m, m.handleSchedulePrompt(msg)
	case constants.StateConfirmClear:
		return m, m.handleConfirmClear(msg)
	case constants.StateConfirmDelete:
		return m, m.handleConfirmDelete(msg)
	case constants.StateDayReport:
		return m, m.handleDayReport(msg)
	}

	switch msg := msg.(type) {
	case tasklist.ToggleTaskMsg, tasklist.DeleteTaskMsg, tasklist.ScheduleTaskMsg,
		tasklist.UnscheduleTaskMsg, tasklist.MoveTaskMsg:
		return m, m.handleTaskMessage(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.session.Flush(context.Background())
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
			if m.state == constants.StateList {
				m.state = constants.StateSchedule
			} else {
				m.state = constants.StateList
			}
			return m, nil
		case key.Matches(msg, m.keys.Add):
			return m, m.startQuickAdd()
		case key.Matches(msg, m.keys.CompleteDay):
			m.completeDay()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			return m, m.startConfirmClear()
		}
	}

	var cmd tea.Cmd
	if m.state == constants.StateSchedule {
		m.schedule, cmd = m.schedule.Update(msg)
	} else {
		m.taskList, cmd = m.taskList.Update(msg)
	}
	return m, cmd
}
