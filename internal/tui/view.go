package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/planner"
	"github.com/julianstephens/enough/internal/tui/components/gauge"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateOnboarding, constants.StateQuickAdd, constants.StateSchedulePrompt, constants.StateConfirmClear:
		content = docStyle.Render(m.form.View())
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	case constants.StateDayReport:
		content = m.viewDayReport()
	case constants.StateSchedule:
		content = docStyle.Render(m.schedule.View())
	default:
		content = docStyle.Render(m.taskList.View())
	}

	if m.state == constants.StateOnboarding {
		return content
	}

	parts := []string{m.viewHeader(), m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	if m.warning != "" {
		parts = append(parts, warningStyle.Render(m.warning))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewHeader() string {
	g := m.session.Gauge()
	width := min(max(m.width-40, 20), 60)
	header := gauge.Render(g, width)
	if legend := gauge.Legend(g); legend != "" {
		header = lipgloss.JoinVertical(lipgloss.Left, header, legend)
	}
	return headerStyle.Render(header)
}

func (m Model) viewTabs() string {
	current := m.state
	if current != constants.StateList && current != constants.StateSchedule {
		current = m.returnState
	}

	var tabs []string
	for _, tab := range []struct {
		title string
		state constants.SessionState
	}{
		{"Tasks", constants.StateList},
		{"Schedule", constants.StateSchedule},
	} {
		if current == tab.state {
			tabs = append(tabs, activeTabStyle.Render(tab.title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tab.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, max(m.height-headerHeight-4, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q?", m.target.Name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewDayReport() string {
	r := m.report
	if r == nil {
		return ""
	}
	lines := []string{
		r.Message,
		"",
		fmt.Sprintf("Completed: %d / %d (%d%%)", r.Completed, r.Total, r.Percent),
		fmt.Sprintf("Pending energy: %d", r.PendingEnergy),
		"",
	}
	if r.OfferClear {
		lines = append(lines, planner.ClearPrompt, "", "[y] Clear   [n] Keep")
	} else {
		lines = append(lines, "Press any key to continue")
	}
	return lipgloss.Place(m.width, max(m.height-headerHeight-4, 10),
		lipgloss.Center, lipgloss.Center,
		reportStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...)),
	)
}
