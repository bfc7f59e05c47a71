// Package schedule shows the day hour by hour in a scrollable viewport.
package schedule

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/enough/internal/energy"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/planner"
)

var (
	hourStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(7)

	offHourStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(7)

	taskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	energyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginTop(1)
)

type Model struct {
	viewport    viewport.Model
	slots       []planner.HourSlot
	unscheduled []models.Task
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetState refreshes the slots and the unscheduled pool from planner state.
func (m *Model) SetState(s planner.State) {
	m.slots = planner.Hours(s)
	m.unscheduled = planner.Unscheduled(s)
	m.Render()
}

func (m *Model) Render() {
	m.viewport.SetContent(Content(m.slots, m.unscheduled))
}

// Content renders every hour followed by the unscheduled tasks.
func Content(slots []planner.HourSlot, unscheduled []models.Task) string {
	var b strings.Builder
	for _, slot := range slots {
		style := hourStyle
		if !slot.Working {
			style = offHourStyle
		}
		b.WriteString(style.Render(slot.Label))

		for i, t := range slot.Tasks {
			if i > 0 {
				b.WriteString(", ")
			} else {
				b.WriteString(" ")
			}
			b.WriteString(taskName(t))
		}
		if slot.Energy > 0 {
			b.WriteString(energyStyle.Render(fmt.Sprintf("  %d energy", slot.Energy)))
		}
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("Unscheduled"))
	b.WriteString("\n")
	if len(unscheduled) == 0 {
		b.WriteString(energyStyle.Render("  nothing floating"))
		b.WriteString("\n")
	}
	for _, t := range unscheduled {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(energy.ColorFor(t.Category))).Render("●")
		fmt.Fprintf(&b, "  %s %s %s\n", swatch, taskName(t), energyStyle.Render(fmt.Sprintf("%d", t.EnergyCost)))
	}
	return b.String()
}

func taskName(t models.Task) string {
	if t.Completed {
		return doneStyle.Render(t.Name)
	}
	return taskStyle.Render(t.Name)
}
