package tasklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/planner"
	"github.com/julianstephens/enough/internal/utils"
)

type ToggleTaskMsg struct {
	ID string
}

type DeleteTaskMsg struct {
	ID   string
	Name string
}

type ScheduleTaskMsg struct {
	Task models.Task
}

type UnscheduleTaskMsg struct {
	ID string
}

// MoveTaskMsg asks for a task to be placed at Index in the full list.
type MoveTaskMsg struct {
	ID    string
	Index int
}

type Item struct {
	Task  models.Task
	Index int
}

func (i Item) Title() string {
	if i.Task.Completed {
		return "✓ " + i.Task.Name
	}
	return "○ " + i.Task.Name
}

func (i Item) Description() string {
	parts := []string{
		fmt.Sprintf("%d energy", i.Task.EnergyCost),
		utils.FormatDuration(i.Task.DurationMin),
		i.Task.Category,
		string(i.Task.Priority),
	}
	if h, ok := i.Task.Hour(); ok {
		parts = append(parts, "@ "+planner.FormatHour(h))
	}
	return strings.Join(parts, " | ")
}

func (i Item) FilterValue() string { return i.Task.Name }

type KeyMap struct {
	Toggle     key.Binding
	Delete     key.Binding
	Schedule   key.Binding
	Unschedule key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Schedule: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "schedule"),
		),
		Unschedule: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unschedule"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(tasks []models.Task, width, height int) Model {
	l := list.New(toItems(tasks), list.NewDefaultDelegate(), width, height)
	l.Title = "Tasks"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Delete, keys.Schedule}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Delete, keys.Schedule, keys.Unschedule, keys.MoveUp, keys.MoveDown}
	}

	return Model{list: l, keys: keys}
}

func toItems(tasks []models.Task) []list.Item {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{Task: t, Index: i}
	}
	return items
}

// SetTasks replaces the items and keeps the cursor on the same task when it
// still exists.
func (m *Model) SetTasks(tasks []models.Task) {
	selectedID := ""
	if i, ok := m.list.SelectedItem().(Item); ok {
		selectedID = i.Task.ID
	}
	m.list.SetItems(toItems(tasks))
	for i, t := range tasks {
		if t.ID == selectedID {
			m.list.Select(i)
			return
		}
	}
	if idx := m.list.Index(); idx >= len(tasks) && len(tasks) > 0 {
		m.list.Select(len(tasks) - 1)
	}
}

// Selected returns the task under the cursor.
func (m Model) Selected() (models.Task, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Task, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if i, ok := m.list.SelectedItem().(Item); ok {
			switch {
			case key.Matches(msg, m.keys.Toggle):
				return m, func() tea.Msg { return ToggleTaskMsg{ID: i.Task.ID} }
			case key.Matches(msg, m.keys.Delete):
				return m, func() tea.Msg { return DeleteTaskMsg{ID: i.Task.ID, Name: i.Task.Name} }
			case key.Matches(msg, m.keys.Schedule):
				return m, func() tea.Msg { return ScheduleTaskMsg{Task: i.Task} }
			case key.Matches(msg, m.keys.Unschedule):
				return m, func() tea.Msg { return UnscheduleTaskMsg{ID: i.Task.ID} }
			case key.Matches(msg, m.keys.MoveUp):
				if i.Index > 0 {
					return m, func() tea.Msg { return MoveTaskMsg{ID: i.Task.ID, Index: i.Index - 1} }
				}
				return m, nil
			case key.Matches(msg, m.keys.MoveDown):
				if i.Index < len(m.list.Items())-1 {
					return m, func() tea.Msg { return MoveTaskMsg{ID: i.Task.ID, Index: i.Index + 1} }
				}
				return m, nil
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No tasks yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
