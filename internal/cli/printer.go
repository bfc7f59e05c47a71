package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/planner"
	"github.com/julianstephens/enough/internal/utils"
)

var (
	titleColor   = color.New(color.Bold, color.Underline)
	faintColor   = color.New(color.Faint)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	idColor      = color.New(color.FgHiYellow, color.Faint)
	doneColor    = color.New(color.FgHiBlack, color.CrossedOut)
	unlockColor  = color.New(color.FgHiMagenta, color.Bold)
)

func (c *Context) Title(title string) {
	_, _ = titleColor.Fprintln(c.Out, title)
}

func (c *Context) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...any) {
	_, _ = fmt.Fprintln(c.Out, args...)
}

func (c *Context) Faintf(format string, args ...any) {
	_, _ = faintColor.Fprintf(c.Out, format+"\n", args...)
}

func (c *Context) Successf(format string, args ...any) {
	_, _ = successColor.Fprintf(c.Out, "✓ "+format+"\n", args...)
}

func (c *Context) Warnf(format string, args ...any) {
	_, _ = warnColor.Fprintf(c.Out, "⚠ "+format+"\n", args...)
}

func (c *Context) Failf(format string, args ...any) {
	_, _ = errorColor.Fprintf(c.Out, "❌ "+format+"\n", args...)
}

// Unlocked announces newly unlocked achievements by title.
func (c *Context) Unlocked(ids []string) {
	if len(ids) == 0 {
		return
	}
	stats := c.Session().Stats()
	for _, id := range ids {
		a, ok := stats.Achievement(id)
		if !ok {
			continue
		}
		_, _ = unlockColor.Fprintf(c.Out, "%s Achievement unlocked: %s\n", a.Icon, a.Title)
	}
}

// TaskTable renders tasks with their list position so they can be
// referenced by number.
func (c *Context) TaskTable(tasks []models.Task) {
	if len(tasks) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(c.Out, " none")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("#", "ID", "", "NAME", "ENERGY", "CATEGORY", "PRIORITY", "DURATION", "HOUR")
	for i, t := range tasks {
		check := "[ ]"
		name := t.Name
		if t.Completed {
			check = "[x]"
			name = doneColor.Sprint(t.Name)
		}
		hour := "-"
		if h, ok := t.Hour(); ok {
			hour = planner.FormatHour(h)
		}
		table.AddRow(
			i+1,
			idColor.Sprint(ShortID(t.ID)),
			check,
			name,
			t.EnergyCost,
			t.Category,
			t.Priority,
			utils.FormatDuration(t.DurationMin),
			hour,
		)
	}
	c.Println(table)
}

func (c *Context) TemplateTable(templates []models.TaskTemplate) {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("ID", "NAME", "ENERGY", "DURATION", "TYPE", "CATEGORY")
	for _, t := range templates {
		table.AddRow(idColor.Sprint(ShortID(t.ID)), t.Name, t.EnergyCost, utils.FormatDuration(t.DurationMin), t.EnergyType, t.Category)
	}
	c.Println(table)
}

// KeyValues prints aligned label/value pairs.
func (c *Context) KeyValues(rows [][2]any) {
	table := uitable.New()
	for _, r := range rows {
		table.AddRow(fmt.Sprintf("  %v:", r[0]), r[1])
	}
	c.Println(table)
}

func OnOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (c *Context) DayReport(r *planner.DayReport) {
	c.Title("Day Complete")
	c.Println(r.Message)
	c.KeyValues([][2]any{
		{"Completed", fmt.Sprintf("%d / %d (%d%%)", r.Completed, r.Total, r.Percent)},
		{"Pending energy", r.PendingEnergy},
		{"Perfect day", YesNo(r.Perfect)},
	})
}

func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Indent prefixes every line of s.
func Indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
