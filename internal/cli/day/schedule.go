package day

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/planner"
)

var (
	offHoursColor = color.New(color.Faint)
	doneColor     = color.New(color.FgHiBlack, color.CrossedOut)
)

// ScheduleCmd prints the day hour by hour. Hours outside the working window
// are hidden unless they hold tasks or --all is set.
type ScheduleCmd struct {
	All bool `short:"a" help:"Show all 24 hours."`
}

func (c *ScheduleCmd) Run(ctx *cli.Context) error {
	state := ctx.Session().State()
	wh := state.Settings.WorkingHours

	ctx.Title(fmt.Sprintf("Schedule (working hours %s - %s)", planner.FormatHour(wh.Start), planner.FormatHour(wh.End%24)))

	table := uitable.New()
	table.MaxColWidth = 60
	table.Separator = "  "
	for _, slot := range planner.Hours(state) {
		if !c.All && !slot.Working && len(slot.Tasks) == 0 {
			continue
		}
		label := slot.Label
		if !slot.Working {
			label = offHoursColor.Sprint(label)
		}
		energy := ""
		if slot.Energy > 0 {
			energy = fmt.Sprintf("%d", slot.Energy)
		}
		table.AddRow(label, slotTasks(slot), energy)
	}
	ctx.Println(table)

	ctx.Println()
	ctx.Title("Unscheduled")
	ctx.TaskTable(planner.Unscheduled(state))
	return nil
}

func slotTasks(slot planner.HourSlot) string {
	if len(slot.Tasks) == 0 {
		return offHoursColor.Sprint("·")
	}
	names := make([]string, 0, len(slot.Tasks))
	for _, t := range slot.Tasks {
		if t.Completed {
			names = append(names, doneColor.Sprint(t.Name))
			continue
		}
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}
