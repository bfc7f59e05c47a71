package tasks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/planner"
)

type TaskScheduleCmd struct {
	Ref  string `arg:"" help:"Task number, ID or ID prefix."`
	Hour string `arg:"" help:"Hour of the day: 0-23, or 12-hour form like 9am or 10pm."`
}

func (c *TaskScheduleCmd) Run(ctx *cli.Context) error {
	hour, err := ParseHour(c.Hour)
	if err != nil {
		return err
	}
	task, err := ctx.ResolveTask(c.Ref)
	if err != nil {
		return err
	}
	if _, err := ctx.Dispatch(planner.Schedule{ID: task.ID, Hour: hour}); err != nil {
		return err
	}
	ctx.Successf("Scheduled %s at %s", task.Name, planner.FormatHour(hour))
	return nil
}

type TaskUnscheduleCmd struct {
	Ref string `arg:"" help:"Task number, ID or ID prefix."`
}

func (c *TaskUnscheduleCmd) Run(ctx *cli.Context) error {
	task, err := ctx.ResolveTask(c.Ref)
	if err != nil {
		return err
	}
	res, err := ctx.Dispatch(planner.Unschedule{ID: task.ID})
	if err != nil {
		return err
	}
	if res.Changed == planner.NoChange {
		ctx.Faintf("%s was not scheduled.", task.Name)
		return nil
	}
	ctx.Successf("Unscheduled %s", task.Name)
	return nil
}

type TaskMoveCmd struct {
	Ref      string `arg:"" help:"Task number, ID or ID prefix."`
	Position int    `arg:"" help:"New 1-based position in the list."`
}

func (c *TaskMoveCmd) Run(ctx *cli.Context) error {
	task, err := ctx.ResolveTask(c.Ref)
	if err != nil {
		return err
	}
	if _, err := ctx.Dispatch(planner.Move{ID: task.ID, Index: c.Position - 1}); err != nil {
		return err
	}
	ctx.Successf("Moved %s", task.Name)
	return nil
}

// ParseHour accepts "14", "2pm", "2 PM" or "12am". The range is checked by
// the planner.
func ParseHour(s string) (int, error) {
	v := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	suffix := ""
	if strings.HasSuffix(v, "am") || strings.HasSuffix(v, "pm") {
		suffix = v[len(v)-2:]
		v = v[:len(v)-2]
	}
	h, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid hour %q", s)
	}
	switch suffix {
	case "am":
		if h < 1 || h > 12 {
			return 0, fmt.Errorf("%w: got %s", planner.ErrInvalidHour, s)
		}
		return h % 12, nil
	case "pm":
		if h < 1 || h > 12 {
			return 0, fmt.Errorf("%w: got %s", planner.ErrInvalidHour, s)
		}
		return h%12 + 12, nil
	}
	return h, nil
}
