package day

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/planner"
)

// CompleteCmd ends the day. It never clears tasks on its own; completed
// tasks are only removed after the user agrees.
type CompleteCmd struct {
	Clear bool `help:"Clear completed tasks without asking." xor:"clear"`
	Keep  bool `help:"Keep completed tasks without asking." xor:"clear"`
}

func (c *CompleteCmd) Run(ctx *cli.Context) error {
	res, err := ctx.Dispatch(planner.CompleteDay{})
	if errors.Is(err, planner.ErrNoTasks) {
		ctx.Println(planner.NoTasksMessage)
		return nil
	}
	if err != nil {
		return err
	}

	report := res.Report
	ctx.DayReport(report)
	if !report.OfferClear || c.Keep {
		return nil
	}

	doClear := c.Clear
	if !doClear && ctx.Interactive {
		if err := huh.NewConfirm().
			Title(planner.ClearPrompt).
			Affirmative("Clear").
			Negative("Keep").
			Value(&doClear).
			Run(); err != nil {
			return err
		}
	}
	if !doClear {
		if !ctx.Interactive {
			ctx.Faintf("Run `enough task clear` to remove completed tasks.")
		}
		return nil
	}

	if _, err := ctx.Dispatch(planner.ClearCompleted{}); err != nil {
		return err
	}
	ctx.Successf("Cleared %d completed tasks", report.Completed)
	return nil
}
