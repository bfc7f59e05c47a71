package tasks

import (
	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/planner"
)

type TaskListCmd struct {
	Pending     bool `help:"Only show tasks that are not completed."`
	Unscheduled bool `help:"Only show pending tasks without an hour."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	state := ctx.Session().State()

	var tasks []models.Task
	title := "Tasks"
	switch {
	case c.Unscheduled:
		tasks, title = planner.Unscheduled(state), "Unscheduled tasks"
	case c.Pending:
		tasks, title = planner.Pending(state), "Pending tasks"
	default:
		tasks = state.Tasks
	}

	ctx.Title(title)
	ctx.TaskTable(tasks)
	return nil
}
