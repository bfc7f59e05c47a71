package tasks

import (
	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/planner"
)

// TaskDoneCmd toggles completion, so running it twice undoes it.
type TaskDoneCmd struct {
	Ref string `arg:"" help:"Task number, ID or ID prefix."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	task, err := ctx.ResolveTask(c.Ref)
	if err != nil {
		return err
	}
	res, err := ctx.Dispatch(planner.Toggle{ID: task.ID})
	if err != nil {
		return err
	}
	if res.Task.Completed {
		ctx.Successf("Completed: %s", res.Task.Name)
	} else {
		ctx.Printf("Marked as pending: %s\n", res.Task.Name)
	}
	return nil
}

type TaskDeleteCmd struct {
	Ref string `arg:"" help:"Task number, ID or ID prefix."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := ctx.ResolveTask(c.Ref)
	if err != nil {
		return err
	}
	if _, err := ctx.Dispatch(planner.Delete{ID: task.ID}); err != nil {
		return err
	}
	ctx.Printf("Deleted task: %s (ID: %s)\n", task.Name, cli.ShortID(task.ID))
	return nil
}

type TaskClearCmd struct{}

func (c *TaskClearCmd) Run(ctx *cli.Context) error {
	before := len(ctx.Session().Tasks())
	res, err := ctx.Dispatch(planner.ClearCompleted{})
	if err != nil {
		return err
	}
	if !res.Changed.Has(planner.TasksChanged) {
		ctx.Faintf("No completed tasks to clear.")
		return nil
	}
	ctx.Successf("Cleared %d completed tasks", before-len(ctx.Session().Tasks()))
	return nil
}
