// Package tasks holds the `enough task` subcommands.
package tasks

type TaskCmd struct {
	Add        TaskAddCmd        `cmd:"" help:"Add a task from a template or custom fields."`
	Quick      TaskQuickCmd      `cmd:"" help:"Quick-add a task with default energy and duration."`
	List       TaskListCmd       `cmd:"" help:"List tasks." default:"1"`
	Done       TaskDoneCmd       `cmd:"" help:"Toggle a task between done and pending."`
	Delete     TaskDeleteCmd     `cmd:"" help:"Delete a task."`
	Schedule   TaskScheduleCmd   `cmd:"" help:"Place a task at an hour of the day."`
	Unschedule TaskUnscheduleCmd `cmd:"" help:"Remove a task from the schedule."`
	Move       TaskMoveCmd       `cmd:"" help:"Move a task to a new list position."`
	Clear      TaskClearCmd      `cmd:"" help:"Remove all completed tasks."`
}
