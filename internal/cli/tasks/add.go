package tasks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/energy"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/planner"
	"github.com/julianstephens/enough/internal/utils"
)

type TaskAddCmd struct {
	Name       string `arg:"" optional:"" help:"Task name (omit when using --template)."`
	Template   string `short:"t" help:"Create from a template (ID or name)."`
	Energy     int    `short:"e" help:"Energy cost." default:"20"`
	Duration   int    `short:"d" help:"Duration in minutes." default:"30"`
	EnergyType string `help:"Energy type (focus, physical, social, creative, emotional, admin)." default:"focus"`
	Category   string `short:"c" help:"Category (defaults to the first category)."`
	Priority   string `short:"p" help:"Priority (low, medium, high)." default:"medium"`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	priority, err := models.ParsePriority(c.Priority)
	if err != nil {
		return err
	}

	var intent planner.Intent
	var cost int
	if c.Template != "" {
		tmpl, ok := ctx.Session().Settings().FindTemplate(c.Template)
		if !ok {
			return fmt.Errorf("%w: %s", planner.ErrTemplateMissing, c.Template)
		}
		intent = planner.AddFromTemplate{Template: tmpl, Priority: priority}
		cost = tmpl.EnergyCost
	} else {
		if c.Name == "" {
			return errors.New("a task name or --template is required")
		}
		energyType, err := models.ParseEnergyType(c.EnergyType)
		if err != nil {
			return err
		}
		intent = planner.AddCustom{
			Name:        c.Name,
			EnergyCost:  c.Energy,
			DurationMin: c.Duration,
			EnergyType:  energyType,
			Category:    c.Category,
			Priority:    priority,
		}
		cost = c.Energy
	}

	before := ctx.Session().Energy().Total
	capacity := ctx.Session().Settings().DailyCapacity

	res, err := ctx.Dispatch(intent)
	if err != nil {
		return err
	}
	if res.Task == nil {
		ctx.Faintf("Nothing added.")
		return nil
	}
	printAdded(ctx, *res.Task)
	if over, warn := energy.CapacityWarning(before, capacity, cost); warn {
		ctx.Warnf("This puts you %d over your daily capacity of %d. Maybe that's enough for today?", over, capacity)
	}
	return nil
}

type TaskQuickCmd struct {
	Name []string `arg:"" help:"Task name."`
}

func (c *TaskQuickCmd) Run(ctx *cli.Context) error {
	name := strings.Join(c.Name, " ")
	res, err := ctx.Dispatch(planner.QuickAdd{Name: name})
	if err != nil {
		return err
	}
	if res.Task == nil {
		ctx.Faintf("Nothing added.")
		return nil
	}
	printAdded(ctx, *res.Task)
	return nil
}

func printAdded(ctx *cli.Context, t models.Task) {
	ctx.Successf("Added %s (%d energy, %s, %s) [%s]", t.Name, t.EnergyCost, utils.FormatDuration(t.DurationMin), t.Category, cli.ShortID(t.ID))
}
