package settings

import (
	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/planner"
)

type TemplateCmd struct {
	List   TemplateListCmd   `cmd:"" help:"List task templates." default:"1"`
	Add    TemplateAddCmd    `cmd:"" help:"Add a task template."`
	Remove TemplateRemoveCmd `cmd:"" help:"Remove a template by ID or name."`
}

type TemplateListCmd struct{}

func (c *TemplateListCmd) Run(ctx *cli.Context) error {
	ctx.Title("Templates")
	ctx.TemplateTable(ctx.Session().Settings().Templates)
	return nil
}

type TemplateAddCmd struct {
	Name       string `arg:"" help:"Template name."`
	Energy     int    `short:"e" help:"Energy cost." required:""`
	Duration   int    `short:"d" help:"Duration in minutes." default:"30"`
	EnergyType string `help:"Energy type (focus, physical, social, creative, emotional, admin)." default:"focus"`
	Category   string `short:"c" help:"Category (defaults to the first category)."`
}

func (c *TemplateAddCmd) Run(ctx *cli.Context) error {
	energyType, err := models.ParseEnergyType(c.EnergyType)
	if err != nil {
		return err
	}
	if _, err := ctx.Dispatch(planner.AddTemplate{Template: models.TaskTemplate{
		Name:        c.Name,
		EnergyCost:  c.Energy,
		DurationMin: c.Duration,
		EnergyType:  energyType,
		Category:    c.Category,
	}}); err != nil {
		return err
	}
	ctx.Successf("Added template %s", c.Name)
	return nil
}

type TemplateRemoveCmd struct {
	Ref string `arg:"" help:"Template ID or name."`
}

func (c *TemplateRemoveCmd) Run(ctx *cli.Context) error {
	tmpl, _ := ctx.Session().Settings().FindTemplate(c.Ref)
	if _, err := ctx.Dispatch(planner.RemoveTemplate{Ref: c.Ref}); err != nil {
		return err
	}
	ctx.Successf("Removed template %s", tmpl.Name)
	return nil
}
