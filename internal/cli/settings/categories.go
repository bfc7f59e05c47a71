package settings

import (
	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/planner"
)

type CategoryCmd struct {
	List   CategoryListCmd   `cmd:"" help:"List categories." default:"1"`
	Add    CategoryAddCmd    `cmd:"" help:"Add a category."`
	Remove CategoryRemoveCmd `cmd:"" help:"Remove a category. Tasks keep their category name."`
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *cli.Context) error {
	settings := ctx.Session().Settings()
	ctx.Title("Categories")
	for i, name := range settings.Categories {
		suffix := ""
		if i == 0 {
			suffix = " (default)"
		}
		ctx.Printf("  %s%s\n", name, suffix)
	}
	return nil
}

type CategoryAddCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryAddCmd) Run(ctx *cli.Context) error {
	res, err := ctx.Dispatch(planner.AddCategory{Name: c.Name})
	if err != nil {
		return err
	}
	if res.Changed == planner.NoChange {
		ctx.Faintf("Nothing added.")
		return nil
	}
	ctx.Successf("Added category %s", c.Name)
	return nil
}

type CategoryRemoveCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryRemoveCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Dispatch(planner.RemoveCategory{Name: c.Name}); err != nil {
		return err
	}
	ctx.Successf("Removed category %s", c.Name)
	return nil
}
