package settings

import (
	"fmt"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/onboarding"
	"github.com/julianstephens/enough/internal/planner"
	"github.com/julianstephens/enough/internal/tui/forms"
)

// OnboardCmd runs the welcome flow. Without a terminal the flags are used
// as the answers.
type OnboardCmd struct {
	Capacity int    `help:"Daily energy capacity (snapped to the onboarding range)." default:"100"`
	Style    string `help:"Visualization style (circle or cup)." default:"circle"`
	Force    bool   `help:"Run again even if onboarding was completed."`
}

func (c *OnboardCmd) Run(ctx *cli.Context) error {
	if ctx.Session().Settings().OnboardingCompleted && !c.Force {
		ctx.Faintf("Onboarding already completed. Use --force to run it again.")
		return nil
	}

	style, err := models.ParseVisualizationStyle(c.Style)
	if err != nil {
		return err
	}
	fm := &forms.OnboardingFormModel{
		Capacity: onboarding.SnapCapacity(c.Capacity),
		Style:    style,
	}

	var completeErr error
	complete := func() {
		_, completeErr = ctx.Dispatch(planner.CompleteOnboarding{Capacity: fm.Capacity, Style: fm.Style})
	}

	if ctx.Interactive {
		if err := forms.NewOnboardingForm(fm).Run(); err != nil {
			return fmt.Errorf("onboarding cancelled: %w", err)
		}
		complete()
	} else {
		flow := onboarding.New(complete)
		for !flow.Done() {
			step := flow.Current()
			ctx.Title(fmt.Sprintf("%d/%d %s", flow.Index()+1, len(onboarding.Steps), step.Title))
			ctx.Println(step.Body)
			switch step.Kind {
			case onboarding.StepCapacity:
				ctx.Faintf("Capacity: %d", fm.Capacity)
			case onboarding.StepMetaphor:
				ctx.Faintf("Style: %s", fm.Style)
			}
			ctx.Println()
			flow.Next()
		}
	}
	if completeErr != nil {
		return completeErr
	}
	ctx.Successf("Daily capacity set to %d with the %s view.", fm.Capacity, fm.Style)
	return nil
}
