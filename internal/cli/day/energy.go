// Package day holds the commands that look at today as a whole: the energy
// gauge, the hour-by-hour schedule and completing the day.
package day

import (
	"fmt"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/planner"
	"github.com/julianstephens/enough/internal/tui/components/gauge"
)

const gaugeWidth = 40

type EnergyCmd struct{}

func (c *EnergyCmd) Run(ctx *cli.Context) error {
	s := ctx.Session()
	g := s.Gauge()

	ctx.Title("Energy")
	ctx.Println(gauge.Render(g, gaugeWidth))
	if legend := gauge.Legend(g); legend != "" {
		ctx.Println(legend)
	}
	ctx.Println()

	state := s.State()
	ctx.KeyValues([][2]any{
		{"Planned", fmt.Sprintf("%d (%d%%)", g.Total, g.Percent())},
		{"Capacity", g.Capacity},
		{"Remaining", g.Remaining},
		{"Pending tasks", len(planner.Pending(state))},
		{"Unscheduled", len(planner.Unscheduled(state))},
	})
	if g.OverCapacity {
		ctx.Warnf("You're %d over capacity. Remember: you are enough.", g.Overflow)
	}
	return nil
}
