package day

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/planner"
	"github.com/julianstephens/enough/internal/storage"
)

func setupContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ctx := cli.NewContext(storage.NewMemoryStore(), t.TempDir())
	ctx.Out = &out
	ctx.Interactive = false
	n := 0
	ctx.Env = planner.Env{
		Now: func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
	return ctx, &out
}

func addTasks(t *testing.T, ctx *cli.Context, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := ctx.Dispatch(planner.QuickAdd{Name: name}); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCompleteWithNoTasks(t *testing.T) {
	ctx, out := setupContext(t)
	if err := (&CompleteCmd{}).Run(ctx); err != nil {
		t.Fatalf("empty day should not be an error: %v", err)
	}
	if !strings.Contains(out.String(), planner.NoTasksMessage) {
		t.Errorf("output = %q", out.String())
	}
}

func TestCompleteKeepsTasksByDefault(t *testing.T) {
	ctx, out := setupContext(t)
	addTasks(t, ctx, "A", "B")
	if _, err := ctx.Dispatch(planner.Toggle{ID: "id-1"}); err != nil {
		t.Fatal(err)
	}

	if err := (&CompleteCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.Session().Tasks()) != 2 {
		t.Error("completing the day must not clear tasks on its own")
	}
	if !strings.Contains(out.String(), "50%") || !strings.Contains(out.String(), "enough task clear") {
		t.Errorf("output = %q", out.String())
	}
	if ctx.Session().Stats().PerfectDays != 0 {
		t.Error("partial day is not perfect")
	}
}

func TestCompleteClearsWhenAsked(t *testing.T) {
	ctx, out := setupContext(t)
	addTasks(t, ctx, "A", "B")
	for _, id := range []string{"id-1", "id-2"} {
		if _, err := ctx.Dispatch(planner.Toggle{ID: id}); err != nil {
			t.Fatal(err)
		}
	}

	if err := (&CompleteCmd{Clear: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.Session().Tasks()) != 0 {
		t.Errorf("expected tasks cleared, got %d", len(ctx.Session().Tasks()))
	}
	if ctx.Session().Stats().PerfectDays != 1 {
		t.Errorf("PerfectDays = %d", ctx.Session().Stats().PerfectDays)
	}
	for _, want := range []string{"Perfect day!", "Perfect Balance", "Cleared 2"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestEnergyReportsOverCapacity(t *testing.T) {
	ctx, out := setupContext(t)
	for i := 0; i < 6; i++ {
		addTasks(t, ctx, fmt.Sprintf("Task %d", i))
	}

	if err := (&EnergyCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "20 over capacity") {
		t.Errorf("expected overflow warning, got:\n%s", out.String())
	}
}

func TestScheduleHidesEmptyOffHours(t *testing.T) {
	ctx, out := setupContext(t)
	addTasks(t, ctx, "Late call", "Floating")
	if _, err := ctx.Dispatch(planner.Schedule{ID: "id-1", Hour: 23}); err != nil {
		t.Fatal(err)
	}

	if err := (&ScheduleCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "11 PM") || !strings.Contains(got, "Late call") {
		t.Errorf("scheduled off-hours slot missing:\n%s", got)
	}
	if strings.Contains(got, "3 AM") {
		t.Errorf("empty off-hours slot shown:\n%s", got)
	}
	if !strings.Contains(got, "Floating") {
		t.Errorf("unscheduled pool missing:\n%s", got)
	}

	out.Reset()
	if err := (&ScheduleCmd{All: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "3 AM") {
		t.Error("--all should show every hour")
	}
}

func TestCompleteFlagsAreExclusive(t *testing.T) {
	var grammar struct {
		Complete CompleteCmd `cmd:""`
	}
	parser, err := kong.New(&grammar, kong.Name("enough"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"no flags", []string{"complete"}, false},
		{"clear", []string{"complete", "--clear"}, false},
		{"keep", []string{"complete", "--keep"}, false},
		{"clear and keep", []string{"complete", "--clear", "--keep"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grammar.Complete = CompleteCmd{}
			_, err := parser.Parse(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}
