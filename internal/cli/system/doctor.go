package system

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/keyring"
	"github.com/julianstephens/enough/internal/storage"
	"github.com/julianstephens/enough/internal/utils"
	"github.com/julianstephens/enough/internal/validation"
)

type DoctorCmd struct {
	Fix bool `help:"Reassign duplicate task IDs."`
}

type level int

const (
	levelOK level = iota
	levelWarn
	levelFail
	levelSkip
)

type checkResult struct {
	level  level
	detail string
}

func ok() checkResult { return checkResult{level: levelOK} }

func warn(format string, args ...any) checkResult {
	return checkResult{level: levelWarn, detail: fmt.Sprintf(format, args...)}
}

func fail(err error) checkResult {
	return checkResult{level: levelFail, detail: err.Error()}
}

type check struct {
	name string
	// A failing gate check skips every later needsStore check.
	gate       bool
	needsStore bool
	run        func(*cli.Context, *DoctorCmd) checkResult
}

var checks = []check{
	{"Storage reachable", true, false, checkStoreReachable},
	{"Schema version", false, true, checkSchemaVersion},
	{"Stored data readable", false, true, checkDataReadable},
	{"Data validation", false, true, checkValidation},
	{"Backups present", false, true, checkBackupsPresent},
	{"Single instance", false, false, checkSingleInstance},
	{"OS keyring", false, false, checkKeyring},
	{"Clock/timezone", false, false, checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	reachable := true
	for _, c := range checks {
		var res checkResult
		if c.needsStore && !reachable {
			res = checkResult{level: levelSkip, detail: "storage not reachable"}
		} else {
			res = c.run(ctx, cmd)
		}

		switch res.level {
		case levelOK:
			ctx.Successf("%s: OK", c.name)
		case levelWarn:
			ctx.Warnf("%s: WARNING", c.name)
		case levelFail:
			ctx.Failf("%s: FAIL", c.name)
			hasError = true
			if c.gate {
				reachable = false
			}
		case levelSkip:
			ctx.Faintf("⊘ %s: SKIPPED", c.name)
		}
		if res.detail != "" {
			ctx.Println(cli.Indent(res.detail, "   "))
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return errors.New("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context, _ *DoctorCmd) checkResult {
	if err := ctx.Store.Load(); err != nil {
		return fail(fmt.Errorf("failed to load storage: %w", err))
	}
	if _, err := ctx.Store.Keys(context.Background()); err != nil {
		return fail(fmt.Errorf("failed to list keys: %w", err))
	}
	return ok()
}

func checkSchemaVersion(ctx *cli.Context, _ *DoctorCmd) checkResult {
	v, isVersioned := ctx.Store.(storage.Versioned)
	if !isVersioned {
		return ok()
	}
	current, err := v.SchemaVersion(context.Background())
	if err != nil {
		return fail(fmt.Errorf("failed to get current schema version: %w", err))
	}
	latest, err := v.LatestSchemaVersion()
	if err != nil {
		return fail(fmt.Errorf("failed to get latest schema version: %w", err))
	}
	switch {
	case current > latest:
		return fail(fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest))
	case current < latest:
		return fail(fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'enough init')", current, latest))
	}
	return ok()
}

func checkDataReadable(ctx *cli.Context, _ *DoctorCmd) checkResult {
	bg := context.Background()
	var corrupt []string
	note := func(key string, err error) {
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			corrupt = append(corrupt, fmt.Sprintf("%s: %v", key, err))
		}
	}
	_, err := storage.LoadTasks(bg, ctx.Store)
	note(constants.TasksKey, err)
	_, err = storage.LoadSettings(bg, ctx.Store)
	note(constants.SettingsKey, err)
	_, err = storage.LoadStats(bg, ctx.Store)
	note(constants.StatsKey, err)

	if len(corrupt) > 0 {
		r := warn("unreadable data falls back to defaults and is overwritten on the next change")
		for _, c := range corrupt {
			r.detail += "\n" + c
		}
		return r
	}
	return ok()
}

func checkValidation(ctx *cli.Context, cmd *DoctorCmd) checkResult {
	s := ctx.Session()
	tasks := s.Tasks()
	result := validation.New().Validate(tasks, s.Settings(), s.Stats())

	if cmd.Fix && result.HasErrors() {
		fixed, actions := validation.AutoFixDuplicateIDs(result.Conflicts, tasks, ctx.Env.NewID)
		if len(actions) > 0 {
			if err := storage.SaveTasks(context.Background(), ctx.Store, fixed); err != nil {
				return fail(fmt.Errorf("failed to save fixed tasks: %w", err))
			}
			for _, a := range actions {
				ctx.Faintf("   fixed: %s", a.Action)
			}
			result = validation.New().Validate(fixed, s.Settings(), s.Stats())
		}
	}

	switch {
	case result.HasErrors():
		return checkResult{level: levelFail, detail: result.FormatReport()}
	case result.HasConflicts():
		return checkResult{level: levelWarn, detail: result.FormatReport()}
	}
	return ok()
}

func checkBackupsPresent(ctx *cli.Context, _ *DoctorCmd) checkResult {
	backups, err := ctx.BackupManager().ListBackups()
	if err != nil {
		return warn("failed to list backups: %v", err)
	}
	if len(backups) == 0 {
		return warn("no backups found - consider creating one with 'enough backup create'")
	}
	return ok()
}

func checkSingleInstance(_ *cli.Context, _ *DoctorCmd) checkResult {
	pids, err := utils.OtherInstances()
	if err != nil {
		return warn("could not list processes: %v", err)
	}
	if len(pids) > 0 {
		return warn("other enough processes are running: %v", pids)
	}
	return ok()
}

func checkKeyring(_ *cli.Context, _ *DoctorCmd) checkResult {
	status := keyring.CurrentStatus()
	switch {
	case !status.Available:
		return warn("OS keyring unavailable; use %s for PostgreSQL credentials", constants.ConnectionEnvVar)
	case status.HasSecret:
		return checkResult{level: levelOK, detail: "connection string stored"}
	}
	return ok()
}

func checkClockTimezone(_ *cli.Context, _ *DoctorCmd) checkResult {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fail(fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339)))
	}
	if _, err := utils.ParseDate(utils.Today(now)); err != nil {
		return fail(fmt.Errorf("date round trip failed: %w", err))
	}
	return ok()
}
