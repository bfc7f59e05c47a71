package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/cli/backups"
	"github.com/julianstephens/enough/internal/cli/day"
	"github.com/julianstephens/enough/internal/cli/settings"
	"github.com/julianstephens/enough/internal/cli/stats"
	"github.com/julianstephens/enough/internal/cli/system"
	"github.com/julianstephens/enough/internal/cli/tasks"
	"github.com/julianstephens/enough/internal/constants"
	apperrors "github.com/julianstephens/enough/internal/errors"
	"github.com/julianstephens/enough/internal/logger"
	"github.com/julianstephens/enough/internal/storage/backend"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage location: a SQLite file, a .json file, a directory, a PostgreSQL connection string, or 'postgres' to use ${conn_env} or the OS keyring. Credentials must NOT be embedded in the connection string." env:"ENOUGH_CONFIG" default:"${default_config}"`
	Debug   bool   `help:"Log debug output to stderr as well as the log file."`

	Init    system.InitCmd    `cmd:"" help:"Initialize enough storage."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Keyring system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Task     tasks.TaskCmd      `cmd:"" help:"Manage today's tasks."`
	Add      tasks.TaskQuickCmd `cmd:"" help:"Quick-add a task (same as 'task quick')."`
	Energy   day.EnergyCmd      `cmd:"" help:"Show the energy gauge for today."`
	Schedule day.ScheduleCmd    `cmd:"" help:"Show today hour by hour."`
	Complete day.CompleteCmd    `cmd:"" help:"Complete the day and see how it went."`

	Settings     settings.SettingsCmd  `cmd:"" help:"Show or change settings."`
	Category     settings.CategoryCmd  `cmd:"" help:"Manage categories."`
	Template     settings.TemplateCmd  `cmd:"" help:"Manage task templates."`
	Onboard      settings.OnboardCmd   `cmd:"" help:"Run the welcome flow."`
	Stats        stats.StatsCmd        `cmd:"" help:"Show streaks and totals."`
	Achievements stats.AchievementsCmd `cmd:"" help:"List achievements."`
	Export       stats.ExportCmd       `cmd:"" help:"Export all data as YAML or JSON."`
	Backup       backups.BackupCmd     `cmd:"" help:"Manage backups."`
}

// Commands that manage storage themselves or should not count as a visit.
var noVisit = map[string]bool{
	"init":    true,
	"tui":     true,
	"doctor":  true,
	"keyring": true,
	"backup":  true,
	"export":  true,
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("An energy-based daily planner. Plan enough, do enough, be enough."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"conn_env":       constants.ConnectionEnvVar,
		},
	)

	configDir := backend.ConfigDir(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	command := strings.Fields(ctx.Command())[0]
	logger.Debug("Starting", "command", ctx.Command(), "config", configDir)

	// The keyring command works without storage.
	if command == "keyring" {
		if apperrors.Report(os.Stderr, ctx.Run(cli.NewContext(nil, configDir))) {
			return 1
		}
		return 0
	}

	store, err := backend.Open(CLI.Config)
	if apperrors.Report(os.Stderr, err) {
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close storage", "error", err)
		}
	}()

	// Load the store before running the command (init handles its own setup)
	if command != "init" {
		if apperrors.Report(os.Stderr, backend.Ready(store)) {
			return 1
		}
	}

	appCtx := cli.NewContext(store, configDir)
	if !noVisit[command] {
		appCtx.RecordVisit()
	}

	if apperrors.Report(os.Stderr, ctx.Run(appCtx)) {
		return 1
	}
	return 0
}
