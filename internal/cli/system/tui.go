package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/logger"
	"github.com/julianstephens/enough/internal/tui"
	"github.com/julianstephens/enough/internal/utils"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if pids, err := utils.OtherInstances(); err == nil && len(pids) > 0 {
		ctx.Warnf("Another enough process is running (pid %v); changes may overwrite each other", pids)
	}

	// Backup after a successful load, before the first write.
	ctx.PerformAutomaticBackup()
	ctx.RecordVisit()

	p := tea.NewProgram(tui.NewModel(ctx.Session()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited with error", "error", err)
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
