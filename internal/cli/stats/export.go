package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/energy"
	"github.com/julianstephens/enough/internal/models"
)

// Export is the document written by `enough export`.
type Export struct {
	Version    string           `json:"version" yaml:"version"`
	ExportedAt time.Time        `json:"exportedAt" yaml:"exported_at"`
	Energy     energy.Summary   `json:"energy" yaml:"energy"`
	Tasks      []models.Task    `json:"tasks" yaml:"tasks"`
	Settings   models.Settings  `json:"settings" yaml:"settings"`
	Stats      models.UserStats `json:"stats" yaml:"stats"`
}

type ExportCmd struct {
	Format string `short:"f" help:"Output format." enum:"yaml,json" default:"yaml"`
	Output string `short:"o" help:"Write to a file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	s := ctx.Session()
	doc := Export{
		Version:    constants.Version,
		ExportedAt: ctx.Env.Now().UTC(),
		Energy:     s.Energy(),
		Tasks:      s.Tasks(),
		Settings:   s.Settings(),
		Stats:      s.Stats(),
	}
	if doc.Tasks == nil {
		doc.Tasks = []models.Task{}
	}

	w := ctx.Out
	if c.Output != "" {
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := Write(w, doc, c.Format); err != nil {
		return err
	}
	if c.Output != "" {
		ctx.Successf("Exported %d tasks to %s", len(doc.Tasks), c.Output)
	}
	return nil
}

// Write encodes doc as yaml or json.
func Write(w io.Writer, doc Export, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}
