package data

import (
	"fmt"
	"os"

	"github.com/daykeep/daykeep/internal/cli"
)

type ExportCmd struct {
	Format string `short:"f" help:"Export format: json (full document) or csv (tasks only)." default:"json" enum:"json,csv"`
	Out    string `short:"o" help:"Write to this file instead of stdout."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	var data []byte
	var err error
	switch c.Format {
	case "csv":
		data, err = ctx.Store.ExportCSV()
	default:
		data, err = ctx.Store.ExportJSON()
	}
	if err != nil {
		return err
	}

	if c.Out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(c.Out, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported %s to %s\n", c.Format, c.Out)
	return nil
}
