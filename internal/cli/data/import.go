package data

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/daykeep/daykeep/internal/cli"
)

type ImportCmd struct {
	File string `arg:"" help:"Previously exported JSON document."`
	Yes  bool   `short:"y" help:"Skip the overwrite confirmation."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	raw, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	if !c.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title("Importing replaces matching sections of your current data. Continue?").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Import(raw); err != nil {
		return err
	}

	doc := ctx.Store.Document()
	fmt.Printf("Imported: %d tasks, %d skip entries, %d reflections\n",
		len(doc.Tasks), len(doc.SkipBank), len(doc.Reflections))
	return nil
}
