package system

import (
	"fmt"

	"github.com/daykeep/daykeep/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	// The store creates default contents on first load; by the time a
	// command runs this has already happened. Report where things live.
	used, quota, err := ctx.Store.Usage()
	if err != nil {
		return err
	}

	doc := ctx.Store.Document()
	fmt.Printf("daykeep data: %s\n", ctx.Config.DataPath)
	fmt.Printf("  document version: %d\n", doc.Version)
	fmt.Printf("  tasks: %d, reflections: %d, skip entries: %d\n",
		len(doc.Tasks), len(doc.Reflections), len(doc.SkipBank))
	fmt.Printf("  storage: %d of %d bytes used\n", used, quota)
	return nil
}
