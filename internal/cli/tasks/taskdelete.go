package tasks

import (
	"fmt"

	"github.com/daykeep/daykeep/internal/cli"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id (or unique prefix)."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	id, err := ctx.ResolveTaskID(c.ID)
	if err != nil {
		return err
	}

	removed, err := ctx.Registry.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("Task %s was already gone\n", cli.ShortID(id))
		return nil
	}

	fmt.Printf("Deleted task %s\n", cli.ShortID(id))
	return nil
}
