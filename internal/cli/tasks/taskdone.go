package tasks

import (
	"fmt"

	"github.com/daykeep/daykeep/internal/cli"
	"github.com/daykeep/daykeep/internal/constants"
)

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task id (or unique prefix)."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	id, err := ctx.ResolveTaskID(c.ID)
	if err != nil {
		return err
	}

	task, err := ctx.Registry.Complete(id)
	if err != nil {
		return err
	}

	doc := ctx.Store.Document()
	fmt.Printf("Completed: %s (+%d points, %d today, streak %d)\n",
		task.Title, constants.CompletionPoints, doc.Streak.Score, doc.Streak.Current)
	return nil
}
