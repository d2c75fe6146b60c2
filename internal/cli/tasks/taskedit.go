package tasks

import (
	"fmt"

	"github.com/daykeep/daykeep/internal/cli"
	"github.com/daykeep/daykeep/internal/registry"
)

type TaskEditCmd struct {
	ID       string  `arg:"" help:"Task id (or unique prefix)."`
	Title    *string `help:"New title."`
	Time     *string `short:"t" help:"New time (HH:MM)."`
	Date     *string `short:"d" help:"New date (YYYY-MM-DD)."`
	Duration *int    `short:"D" help:"New duration in minutes."`
	MustDo   *bool   `short:"m" help:"Set or clear the must-do flag."`
	Notes    *string `short:"n" help:"New notes."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	id, err := ctx.ResolveTaskID(c.ID)
	if err != nil {
		return err
	}

	ok, err := ctx.Registry.Update(id, registry.TaskPatch{
		Title:       c.Title,
		Time:        c.Time,
		Date:        c.Date,
		DurationMin: c.Duration,
		MustDo:      c.MustDo,
		Notes:       c.Notes,
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("update rejected: the patched task failed validation")
	}

	fmt.Printf("Updated task %s\n", cli.ShortID(id))
	return nil
}
