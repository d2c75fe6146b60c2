package tasks

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/daykeep/daykeep/internal/cli"
)

type TaskSkipCmd struct {
	ID     string `arg:"" help:"Task id (or unique prefix)."`
	Reason string `short:"r" help:"Why the task is being skipped. Prompted for when omitted."`
}

func (c *TaskSkipCmd) Run(ctx *cli.Context) error {
	id, err := ctx.ResolveTaskID(c.ID)
	if err != nil {
		return err
	}

	reason := c.Reason
	if reason == "" {
		prompt := huh.NewInput().
			Title("Why are you skipping this task?").
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("a reason is required")
				}
				return nil
			}).
			Value(&reason)
		if err := prompt.Run(); err != nil {
			return err
		}
	}

	task, err := ctx.Registry.Skip(id, reason)
	if err != nil {
		return err
	}

	fmt.Printf("Skipped: %s (%s)\n", task.Title, reason)
	return nil
}
