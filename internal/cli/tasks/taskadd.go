package tasks

import (
	"fmt"
	"time"

	"github.com/daykeep/daykeep/internal/cli"
	"github.com/daykeep/daykeep/internal/constants"
	"github.com/daykeep/daykeep/internal/registry"
	"github.com/daykeep/daykeep/internal/utils"
)

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Time     string `short:"t" help:"Scheduled time (HH:MM)." required:""`
	Date     string `short:"d" help:"Scheduled date (YYYY-MM-DD). Defaults to today."`
	Duration int    `short:"D" help:"Duration in minutes." default:"30"`
	MustDo   bool   `short:"m" help:"Flag as a must-do task."`
	Notes    string `short:"n" help:"Free-form notes."`
}

func (c *TaskAddCmd) Validate() error {
	if !utils.ValidTime(c.Time) {
		return fmt.Errorf("invalid time format (expected HH:MM): %q", c.Time)
	}
	if c.Date != "" && !utils.ValidDate(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %q", c.Date)
	}
	if c.Duration < constants.MinDurationMin || c.Duration > constants.MaxDurationMin {
		return fmt.Errorf("duration must be between %d and %d minutes",
			constants.MinDurationMin, constants.MaxDurationMin)
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		now, err := utils.NowInTimezone(ctx.Store.Document().Settings.Timezone)
		if err != nil {
			now = time.Now()
		}
		date = now.Format(constants.DateFormat)
	}

	task, err := ctx.Registry.Create(registry.CreateInput{
		Title:       c.Title,
		Time:        c.Time,
		Date:        date,
		DurationMin: c.Duration,
		MustDo:      c.MustDo,
		Notes:       c.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added task %s: %s on %s at %s\n", cli.ShortID(task.ID), task.Title, task.Date, task.Time)
	return nil
}
