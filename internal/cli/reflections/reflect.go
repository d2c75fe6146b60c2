package reflections

import (
	"fmt"
	"time"

	"github.com/daykeep/daykeep/internal/cli"
	"github.com/daykeep/daykeep/internal/constants"
	"github.com/daykeep/daykeep/internal/models"
	"github.com/daykeep/daykeep/internal/utils"
)

type ReflectAddCmd struct {
	Mood         int    `arg:"" help:"Mood for the day, 1 (rough) to 5 (great)."`
	Date         string `short:"d" help:"Date (YYYY-MM-DD). Defaults to today."`
	Achievements string `short:"a" help:"What went well."`
	Improvements string `short:"i" help:"What to improve."`
}

func (c *ReflectAddCmd) Validate() error {
	if c.Mood < 1 || c.Mood > 5 {
		return fmt.Errorf("mood must be between 1 and 5")
	}
	if c.Date != "" && !utils.ValidDate(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %q", c.Date)
	}
	return nil
}

func (c *ReflectAddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		now, err := utils.NowInTimezone(ctx.Store.Document().Settings.Timezone)
		if err != nil {
			now = time.Now()
		}
		date = now.Format(constants.DateFormat)
	}

	err := ctx.Registry.Reflect(models.Reflection{
		Date:         date,
		Mood:         c.Mood,
		Achievements: c.Achievements,
		Improvements: c.Improvements,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Saved reflection for %s (mood %d/5)\n", date, c.Mood)
	return nil
}

type ReflectListCmd struct {
	Limit int `short:"n" help:"Show at most this many entries." default:"14"`
}

func (c *ReflectListCmd) Run(ctx *cli.Context) error {
	reflections := ctx.Registry.Reflections()
	if len(reflections) == 0 {
		fmt.Println("No reflections yet.")
		return nil
	}

	if c.Limit > 0 && len(reflections) > c.Limit {
		reflections = reflections[:c.Limit]
	}
	for _, r := range reflections {
		fmt.Printf("%s  mood %d/5\n", r.Date, r.Mood)
		if r.Achievements != "" {
			fmt.Printf("  + %s\n", r.Achievements)
		}
		if r.Improvements != "" {
			fmt.Printf("  - %s\n", r.Improvements)
		}
	}
	return nil
}
