package tasks

import (
	"fmt"

	"github.com/daykeep/daykeep/internal/cli"
	"github.com/daykeep/daykeep/internal/models"
	"github.com/daykeep/daykeep/internal/registry"
	"github.com/daykeep/daykeep/internal/utils"
)

type TaskListCmd struct {
	Date   string `short:"d" help:"Only tasks on this date (YYYY-MM-DD)."`
	From   string `help:"Range start (YYYY-MM-DD, inclusive)."`
	To     string `help:"Range end (YYYY-MM-DD, inclusive)."`
	Status string `short:"s" help:"Filter: pending|completed|skipped|mustdo|all." default:"all" enum:"pending,completed,skipped,mustdo,all"`
}

func (c *TaskListCmd) Validate() error {
	if c.Date != "" && !utils.ValidDate(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %q", c.Date)
	}
	if (c.From == "") != (c.To == "") {
		return fmt.Errorf("--from and --to must be given together")
	}
	if c.From != "" && (!utils.ValidDate(c.From) || !utils.ValidDate(c.To)) {
		return fmt.Errorf("invalid range dates (expected YYYY-MM-DD)")
	}
	return nil
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	// Rollover runs before the read so yesterday's pending tasks show up
	// under today.
	if err := ctx.Registry.EnsureToday(); err != nil {
		return err
	}

	var tasks []models.Task
	switch {
	case c.Date != "":
		tasks = ctx.Registry.TasksOn(c.Date)
	case c.From != "":
		tasks = ctx.Registry.TasksBetween(c.From, c.To)
	default:
		tasks = ctx.Registry.TasksByStatus(registry.StatusFilter(c.Status))
	}

	if c.Status != string(registry.FilterAll) && (c.Date != "" || c.From != "") {
		filtered := tasks[:0]
		for _, task := range tasks {
			if matchesStatus(task, registry.StatusFilter(c.Status)) {
				filtered = append(filtered, task)
			}
		}
		tasks = filtered
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}
	for _, task := range tasks {
		fmt.Println(cli.RenderTask(task))
	}
	return nil
}

func matchesStatus(task models.Task, filter registry.StatusFilter) bool {
	switch filter {
	case registry.FilterPending:
		return task.Status == models.StatusPending
	case registry.FilterCompleted:
		return task.Status == models.StatusCompleted
	case registry.FilterSkipped:
		return task.Status == models.StatusSkipped
	case registry.FilterMustDo:
		return task.MustDo
	default:
		return true
	}
}
