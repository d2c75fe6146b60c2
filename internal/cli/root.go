package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/daykeep/daykeep/internal/config"
	"github.com/daykeep/daykeep/internal/errors"
	"github.com/daykeep/daykeep/internal/models"
	"github.com/daykeep/daykeep/internal/registry"
	"github.com/daykeep/daykeep/internal/scheduler"
	"github.com/daykeep/daykeep/internal/store"
)

// Context is the application context constructed once at startup and
// injected into every command.
type Context struct {
	Config    config.Config
	Store     *store.Store
	Registry  *registry.Registry
	Scheduler *scheduler.Scheduler
}

var (
	stylePending   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleCompleted = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleSkipped   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	styleMustDo    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleFaint     = lipgloss.NewStyle().Faint(true)
)

// RenderTask formats one task line for terminal output.
func RenderTask(task models.Task) string {
	marker := stylePending.Render("[ ]")
	title := task.Title
	switch task.Status {
	case models.StatusCompleted:
		marker = styleCompleted.Render("[x]")
	case models.StatusSkipped:
		marker = styleSkipped.Render("[-]")
		title = styleSkipped.Render(title)
	}
	if task.MustDo {
		title = styleMustDo.Render("! ") + title
	}

	line := fmt.Sprintf("%s %s %s  %s (%dm)", marker, task.Date, task.Time, title, task.DurationMin)
	line += "  " + styleFaint.Render(ShortID(task.ID))
	if task.Status == models.StatusSkipped && task.SkipReason != "" {
		line += styleFaint.Render(" (" + task.SkipReason + ")")
	}
	return line
}

// ShortID abbreviates a task id for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ResolveTaskID expands an abbreviated task id to the full one. Exact
// matches win; otherwise a unique prefix is accepted.
func (c *Context) ResolveTaskID(prefix string) (string, error) {
	doc := c.Store.Document()
	if doc.TaskByID(prefix) >= 0 {
		return prefix, nil
	}

	var match string
	for i := range doc.Tasks {
		if len(prefix) > 0 && len(doc.Tasks[i].ID) >= len(prefix) && doc.Tasks[i].ID[:len(prefix)] == prefix {
			if match != "" {
				return "", errors.Validationf("task id %q is ambiguous", prefix)
			}
			match = doc.Tasks[i].ID
		}
	}
	if match == "" {
		return "", errors.NotFoundf("no task with id %q", prefix)
	}
	return match, nil
}
