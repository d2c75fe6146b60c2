package registry

import (
	"sort"

	"github.com/daykeep/daykeep/internal/models"
)

// StatusFilter selects tasks by status in queries.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterPending   StatusFilter = "pending"
	FilterCompleted StatusFilter = "completed"
	FilterSkipped   StatusFilter = "skipped"
	FilterMustDo    StatusFilter = "mustdo"
)

// TasksOn returns tasks dated exactly on the given day, ordered by time.
func (r *Registry) TasksOn(date string) []models.Task {
	return r.filter(func(t models.Task) bool { return t.Date == date })
}

// TasksBetween returns tasks dated within the inclusive range, ordered by
// date then time.
func (r *Registry) TasksBetween(from, to string) []models.Task {
	return r.filter(func(t models.Task) bool { return t.Date >= from && t.Date <= to })
}

// TasksByStatus returns tasks matching the status filter.
func (r *Registry) TasksByStatus(filter StatusFilter) []models.Task {
	switch filter {
	case FilterPending:
		return r.filter(func(t models.Task) bool { return t.Status == models.StatusPending })
	case FilterCompleted:
		return r.filter(func(t models.Task) bool { return t.Status == models.StatusCompleted })
	case FilterSkipped:
		return r.filter(func(t models.Task) bool { return t.Status == models.StatusSkipped })
	case FilterMustDo:
		return r.filter(func(t models.Task) bool { return t.MustDo })
	default:
		return r.filter(func(t models.Task) bool { return true })
	}
}

func (r *Registry) filter(keep func(models.Task) bool) []models.Task {
	doc := r.store.Document()
	out := make([]models.Task, 0)
	for _, task := range doc.Tasks {
		if keep(task) {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}
