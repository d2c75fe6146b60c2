package models

import (
	"time"

	"github.com/daykeep/daykeep/internal/constants"
	"github.com/daykeep/daykeep/internal/errors"
	"github.com/daykeep/daykeep/internal/utils"
)

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
	StatusSkipped   TaskStatus = "skipped"
)

// Task is one user-created unit of work, pinned to a date and a
// wall-clock time of day.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Time        string     `json:"time"` // HH:MM format
	Date        string     `json:"date"` // YYYY-MM-DD format
	DurationMin int        `json:"duration_min"`
	MustDo      bool       `json:"must_do"`
	Notes       string     `json:"notes,omitempty"`
	Status      TaskStatus `json:"status"`
	SkipReason  string     `json:"skip_reason,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	SkippedAt   *time.Time `json:"skipped_at,omitempty"`
}

func (t *Task) Validate() error {
	if t.Title == "" {
		return errors.Validationf("task title cannot be empty")
	}
	if !utils.ValidTime(t.Time) {
		return errors.Validationf("invalid time format (expected HH:MM): %q", t.Time)
	}
	if !utils.ValidDate(t.Date) {
		return errors.Validationf("invalid date format (expected YYYY-MM-DD): %q", t.Date)
	}
	if t.DurationMin < constants.MinDurationMin || t.DurationMin > constants.MaxDurationMin {
		return errors.Validationf("duration must be between %d and %d minutes, got %d",
			constants.MinDurationMin, constants.MaxDurationMin, t.DurationMin)
	}
	if t.Status == StatusSkipped && t.SkipReason == "" {
		return errors.Validationf("skipped task must carry a skip reason")
	}
	switch t.Status {
	case StatusPending, StatusCompleted, StatusSkipped:
	default:
		return errors.Validationf("unknown task status: %q", t.Status)
	}
	return nil
}

// IsOpen reports whether the task is still pending.
func (t *Task) IsOpen() bool {
	return t.Status == StatusPending
}

// ScheduledAt returns the task's date+time as a wall-clock instant in loc.
func (t *Task) ScheduledAt(loc *time.Location) (time.Time, error) {
	return utils.CombineDateAndTime(t.Date, t.Time, loc)
}

// SkipBankEntry is an immutable historical record created alongside a
// skip transition. Never mutated, removed only by retention compression.
type SkipBankEntry struct {
	TaskID    string    `json:"task_id"`
	TaskTitle string    `json:"task_title"`
	Reason    string    `json:"reason"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Timestamp time.Time `json:"timestamp"`
}

func (e *SkipBankEntry) Validate() error {
	if e.TaskID == "" {
		return errors.Validationf("skip entry task id cannot be empty")
	}
	if e.Reason == "" {
		return errors.Validationf("skip entry reason cannot be empty")
	}
	if !utils.ValidDate(e.Date) {
		return errors.Validationf("invalid skip entry date: %q", e.Date)
	}
	return nil
}
