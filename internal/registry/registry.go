// Package registry provides CRUD and status transitions over task
// records. Every mutation persists the document, replaces the derived
// statistics, and keeps the reminder schedule in step.
package registry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daykeep/daykeep/internal/constants"
	"github.com/daykeep/daykeep/internal/errors"
	"github.com/daykeep/daykeep/internal/logger"
	"github.com/daykeep/daykeep/internal/models"
	"github.com/daykeep/daykeep/internal/stats"
	"github.com/daykeep/daykeep/internal/store"
	"github.com/daykeep/daykeep/internal/utils"
)

// ReminderScheduler is the slice of the scheduler the registry drives.
type ReminderScheduler interface {
	ScheduleTaskReminder(task models.Task, leadMinutes int, loc *time.Location) error
	CancelTaskReminder(taskID string) error
}

// Mirror is the optional remote document store. Calls are fire-and-forget:
// absence or failure never blocks local operation.
type Mirror interface {
	SaveTask(ctx context.Context, task models.Task) error
	DeleteTask(ctx context.Context, id string) error
}

const mirrorTimeout = 10 * time.Second

type Registry struct {
	store  *store.Store
	sched  ReminderScheduler
	mirror Mirror
	now    func() time.Time
}

func New(st *store.Store, sched ReminderScheduler, mirror Mirror) *Registry {
	return &Registry{store: st, sched: sched, mirror: mirror, now: time.Now}
}

// SetNow overrides the registry's clock. Intended for tests.
func (r *Registry) SetNow(now func() time.Time) {
	r.now = now
}

// CreateInput carries the user-supplied fields for a new task.
type CreateInput struct {
	Title       string
	Time        string // HH:MM format
	Date        string // YYYY-MM-DD format
	DurationMin int    // 0 selects the default
	MustDo      bool
	Notes       string
}

// Create constructs a pending task, persists it, recomputes statistics,
// and arms its reminder.
func (r *Registry) Create(input CreateInput) (models.Task, error) {
	if err := r.ensureToday(); err != nil {
		return models.Task{}, err
	}
	doc := r.store.Document()

	task := models.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Time:        input.Time,
		Date:        input.Date,
		DurationMin: input.DurationMin,
		MustDo:      input.MustDo,
		Notes:       input.Notes,
		Status:      models.StatusPending,
		CreatedAt:   r.now(),
	}
	if task.DurationMin == 0 {
		task.DurationMin = constants.DefaultDurationMin
	}
	if err := task.Validate(); err != nil {
		return models.Task{}, err
	}

	if task.MustDo && doc.OpenMustDoCount() >= doc.Settings.MustDoCap {
		return models.Task{}, errors.Validationf(
			"must-do cap reached: at most %d uncompleted must-do tasks", doc.Settings.MustDoCap)
	}

	doc.Tasks = append(doc.Tasks, task)
	doc.Statistics = stats.Compute(doc.Tasks, doc.SkipBank, doc.Streak)
	// On a rejected write the in-memory document keeps the mutation; it
	// stays authoritative until a later save succeeds.
	if err := r.store.Save(); err != nil {
		return models.Task{}, err
	}

	r.scheduleReminder(task)
	r.mirrorSave(task)
	return task, nil
}

// Complete transitions a pending task to completed, awards the daily
// score, and advances the streak.
func (r *Registry) Complete(id string) (models.Task, error) {
	if err := r.ensureToday(); err != nil {
		return models.Task{}, err
	}
	doc := r.store.Document()

	i := doc.TaskByID(id)
	if i < 0 {
		return models.Task{}, errors.NotFoundf("no task with id %q", id)
	}
	if !doc.Tasks[i].IsOpen() {
		return models.Task{}, errors.InvalidStatef("task %q is already %s", id, doc.Tasks[i].Status)
	}

	now := r.now()
	doc.Tasks[i].Status = models.StatusCompleted
	doc.Tasks[i].CompletedAt = &now

	today := now.Format(constants.DateFormat)
	r.applyStreak(today, true)
	if doc.Streak.ScoreDate != today {
		doc.Streak.Score = 0
		doc.Streak.ScoreDate = today
	}
	doc.Streak.Score += constants.CompletionPoints

	doc.Statistics = stats.Compute(doc.Tasks, doc.SkipBank, doc.Streak)
	if err := r.store.Save(); err != nil {
		return models.Task{}, err
	}

	r.cancelReminder(id)
	r.mirrorSave(doc.Tasks[i])
	return doc.Tasks[i], nil
}

// Skip transitions a pending task to skipped and appends the immutable
// skip bank record. Requires a non-empty reason.
func (r *Registry) Skip(id, reason string) (models.Task, error) {
	if err := r.ensureToday(); err != nil {
		return models.Task{}, err
	}
	if reason == "" {
		return models.Task{}, errors.Validationf("skip reason cannot be empty")
	}
	doc := r.store.Document()

	i := doc.TaskByID(id)
	if i < 0 {
		return models.Task{}, errors.NotFoundf("no task with id %q", id)
	}
	if !doc.Tasks[i].IsOpen() {
		return models.Task{}, errors.InvalidStatef("task %q is already %s", id, doc.Tasks[i].Status)
	}

	now := r.now()
	doc.Tasks[i].Status = models.StatusSkipped
	doc.Tasks[i].SkipReason = reason
	doc.Tasks[i].SkippedAt = &now

	doc.SkipBank = append(doc.SkipBank, models.SkipBankEntry{
		TaskID:    id,
		TaskTitle: doc.Tasks[i].Title,
		Reason:    reason,
		Date:      now.Format(constants.DateFormat),
		Timestamp: now,
	})

	doc.Statistics = stats.Compute(doc.Tasks, doc.SkipBank, doc.Streak)
	if err := r.store.Save(); err != nil {
		return models.Task{}, err
	}

	r.cancelReminder(id)
	r.mirrorSave(doc.Tasks[i])
	return doc.Tasks[i], nil
}

// Delete removes the task regardless of status. Returns false when the
// id is unknown; deletion is not an error for callers that may race.
func (r *Registry) Delete(id string) (bool, error) {
	if err := r.ensureToday(); err != nil {
		return false, err
	}
	doc := r.store.Document()

	i := doc.TaskByID(id)
	if i < 0 {
		return false, nil
	}

	doc.Tasks = append(doc.Tasks[:i], doc.Tasks[i+1:]...)
	doc.Statistics = stats.Compute(doc.Tasks, doc.SkipBank, doc.Streak)
	if err := r.store.Save(); err != nil {
		return false, err
	}

	r.cancelReminder(id)
	if r.mirror != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
			defer cancel()
			if err := r.mirror.DeleteTask(ctx, id); err != nil {
				logger.Warn("Remote delete failed", "id", id, "error", err)
			}
		}()
	}
	return true, nil
}

// TaskPatch carries a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Time        *string // HH:MM format
	Date        *string // YYYY-MM-DD format
	DurationMin *int
	MustDo      *bool
	Notes       *string
}

// Update applies allowed field changes and re-validates the result.
// Returns false without mutating anything when the id is unknown or the
// patched record fails validation. A time or date change re-arms the
// reminder.
func (r *Registry) Update(id string, patch TaskPatch) (bool, error) {
	if err := r.ensureToday(); err != nil {
		return false, err
	}
	doc := r.store.Document()

	i := doc.TaskByID(id)
	if i < 0 {
		return false, nil
	}

	updated := doc.Tasks[i]
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Time != nil {
		updated.Time = *patch.Time
	}
	if patch.Date != nil {
		updated.Date = *patch.Date
	}
	if patch.DurationMin != nil {
		updated.DurationMin = *patch.DurationMin
	}
	if patch.MustDo != nil {
		updated.MustDo = *patch.MustDo
	}
	if patch.Notes != nil {
		updated.Notes = *patch.Notes
	}

	if err := updated.Validate(); err != nil {
		logger.Debug("Rejecting invalid task update", "id", id, "error", err)
		return false, nil
	}

	rescheduled := updated.Time != doc.Tasks[i].Time || updated.Date != doc.Tasks[i].Date
	doc.Tasks[i] = updated
	doc.Statistics = stats.Compute(doc.Tasks, doc.SkipBank, doc.Streak)
	if err := r.store.Save(); err != nil {
		return false, err
	}

	if rescheduled && updated.IsOpen() {
		r.cancelReminder(id)
		r.scheduleReminder(updated)
	}
	r.mirrorSave(updated)
	return true, nil
}

// Get returns the task with the given id.
func (r *Registry) Get(id string) (models.Task, error) {
	doc := r.store.Document()
	i := doc.TaskByID(id)
	if i < 0 {
		return models.Task{}, errors.NotFoundf("no task with id %q", id)
	}
	return doc.Tasks[i], nil
}

func (r *Registry) scheduleReminder(task models.Task) {
	if r.sched == nil {
		return
	}
	settings := r.store.Document().Settings
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		logger.Warn("Invalid timezone, using local", "timezone", settings.Timezone)
		loc = time.Local
	}
	if err := r.sched.ScheduleTaskReminder(task, settings.LeadMinutes, loc); err != nil {
		logger.Warn("Failed to schedule reminder", "id", task.ID, "error", err)
	}
}

func (r *Registry) cancelReminder(id string) {
	if r.sched == nil {
		return
	}
	if err := r.sched.CancelTaskReminder(id); err != nil {
		logger.Warn("Failed to cancel reminder", "id", id, "error", err)
	}
}

func (r *Registry) mirrorSave(task models.Task) {
	if r.mirror == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		if err := r.mirror.SaveTask(ctx, task); err != nil {
			logger.Warn("Remote save failed", "id", task.ID, "error", err)
		}
	}()
}
