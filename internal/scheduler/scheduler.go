// Package scheduler owns the process-wide table of pending notification
// timers. In-process timer handles do not survive a restart, so every
// armed timer is mirrored by a persisted record; on startup the table is
// re-derived from those records.
package scheduler

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/daykeep/daykeep/internal/constants"
	"github.com/daykeep/daykeep/internal/kv"
	"github.com/daykeep/daykeep/internal/logger"
	"github.com/daykeep/daykeep/internal/models"
	"github.com/daykeep/daykeep/internal/utils"
)

// Presenter is the external notification-presentation collaborator.
// Failures to present are logged and never affect the timer table.
type Presenter interface {
	Present(payload models.TimerPayload) error
}

type Scheduler struct {
	mu        sync.Mutex
	medium    kv.Store
	presenter Presenter
	gate      func() bool // notifications-enabled check, queried at fire time
	timers    map[string]*time.Timer
	lastFired map[string]models.TimerPayload
	now       func() time.Time
}

func New(medium kv.Store, presenter Presenter, gate func() bool) *Scheduler {
	if gate == nil {
		gate = func() bool { return true }
	}
	return &Scheduler{
		medium:    medium,
		presenter: presenter,
		gate:      gate,
		timers:    make(map[string]*time.Timer),
		lastFired: make(map[string]models.TimerPayload),
		now:       time.Now,
	}
}

// SetNow overrides the scheduler's clock. Intended for tests.
func (s *Scheduler) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// ScheduleTaskReminder arms a reminder for the task at its scheduled time
// minus the lead. A reminder whose fire time is already in the past stays
// unscheduled: no notification is emitted for already-imminent tasks.
func (s *Scheduler) ScheduleTaskReminder(task models.Task, leadMinutes int, loc *time.Location) error {
	at, err := task.ScheduledAt(loc)
	if err != nil {
		return err
	}
	fireAt := at.Add(-time.Duration(leadMinutes) * time.Minute)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !fireAt.After(s.now()) {
		return nil
	}

	payload := models.TimerPayload{
		Kind:    constants.TimerKindReminder,
		TaskID:  task.ID,
		Title:   "Upcoming task",
		Body:    fmt.Sprintf("%s at %s", task.Title, task.Time),
		Actions: []string{"complete", "skip"},
		Data:    map[string]string{"task_id": task.ID},
	}
	return s.armLocked(constants.TaskTimerPrefix+task.ID, fireAt, payload)
}

// ScheduleDailyAlarm arms the recurring wake-up alarm for its next
// occurrence: today if the wake time is still ahead, else tomorrow. On
// fire it re-arms itself for the following day.
func (s *Scheduler) ScheduleDailyAlarm(wakeTime string, loc *time.Location) error {
	payload := models.TimerPayload{
		Kind:    constants.TimerKindAlarm,
		Title:   "Wake up",
		Body:    "Time to plan your day",
		Actions: []string{"snooze", "dismiss"},
		Data:    map[string]string{"time": wakeTime},
	}
	return s.scheduleDaily(constants.TimerDailyAlarm, wakeTime, loc, payload)
}

// ScheduleDailySummary arms the recurring end-of-day summary at the
// configured hour.
func (s *Scheduler) ScheduleDailySummary(summaryTime string, loc *time.Location) error {
	payload := models.TimerPayload{
		Kind:  constants.TimerKindSummary,
		Title: "Daily summary",
		Body:  "Review what you finished today",
		Data:  map[string]string{"time": summaryTime},
	}
	return s.scheduleDaily(constants.TimerDailySummary, summaryTime, loc, payload)
}

func (s *Scheduler) scheduleDaily(id, timeOfDay string, loc *time.Location, payload models.TimerPayload) error {
	t, err := time.Parse(constants.TimeFormat, timeOfDay)
	if err != nil {
		return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}
	// The zone rides along in the payload so each re-arm after a fire
	// recurs at the same wall time in the same zone.
	payload.Data["tz"] = loc.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().In(loc)
	fireAt := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	if !fireAt.After(now) {
		fireAt = fireAt.AddDate(0, 0, 1)
	}
	return s.armLocked(id, fireAt, payload)
}

// Cancel clears the pending timer and removes the persisted record.
// Cancelling an absent or already-fired item is a successful no-op.
func (s *Scheduler) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelLocked(id)
}

// CancelTaskReminder cancels the reminder armed for the given task.
func (s *Scheduler) CancelTaskReminder(taskID string) error {
	return s.Cancel(constants.TaskTimerPrefix + taskID)
}

// Snooze re-arms the most recently fired timer with the given id five
// minutes out, reusing the same payload.
func (s *Scheduler) Snooze(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok := s.lastFired[id]
	if !ok {
		return fmt.Errorf("nothing to snooze for %q", id)
	}
	return s.armLocked(id, s.now().Add(constants.SnoozeMinutes*time.Minute), payload)
}

// Recover rebuilds the in-process timer table from persisted records.
// Records whose fire time has passed are reported once as missed and
// removed, never fired late; the rest are re-armed for their remaining
// delay. Runs once at process start.
func (s *Scheduler) Recover() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadTable()
	if err != nil {
		return err
	}

	now := s.now()
	changed := false
	for id, record := range records {
		if record.ScheduledTime.After(now) {
			s.armTimerLocked(id, record.ScheduledTime)
			continue
		}

		logger.Info("Reporting missed timer", "id", id, "scheduled", record.ScheduledTime)
		s.presentLocked(models.TimerPayload{
			Kind:  record.Payload.Kind,
			Title: "Missed: " + record.Payload.Title,
			Body:  record.Payload.Body,
			Data:  record.Payload.Data,
		})
		delete(records, id)
		changed = true
	}

	if changed {
		return s.saveTable(records)
	}
	return nil
}

// Pending returns the ids of all persisted pending timers, for display.
func (s *Scheduler) Pending() ([]models.ScheduledTimer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadTable()
	if err != nil {
		return nil, err
	}
	out := make([]models.ScheduledTimer, 0, len(records))
	for _, record := range records {
		out = append(out, record)
	}
	return out, nil
}

// Stop clears all in-process timer handles without touching the
// persisted table, so a later Recover re-arms them.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// armLocked persists a record for the timer and arms its in-process
// handle. Re-arming an id replaces its previous schedule.
func (s *Scheduler) armLocked(id string, fireAt time.Time, payload models.TimerPayload) error {
	records, err := s.loadTable()
	if err != nil {
		return err
	}
	records[id] = models.ScheduledTimer{ID: id, ScheduledTime: fireAt, Payload: payload}
	if err := s.saveTable(records); err != nil {
		return err
	}

	s.armTimerLocked(id, fireAt)
	logger.Debug("Timer armed", "id", id, "fire_at", fireAt)
	return nil
}

func (s *Scheduler) armTimerLocked(id string, fireAt time.Time) {
	if existing, ok := s.timers[id]; ok {
		existing.Stop()
	}
	s.timers[id] = time.AfterFunc(fireAt.Sub(s.now()), func() { s.fire(id) })
}

func (s *Scheduler) cancelLocked(id string) error {
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}

	records, err := s.loadTable()
	if err != nil {
		return err
	}
	if _, ok := records[id]; !ok {
		return nil
	}
	delete(records, id)
	return s.saveTable(records)
}

// fire runs on the timer goroutine. A fired timer racing a user cancel is
// resolved by treating the already-removed record as a no-op.
func (s *Scheduler) fire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.timers, id)

	records, err := s.loadTable()
	if err != nil {
		logger.Error("Failed to load timer table on fire", "id", id, "error", err)
		return
	}
	record, ok := records[id]
	if !ok {
		return
	}
	delete(records, id)
	if err := s.saveTable(records); err != nil {
		logger.Error("Failed to persist timer table on fire", "id", id, "error", err)
	}

	s.lastFired[id] = record.Payload
	s.presentLocked(record.Payload)

	// The daily alarm and summary are the only self-perpetuating timers:
	// each firing arms the next day's occurrence at the same wall time.
	if record.Payload.Kind == constants.TimerKindAlarm || record.Payload.Kind == constants.TimerKindSummary {
		if timeOfDay, ok := record.Payload.Data["time"]; ok {
			if err := s.rearmDailyLocked(id, timeOfDay, record.Payload); err != nil {
				logger.Error("Failed to re-arm recurring timer", "id", id, "error", err)
			}
		}
	}
}

func (s *Scheduler) rearmDailyLocked(id, timeOfDay string, payload models.TimerPayload) error {
	t, err := time.Parse(constants.TimeFormat, timeOfDay)
	if err != nil {
		return err
	}
	loc := time.Local
	if name, ok := payload.Data["tz"]; ok {
		if parsed, err := utils.LoadLocation(name); err == nil {
			loc = parsed
		} else {
			logger.Warn("Unknown timer timezone, using local", "tz", name, "error", err)
		}
	}
	now := s.now().In(loc)
	fireAt := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	if !fireAt.After(now) {
		fireAt = fireAt.AddDate(0, 0, 1)
	}
	return s.armLocked(id, fireAt, payload)
}

func (s *Scheduler) presentLocked(payload models.TimerPayload) {
	if !s.gate() {
		logger.Debug("Notifications disabled, suppressing", "kind", payload.Kind)
		return
	}
	if err := s.presenter.Present(payload); err != nil {
		logger.Warn("Failed to present notification", "kind", payload.Kind, "error", err)
	}
}

func (s *Scheduler) loadTable() (map[string]models.ScheduledTimer, error) {
	raw, err := s.medium.Get(constants.TimerTableKey)
	if err != nil {
		if err == kv.ErrNoKey {
			return map[string]models.ScheduledTimer{}, nil
		}
		return nil, fmt.Errorf("failed to read timer table: %w", err)
	}

	var records map[string]models.ScheduledTimer
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.Warn("Timer table unreadable, resetting", "error", err)
		return map[string]models.ScheduledTimer{}, nil
	}
	if records == nil {
		records = map[string]models.ScheduledTimer{}
	}
	return records, nil
}

func (s *Scheduler) saveTable(records map[string]models.ScheduledTimer) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize timer table: %w", err)
	}
	if err := s.medium.Set(constants.TimerTableKey, data); err != nil {
		return fmt.Errorf("failed to write timer table: %w", err)
	}
	return nil
}
