package store

import (
	"github.com/daykeep/daykeep/internal/constants"
	"github.com/daykeep/daykeep/internal/logger"
	"github.com/daykeep/daykeep/internal/models"
	"github.com/daykeep/daykeep/internal/utils"
)

// Validate walks every sub-collection of the in-memory document: records
// failing field-level validation are dropped (logged, not fatal), optional
// fields are back-filled with defaults, and malformed top-level scalars are
// replaced. Runs on every load and after every import.
func (s *Store) Validate() {
	doc := s.doc

	if doc.Version == 0 {
		doc.Version = constants.DocumentVersion
	}

	tasks := doc.Tasks[:0]
	for _, task := range doc.Tasks {
		// Back-fill before judging: a missing duration is a default,
		// not a defect.
		if task.DurationMin == 0 {
			task.DurationMin = constants.DefaultDurationMin
		}
		if task.DurationMin < constants.MinDurationMin {
			task.DurationMin = constants.MinDurationMin
		}
		if task.DurationMin > constants.MaxDurationMin {
			task.DurationMin = constants.MaxDurationMin
		}
		if task.Status == "" {
			task.Status = models.StatusPending
		}

		if err := task.Validate(); err != nil {
			logger.Warn("Dropping invalid task record", "id", task.ID, "error", err)
			continue
		}
		tasks = append(tasks, task)
	}
	doc.Tasks = tasks

	entries := doc.SkipBank[:0]
	for _, entry := range doc.SkipBank {
		if err := entry.Validate(); err != nil {
			logger.Warn("Dropping invalid skip bank record", "task_id", entry.TaskID, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	doc.SkipBank = entries

	reflections := doc.Reflections[:0]
	seen := map[string]bool{}
	for _, r := range doc.Reflections {
		if err := r.Validate(); err != nil {
			logger.Warn("Dropping invalid reflection record", "date", r.Date, "error", err)
			continue
		}
		if seen[r.Date] {
			logger.Warn("Dropping duplicate reflection record", "date", r.Date)
			continue
		}
		seen[r.Date] = true
		reflections = append(reflections, r)
	}
	doc.Reflections = reflections

	validateSettings(&doc.Settings)

	if doc.LastActivityDate != "" && !utils.ValidDate(doc.LastActivityDate) {
		logger.Warn("Resetting malformed last activity date", "value", doc.LastActivityDate)
		doc.LastActivityDate = ""
	}
	if doc.Streak.ScoreDate != "" && !utils.ValidDate(doc.Streak.ScoreDate) {
		doc.Streak.Score = 0
		doc.Streak.ScoreDate = ""
	}
	if doc.Streak.Current < 0 {
		doc.Streak.Current = 0
	}
	if doc.Streak.Longest < doc.Streak.Current {
		doc.Streak.Longest = doc.Streak.Current
	}
	if doc.Statistics.SkipReasons == nil {
		doc.Statistics.SkipReasons = map[string]int{}
	}
}

func validateSettings(s *models.Settings) {
	defaults := models.DefaultSettings()
	if !utils.ValidTime(s.WakeTime) {
		s.WakeTime = defaults.WakeTime
	}
	if !utils.ValidTime(s.SummaryTime) {
		s.SummaryTime = defaults.SummaryTime
	}
	if s.AlarmSound == "" {
		s.AlarmSound = defaults.AlarmSound
	}
	if s.LeadMinutes < 0 {
		s.LeadMinutes = defaults.LeadMinutes
	}
	if s.MustDoCap <= 0 {
		s.MustDoCap = defaults.MustDoCap
	}
	if s.Theme == "" {
		s.Theme = defaults.Theme
	}
	if s.Timezone == "" {
		s.Timezone = defaults.Timezone
	}
}
