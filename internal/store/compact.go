package store

import (
	"time"

	"github.com/daykeep/daykeep/internal/constants"
	"github.com/daykeep/daykeep/internal/logger"
	"github.com/daykeep/daykeep/internal/models"
)

// CheckPressure reports medium usage and, when usage exceeds the
// high-water mark, runs retention compression: completed tasks and skip
// bank entries older than the retention window are evicted. Below the
// mark it only reports.
func (s *Store) CheckPressure(now time.Time) (used, quota int64, err error) {
	used, quota, err = s.medium.Usage()
	if err != nil {
		return 0, 0, err
	}
	if float64(used) < constants.StorageHighWaterRatio*float64(quota) {
		return used, quota, nil
	}

	evicted := s.Compact(now)
	if evicted > 0 {
		if err := s.Save(); err != nil {
			return used, quota, err
		}
		used, _, _ = s.medium.Usage()
	}
	return used, quota, nil
}

// Compact evicts completed tasks and skip bank entries older than the
// retention window. Returns the number of records removed; the caller
// saves.
func (s *Store) Compact(now time.Time) int {
	cutoff := now.AddDate(0, 0, -constants.RetentionDays)
	evicted := 0

	tasks := s.doc.Tasks[:0]
	for _, task := range s.doc.Tasks {
		if task.Status == models.StatusCompleted && task.CompletedAt != nil && task.CompletedAt.Before(cutoff) {
			evicted++
			continue
		}
		tasks = append(tasks, task)
	}
	s.doc.Tasks = tasks

	entries := s.doc.SkipBank[:0]
	for _, entry := range s.doc.SkipBank {
		if entry.Timestamp.Before(cutoff) {
			evicted++
			continue
		}
		entries = append(entries, entry)
	}
	s.doc.SkipBank = entries

	if evicted > 0 {
		logger.Info("Retention compression evicted old records", "count", evicted)
	}
	return evicted
}
