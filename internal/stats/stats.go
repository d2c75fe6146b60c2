// Package stats recomputes the derived statistics rollup. The result
// always replaces the prior statistics object wholesale; nothing is
// patched incrementally, so the rollup stays consistent after any task
// mutation, import, or compression pass.
package stats

import "github.com/daykeep/daykeep/internal/models"

// Compute derives a fresh Statistics value from tasks, skip history, and
// the current streak state.
func Compute(tasks []models.Task, skipBank []models.SkipBankEntry, streak models.StreakState) models.Statistics {
	out := models.Statistics{
		SkipReasons: map[string]int{},
	}

	for _, task := range tasks {
		out.TotalCreated++
		switch task.Status {
		case models.StatusCompleted:
			out.TotalCompleted++
			if task.CompletedAt != nil {
				out.PerHour[task.CompletedAt.Hour()]++
				out.PerWeekday[int(task.CompletedAt.Weekday())]++
			}
		case models.StatusSkipped:
			out.TotalSkipped++
		}
	}

	if out.TotalCreated > 0 {
		out.CompletionRate = float64(out.TotalCompleted) / float64(out.TotalCreated)
	}

	for _, entry := range skipBank {
		out.SkipReasons[entry.Reason]++
	}

	out.LongestStreak = streak.Longest
	if streak.Current > out.LongestStreak {
		out.LongestStreak = streak.Current
	}

	return out
}
