package registry

import (
	"github.com/daykeep/daykeep/internal/constants"
	"github.com/daykeep/daykeep/internal/logger"
	"github.com/daykeep/daykeep/internal/stats"
	"github.com/daykeep/daykeep/internal/utils"
)

// ensureToday runs the day-rollover policy at the first operation
// observed on a new calendar day: every prior day's pending task is
// carried forward to today with its time of day preserved.
func (r *Registry) ensureToday() error {
	doc := r.store.Document()
	today := r.now().Format(constants.DateFormat)
	if doc.LastActivityDate == today {
		return nil
	}

	rolled := 0
	for i := range doc.Tasks {
		if !doc.Tasks[i].IsOpen() {
			continue
		}
		if doc.Tasks[i].Date < today {
			doc.Tasks[i].Date = today
			rolled++
		}
	}

	prev := doc.LastActivityDate
	doc.LastActivityDate = today

	// A new day with no completion in between ends the streak once the
	// gap since the last scored day exceeds one.
	r.applyStreak(today, false)
	doc.Statistics = stats.Compute(doc.Tasks, doc.SkipBank, doc.Streak)

	if rolled > 0 {
		logger.Info("Rolled pending tasks forward", "count", rolled, "from", prev, "to", today)
	}
	return r.store.Save()
}

// EnsureToday exposes the rollover pass for callers about to run pure
// queries; queries themselves never mutate state.
func (r *Registry) EnsureToday() error {
	return r.ensureToday()
}

// applyStreak updates the day-streak given a qualifying activity today.
// Same day: unchanged. Exactly one day after the last completion: +1.
// Longer gap: reset to 1 when the triggering event is a completion,
// otherwise 0.
func (r *Registry) applyStreak(today string, isCompletion bool) {
	doc := r.store.Document()
	streak := &doc.Streak

	last := streak.ScoreDate // last day a completion scored
	switch {
	case last == "":
		if isCompletion {
			streak.Current = 1
		}
	case last == today:
		if isCompletion && streak.Current == 0 {
			streak.Current = 1
		}
	default:
		lastDay, err := utils.ParseDate(last)
		if err != nil {
			if isCompletion {
				streak.Current = 1
			}
			break
		}
		todayDay, err := utils.ParseDate(today)
		if err != nil {
			break
		}
		gap := utils.DaysBetween(lastDay, todayDay)
		switch {
		case gap == 1 && isCompletion:
			streak.Current++
		case gap > 1 && isCompletion:
			streak.Current = 1
		case gap > 1:
			streak.Current = 0
		}
	}

	if streak.Current > streak.Longest {
		streak.Longest = streak.Current
	}
}
