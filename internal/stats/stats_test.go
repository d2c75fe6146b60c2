package stats

import (
	"testing"
	"time"

	"github.com/daykeep/daykeep/internal/models"
)

func completedAt(year int, month time.Month, day, hour int) *time.Time {
	at := time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	return &at
}

func TestCompute_EmptyInputs(t *testing.T) {
	got := Compute(nil, nil, models.StreakState{})

	if got.TotalCreated != 0 || got.TotalCompleted != 0 || got.TotalSkipped != 0 {
		t.Errorf("expected zero totals, got %+v", got)
	}
	if got.CompletionRate != 0 {
		t.Errorf("expected rate 0 with no tasks, got %v", got.CompletionRate)
	}
	if got.SkipReasons == nil {
		t.Errorf("expected non-nil skip reasons map")
	}
}

func TestCompute_TotalsAndRate(t *testing.T) {
	tasks := []models.Task{
		{Status: models.StatusCompleted, CompletedAt: completedAt(2026, 8, 24, 9)},  // Monday
		{Status: models.StatusCompleted, CompletedAt: completedAt(2026, 8, 25, 9)},  // Tuesday
		{Status: models.StatusCompleted, CompletedAt: completedAt(2026, 8, 25, 14)}, // Tuesday
		{Status: models.StatusSkipped, SkipReason: "tired"},
		{Status: models.StatusPending},
		{Status: models.StatusPending},
	}
	skipBank := []models.SkipBankEntry{
		{TaskID: "a", Reason: "tired", Date: "2026-08-25"},
		{TaskID: "b", Reason: "tired", Date: "2026-08-20"},
		{TaskID: "c", Reason: "meeting ran over", Date: "2026-08-19"},
	}

	got := Compute(tasks, skipBank, models.StreakState{Current: 2, Longest: 5})

	if got.TotalCreated != 6 || got.TotalCompleted != 3 || got.TotalSkipped != 1 {
		t.Errorf("unexpected totals: %+v", got)
	}
	if got.CompletionRate != 0.5 {
		t.Errorf("expected rate 0.5, got %v", got.CompletionRate)
	}
	if got.PerHour[9] != 2 || got.PerHour[14] != 1 {
		t.Errorf("unexpected per-hour histogram: %v", got.PerHour)
	}
	if got.PerWeekday[1] != 1 || got.PerWeekday[2] != 2 {
		t.Errorf("unexpected per-weekday histogram: %v", got.PerWeekday)
	}
	if got.SkipReasons["tired"] != 2 || got.SkipReasons["meeting ran over"] != 1 {
		t.Errorf("unexpected skip reasons: %v", got.SkipReasons)
	}
	if got.LongestStreak != 5 {
		t.Errorf("expected longest streak 5, got %d", got.LongestStreak)
	}
}

func TestCompute_CurrentStreakCanExceedRecordedLongest(t *testing.T) {
	got := Compute(nil, nil, models.StreakState{Current: 9, Longest: 4})
	if got.LongestStreak != 9 {
		t.Errorf("expected current run to raise the longest, got %d", got.LongestStreak)
	}
}

func TestCompute_CompletionWithoutTimestampSkipsHistograms(t *testing.T) {
	tasks := []models.Task{{Status: models.StatusCompleted}}
	got := Compute(tasks, nil, models.StreakState{})

	if got.TotalCompleted != 1 {
		t.Errorf("expected completion counted, got %d", got.TotalCompleted)
	}
	for hour, n := range got.PerHour {
		if n != 0 {
			t.Errorf("expected empty per-hour histogram, hour %d has %d", hour, n)
		}
	}
}
