package models

// Statistics is fully derived from task and skip-bank data. It is never
// independently authoritative: every task-mutating operation replaces it
// with a fresh recompute.
type Statistics struct {
	TotalCreated   int            `json:"total_created"`
	TotalCompleted int            `json:"total_completed"`
	TotalSkipped   int            `json:"total_skipped"`
	CompletionRate float64        `json:"completion_rate"`
	PerHour        [24]int        `json:"per_hour"`    // completions keyed by completed-at hour
	PerWeekday     [7]int         `json:"per_weekday"` // completions keyed by completed-at weekday (0=Sunday)
	SkipReasons    map[string]int `json:"skip_reasons"`
	LongestStreak  int            `json:"longest_streak"`
}

// StreakState tracks consecutive days with at least one completion, plus
// the running daily score.
type StreakState struct {
	Current   int    `json:"current"`
	Longest   int    `json:"longest"`
	Score     int    `json:"score"`      // points accrued on ScoreDate
	ScoreDate string `json:"score_date"` // YYYY-MM-DD the score belongs to
}
