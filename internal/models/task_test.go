package models

import (
	"testing"
	"time"
)

func TestTask_Validate(t *testing.T) {
	valid := Task{
		ID:          "test-id",
		Title:       "Morning run",
		Time:        "06:30",
		Date:        "2026-08-29",
		DurationMin: 45,
		Status:      StatusPending,
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr bool
	}{
		{"valid pending task", func(*Task) {}, false},
		{"empty title", func(task *Task) { task.Title = "" }, true},
		{"malformed time", func(task *Task) { task.Time = "6:30" }, true},
		{"malformed date", func(task *Task) { task.Date = "29.08.2026" }, true},
		{"duration zero", func(task *Task) { task.DurationMin = 0 }, true},
		{"duration over a day", func(task *Task) { task.DurationMin = 1441 }, true},
		{"duration at max", func(task *Task) { task.DurationMin = 1440 }, false},
		{"unknown status", func(task *Task) { task.Status = "paused" }, true},
		{"skipped without reason", func(task *Task) { task.Status = StatusSkipped }, true},
		{"skipped with reason", func(task *Task) {
			task.Status = StatusSkipped
			task.SkipReason = "no time"
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid
			tt.mutate(&task)
			err := task.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTask_ScheduledAt(t *testing.T) {
	task := Task{Title: "T", Time: "14:00", Date: "2026-08-29"}
	got, err := task.ScheduledAt(time.UTC)
	if err != nil {
		t.Fatalf("ScheduledAt failed: %v", err)
	}
	want := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReflection_Validate(t *testing.T) {
	tests := []struct {
		name       string
		reflection Reflection
		wantErr    bool
	}{
		{"valid", Reflection{Date: "2026-08-29", Mood: 3}, false},
		{"mood low", Reflection{Date: "2026-08-29", Mood: 0}, true},
		{"mood high", Reflection{Date: "2026-08-29", Mood: 6}, true},
		{"bad date", Reflection{Date: "yesterday", Mood: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reflection.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSettingsPatch_Apply(t *testing.T) {
	s := DefaultSettings()

	if changed := (SettingsPatch{}).Apply(&s); changed {
		t.Errorf("empty patch must report no change")
	}

	wake := "06:15"
	lead := 10
	changed := SettingsPatch{WakeTime: &wake, LeadMinutes: &lead}.Apply(&s)
	if !changed {
		t.Errorf("expected patch to report change")
	}
	if s.WakeTime != "06:15" || s.LeadMinutes != 10 {
		t.Errorf("patch not applied: %+v", s)
	}

	// Re-applying the same values is a no-op.
	if changed := (SettingsPatch{WakeTime: &wake}).Apply(&s); changed {
		t.Errorf("expected identical patch to report no change")
	}
}

func TestDocument_OpenMustDoCount(t *testing.T) {
	doc := NewDocument()
	doc.Tasks = []Task{
		{ID: "a", MustDo: true, Status: StatusPending},
		{ID: "b", MustDo: true, Status: StatusCompleted},
		{ID: "c", MustDo: true, Status: StatusSkipped},
		{ID: "d", MustDo: false, Status: StatusPending},
	}
	if got := doc.OpenMustDoCount(); got != 1 {
		t.Errorf("expected 1 open must-do, got %d", got)
	}
}
