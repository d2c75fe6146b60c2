package utils

import (
	"testing"
	"time"
)

func TestValidTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"9:30", false},
		{"09:60", false},
		{"0930", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidTime(tt.in); got != tt.want {
			t.Errorf("ValidTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2026-08-29", true},
		{"2026-02-29", false}, // not a leap year
		{"2026-13-01", false},
		{"29-08-2026", false},
		{"2026/08/29", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidDate(tt.in); got != tt.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCombineDateAndTime(t *testing.T) {
	got, err := CombineDateAndTime("2026-08-29", "14:05", time.UTC)
	if err != nil {
		t.Fatalf("CombineDateAndTime failed: %v", err)
	}
	want := time.Date(2026, 8, 29, 14, 5, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := CombineDateAndTime("bad", "14:05", time.UTC); err == nil {
		t.Errorf("expected error for malformed date")
	}
	if _, err := CombineDateAndTime("2026-08-29", "bad", time.UTC); err == nil {
		t.Errorf("expected error for malformed time")
	}
}

func TestDaysBetween(t *testing.T) {
	day := func(s string) time.Time {
		at, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad fixture date %q", s)
		}
		return at
	}

	tests := []struct {
		a, b string
		want int
	}{
		{"2026-08-29", "2026-08-29", 0},
		{"2026-08-28", "2026-08-29", 1},
		{"2026-08-25", "2026-08-29", 4},
		{"2026-08-31", "2026-09-01", 1}, // month boundary
		{"2026-08-29", "2026-08-25", -4},
	}
	for _, tt := range tests {
		if got := DaysBetween(day(tt.a), day(tt.b)); got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil || loc != time.Local {
		t.Errorf("expected local for empty name, got %v, %v", loc, err)
	}
	loc, err = LoadLocation("Local")
	if err != nil || loc != time.Local {
		t.Errorf("expected local for %q, got %v, %v", "Local", loc, err)
	}
	if _, err := LoadLocation("UTC"); err != nil {
		t.Errorf("expected UTC to resolve: %v", err)
	}
	if _, err := LoadLocation("Not/AZone"); err == nil {
		t.Errorf("expected error for unknown zone")
	}
}
