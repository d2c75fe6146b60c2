package errors

import (
	"strings"
	"testing"
)

func TestWrappersMatchTheirSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", Validationf("bad field %q", "title"), ErrValidation},
		{"not found", NotFoundf("no task %q", "abc"), ErrNotFound},
		{"invalid state", InvalidStatef("already %s", "completed"), ErrInvalidState},
		{"storage write", StorageWritef("quota hit"), ErrStorageWrite},
		{"storage read", StorageReadf("corrupt document"), ErrStorageRead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.sentinel) {
				t.Errorf("expected %v to match its sentinel", tt.err)
			}
			for _, other := range tests {
				if other.sentinel != tt.sentinel && Is(tt.err, other.sentinel) {
					t.Errorf("%v unexpectedly matches %v", tt.err, other.sentinel)
				}
			}
		})
	}
}

func TestWrappersCarryTheMessage(t *testing.T) {
	err := Validationf("mood must be between %d and %d", 1, 5)
	if !strings.Contains(err.Error(), "mood must be between 1 and 5") {
		t.Errorf("formatted message lost: %q", err.Error())
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("expected empty string for nil error, got %q", got)
	}
	if got := Format(NotFoundf("no task")); !strings.HasPrefix(got, "Error: ") {
		t.Errorf("expected Error prefix, got %q", got)
	}
}
