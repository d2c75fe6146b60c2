package models

import (
	"github.com/daykeep/daykeep/internal/errors"
	"github.com/daykeep/daykeep/internal/utils"
)

// Reflection is a per-day journal record. At most one exists per calendar
// date; adding a reflection for an existing date replaces it.
type Reflection struct {
	Date         string `json:"date"` // YYYY-MM-DD format
	Mood         int    `json:"mood"` // 1 (rough) to 5 (great)
	Achievements string `json:"achievements,omitempty"`
	Improvements string `json:"improvements,omitempty"`
}

func (r *Reflection) Validate() error {
	if !utils.ValidDate(r.Date) {
		return errors.Validationf("invalid reflection date: %q", r.Date)
	}
	if r.Mood < 1 || r.Mood > 5 {
		return errors.Validationf("mood must be between 1 and 5, got %d", r.Mood)
	}
	return nil
}
