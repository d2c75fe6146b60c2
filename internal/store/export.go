package store

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"github.com/daykeep/daykeep/internal/errors"
	"github.com/daykeep/daykeep/internal/models"
)

// ExportJSON serializes the full document, pretty-printed, for
// user-initiated backup.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return nil, errors.StorageWritef("failed to serialize document: %v", err)
	}
	return data, nil
}

var csvHeader = []string{
	"Date", "Time", "Title", "Duration", "Must Do",
	"Completed", "Skipped", "Skip Reason", "Notes",
}

// ExportCSV serializes the task list only, with a fixed column order.
func (s *Store) ExportCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, task := range s.doc.Tasks {
		record := []string{
			task.Date,
			task.Time,
			task.Title,
			strconv.Itoa(task.DurationMin),
			strconv.FormatBool(task.MustDo),
			strconv.FormatBool(task.Status == models.StatusCompleted),
			strconv.FormatBool(task.Status == models.StatusSkipped),
			task.SkipReason,
			task.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Import parses a previously exported JSON document and shallow-merges it
// into the current one: top-level fields present in the input win, except
// version. The merged document is re-validated and saved.
func (s *Store) Import(raw []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return errors.Validationf("import payload is not a JSON object: %v", err)
	}

	imported, err := decodeDocument(raw)
	if err != nil {
		return errors.Validationf("import payload unreadable: %v", err)
	}

	if _, ok := fields["tasks"]; ok {
		s.doc.Tasks = imported.Tasks
	}
	if _, ok := fields["settings"]; ok {
		s.doc.Settings = imported.Settings
	}
	if _, ok := fields["streak"]; ok {
		s.doc.Streak = imported.Streak
	}
	if _, ok := fields["skip_bank"]; ok {
		s.doc.SkipBank = imported.SkipBank
	}
	if _, ok := fields["last_activity_date"]; ok {
		s.doc.LastActivityDate = imported.LastActivityDate
	}
	if _, ok := fields["reflections"]; ok {
		s.doc.Reflections = imported.Reflections
	}
	if _, ok := fields["statistics"]; ok {
		s.doc.Statistics = imported.Statistics
	}

	s.Validate()
	return s.Save()
}
