package registry

import (
	"sort"

	"github.com/daykeep/daykeep/internal/models"
)

// Reflect upserts the reflection for its date: at most one reflection
// exists per calendar day, and a later entry replaces the earlier one.
func (r *Registry) Reflect(reflection models.Reflection) error {
	if err := reflection.Validate(); err != nil {
		return err
	}
	if err := r.ensureToday(); err != nil {
		return err
	}
	doc := r.store.Document()

	if i := doc.ReflectionByDate(reflection.Date); i >= 0 {
		doc.Reflections[i] = reflection
	} else {
		doc.Reflections = append(doc.Reflections, reflection)
	}
	return r.store.Save()
}

// Reflections returns all reflections, newest first.
func (r *Registry) Reflections() []models.Reflection {
	doc := r.store.Document()
	out := make([]models.Reflection, len(doc.Reflections))
	copy(out, doc.Reflections)
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
