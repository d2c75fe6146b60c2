package models

import "github.com/daykeep/daykeep/internal/constants"

// Document is the single versioned record the store owns per device.
type Document struct {
	Version          int             `json:"version"`
	Tasks            []Task          `json:"tasks"`
	Settings         Settings        `json:"settings"`
	Streak           StreakState     `json:"streak"`
	SkipBank         []SkipBankEntry `json:"skip_bank"`
	LastActivityDate string          `json:"last_activity_date"` // YYYY-MM-DD format
	Reflections      []Reflection    `json:"reflections"`
	Statistics       Statistics      `json:"statistics"`
}

// NewDocument returns a fresh default document.
func NewDocument() *Document {
	return &Document{
		Version:     constants.DocumentVersion,
		Tasks:       []Task{},
		Settings:    DefaultSettings(),
		SkipBank:    []SkipBankEntry{},
		Reflections: []Reflection{},
		Statistics:  Statistics{SkipReasons: map[string]int{}},
	}
}

// TaskByID returns the index of the task with the given id, or -1.
func (d *Document) TaskByID(id string) int {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// ReflectionByDate returns the index of the reflection for the given
// date, or -1.
func (d *Document) ReflectionByDate(date string) int {
	for i := range d.Reflections {
		if d.Reflections[i].Date == date {
			return i
		}
	}
	return -1
}

// OpenMustDoCount counts uncompleted must-do tasks.
func (d *Document) OpenMustDoCount() int {
	n := 0
	for i := range d.Tasks {
		if d.Tasks[i].MustDo && d.Tasks[i].IsOpen() {
			n++
		}
	}
	return n
}
