package models

import "time"

// TimerPayload is handed to the notification presenter when a scheduled
// timer fires. Actions are the choices offered on the notification.
type TimerPayload struct {
	Kind    string            `json:"kind"` // reminder | alarm | summary
	TaskID  string            `json:"task_id,omitempty"`
	Title   string            `json:"title"`
	Body    string            `json:"body"`
	Actions []string          `json:"actions,omitempty"`
	Data    map[string]string `json:"data,omitempty"`
}

// ScheduledTimer is the persisted record of one outstanding notification
// or alarm. In-process timer handles do not survive a restart; these
// records do, and the scheduler rebuilds its table from them.
type ScheduledTimer struct {
	ID            string       `json:"id"`
	ScheduledTime time.Time    `json:"scheduled_time"`
	Payload       TimerPayload `json:"payload"`
}
