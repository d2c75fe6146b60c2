package models

import "github.com/daykeep/daykeep/internal/constants"

// Settings represents application-wide settings
type Settings struct {
	WakeTime             string `json:"wake_time"`             // daily wake-up alarm, e.g. "07:00"
	SummaryTime          string `json:"summary_time"`          // daily summary notification, e.g. "21:00"
	AlarmSound           string `json:"alarm_sound"`           // alarm sound choice
	Vibration            bool   `json:"vibration"`             // vibrate on notification
	NotificationsEnabled bool   `json:"notifications_enabled"` // master gate for all notifications
	LeadMinutes          int    `json:"lead_minutes"`          // minutes before task time a reminder fires
	MustDoCap            int    `json:"must_do_cap"`           // max concurrent uncompleted must-do tasks
	Theme                string `json:"theme"`                 // UI theme hint, stored only
	Timezone             string `json:"timezone"`              // IANA timezone name, or "Local"
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		WakeTime:             constants.DefaultWakeTime,
		SummaryTime:          constants.DefaultSummaryTime,
		AlarmSound:           constants.DefaultAlarmSound,
		Vibration:            constants.DefaultVibration,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		LeadMinutes:          constants.DefaultLeadMinutes,
		MustDoCap:            constants.MustDoCap,
		Theme:                constants.DefaultTheme,
		Timezone:             constants.DefaultTimezone,
	}
}

// SettingsPatch carries a partial settings update. Nil fields are left
// untouched; patches merge into existing settings rather than replacing
// them wholesale.
type SettingsPatch struct {
	WakeTime             *string
	SummaryTime          *string
	AlarmSound           *string
	Vibration            *bool
	NotificationsEnabled *bool
	LeadMinutes          *int
	MustDoCap            *int
	Theme                *string
	Timezone             *string
}

// Apply merges the patch into s and reports whether anything changed.
func (p SettingsPatch) Apply(s *Settings) bool {
	changed := false
	if p.WakeTime != nil && *p.WakeTime != s.WakeTime {
		s.WakeTime = *p.WakeTime
		changed = true
	}
	if p.SummaryTime != nil && *p.SummaryTime != s.SummaryTime {
		s.SummaryTime = *p.SummaryTime
		changed = true
	}
	if p.AlarmSound != nil && *p.AlarmSound != s.AlarmSound {
		s.AlarmSound = *p.AlarmSound
		changed = true
	}
	if p.Vibration != nil && *p.Vibration != s.Vibration {
		s.Vibration = *p.Vibration
		changed = true
	}
	if p.NotificationsEnabled != nil && *p.NotificationsEnabled != s.NotificationsEnabled {
		s.NotificationsEnabled = *p.NotificationsEnabled
		changed = true
	}
	if p.LeadMinutes != nil && *p.LeadMinutes != s.LeadMinutes {
		s.LeadMinutes = *p.LeadMinutes
		changed = true
	}
	if p.MustDoCap != nil && *p.MustDoCap != s.MustDoCap {
		s.MustDoCap = *p.MustDoCap
		changed = true
	}
	if p.Theme != nil && *p.Theme != s.Theme {
		s.Theme = *p.Theme
		changed = true
	}
	if p.Timezone != nil && *p.Timezone != s.Timezone {
		s.Timezone = *p.Timezone
		changed = true
	}
	return changed
}
