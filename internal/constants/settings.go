package constants

const (
	// Settings keys
	SettingWakeTime             = "wake_time"
	SettingSummaryTime          = "summary_time"
	SettingAlarmSound           = "alarm_sound"
	SettingVibration            = "vibration"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingLeadMinutes          = "lead_minutes"
	SettingMustDoCap            = "must_do_cap"
	SettingTheme                = "theme"
	SettingTimezone             = "timezone"

	// Default settings values
	DefaultWakeTime             = "07:00"
	DefaultSummaryTime          = "21:00"
	DefaultAlarmSound           = "chime"
	DefaultVibration            = true
	DefaultNotificationsEnabled = true
	DefaultLeadMinutes          = 5
	DefaultTheme                = "light"
	DefaultTimezone             = "Local" // Use system local timezone by default
)
