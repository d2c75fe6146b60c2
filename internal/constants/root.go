package constants

const (
	AppName            = "daykeep"
	DefaultKeyringUser = "remote-connection"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DocumentKey is the storage key holding the versioned document.
	DocumentKey = "daykeep:document"

	// TimerTableKey is the storage key holding persisted scheduled-timer records.
	// Kept outside the document so the scheduler can rewrite it without a
	// full document save.
	TimerTableKey = "daykeep:timers"

	// DocumentVersion is the current document schema version.
	DocumentVersion = 2

	// CompletionPoints is the fixed score awarded per completed task.
	CompletionPoints = 10

	// MustDoCap is the maximum number of concurrent uncompleted must-do tasks.
	MustDoCap = 3

	// Duration bounds in minutes.
	MinDurationMin     = 1
	MaxDurationMin     = 1440
	DefaultDurationMin = 30

	// SnoozeMinutes is how far out a snoozed alarm is re-armed.
	SnoozeMinutes = 5

	// Storage-pressure policy: compaction kicks in above the high-water
	// mark and evicts completed tasks older than the retention window.
	StorageHighWaterRatio = 0.9
	RetentionDays         = 30

	// DefaultQuotaBytes mirrors the storage budget of the original
	// per-device medium.
	DefaultQuotaBytes = 5 * 1024 * 1024

	// Notify constants
	NotifierLockfileName   = "daykeep-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.daykeep.tray"
)

// Well-known timer IDs. Task reminders use "task-<id>".
const (
	TimerDailyAlarm   = "daily-alarm"
	TimerDailySummary = "daily-summary"
	TaskTimerPrefix   = "task-"
)

// Timer kinds carried in scheduled-timer payloads.
const (
	TimerKindReminder = "reminder"
	TimerKindAlarm    = "alarm"
	TimerKindSummary  = "summary"
)
