package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "enough"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/enough/enough.db"
	Version            = "v0.1.0"

	// ConnectionEnvVar overrides the PostgreSQL connection string
	ConnectionEnvVar = "ENOUGH_DB_CONNECTION"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage keys, one blob per store
	TasksKey    = "enough-tasks"
	SettingsKey = "enough-settings"
	StatsKey    = "enough-stats"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "enough-"
	BackupFileSuffix = ".json"
)

// Session States
const (
	StateList SessionState = iota
	StateSchedule
	StateQuickAdd
	StateSchedulePrompt
	StateConfirmDelete
	StateDayReport
	StateConfirmClear
	StateOnboarding
)
