package constants

const (
	AppName           = "stroll"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/stroll/stroll.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Settings keys
	SettingDailyQuota           = "daily_quota"
	SettingWalkDurationMin      = "walk_duration_min"
	SettingThemeMode            = "theme_mode"
	SettingNotificationsEnabled = "notifications_enabled"

	// Default settings values
	DefaultDailyQuota           = 8
	DefaultWalkDurationMin      = 5
	DefaultThemeMode            = "system"
	DefaultNotificationsEnabled = true

	// Quota and duration bounds enforced at the settings boundary
	MinDailyQuota      = 1
	MaxDailyQuota      = 24
	MinWalkDurationMin = 1
	MaxWalkDurationMin = 60

	// HistoryRetentionDays is how many daily summaries the history list keeps
	HistoryRetentionDays = 30

	// HistoryWindowDays is the trailing window shown on the history screen
	HistoryWindowDays = 7

	// MilesPerWalk is the static distance estimate used on the history screen
	MilesPerWalk = 0.5

	// Notify constants
	NotifierLockfileName   = "stroll-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.stroll"
)

// Theme mode values for SettingThemeMode.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)
