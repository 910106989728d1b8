package storage

import "github.com/julianstephens/stroll/internal/models"

// Provider is the persistence port. Progress records are keyed per day,
// history is a single bounded list, and settings are a single record.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.UserSettings, error)
	SaveSettings(models.UserSettings) error

	// Daily progress, keyed by YYYY-MM-DD date
	GetProgress(date string) (models.DailyProgress, bool, error)
	SaveProgress(models.DailyProgress) error
	// PurgeProgressBefore removes per-day progress records with a date
	// strictly older than the cutoff date string.
	PurgeProgressBefore(date string) error

	// History, sorted descending by date and capped at the retention limit
	GetHistory() ([]models.HistoryDay, error)
	SaveHistory([]models.HistoryDay) error
	// UpsertHistoryDay replaces the entry with the same date or appends a
	// new one, re-sorts, and trims to the retention cap.
	UpsertHistoryDay(models.HistoryDay) error

	// Walk sessions recorded by the countdown timer
	SaveWalkSession(models.WalkSession) error
	GetWalkSessions(date string) ([]models.WalkSession, error)

	// Utils
	GetConfigPath() string
}
