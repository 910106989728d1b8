package models

import "time"

// WalkSlot is one scheduled opportunity to walk, tied to an hour of the day.
type WalkSlot struct {
	ID          string     `json:"id"`
	Hour        int        `json:"hour"` // 0-23
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// DailyProgress is the aggregate walk state for one calendar day.
type DailyProgress struct {
	Date           string     `json:"date"` // YYYY-MM-DD format
	WalkSlots      []WalkSlot `json:"walk_slots"`
	CompletedWalks int        `json:"completed_walks"`
	TotalWalks     int        `json:"total_walks"`
}

// UserSettings represents application-wide settings.
type UserSettings struct {
	DailyQuota           int    `json:"daily_quota"`           // walks per day, 1-24
	WalkDurationMin      int    `json:"walk_duration_min"`     // minutes per walk, 1-60
	ThemeMode            string `json:"theme_mode"`            // light, dark, or system
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether reminders are sent
}

// HistoryDay is an append-or-replace summary snapshot of one day.
type HistoryDay struct {
	Date                 string `json:"date"`
	CompletedWalks       int    `json:"completed_walks"`
	TotalWalks           int    `json:"total_walks"`
	CompletionPercentage int    `json:"completion_percentage"` // 0-100, rounded
}

// TimerState is the externally visible countdown state. It is transient
// and never persisted.
type TimerState struct {
	IsRunning     bool `json:"is_running"`
	TimeRemaining int  `json:"time_remaining"` // seconds
	TotalTime     int  `json:"total_time"`     // seconds
}

// WalkSession records a single timed walk driven by the countdown timer.
type WalkSession struct {
	ID          string    `json:"id"`
	SlotID      string    `json:"slot_id"`
	StartedAt   time.Time `json:"started_at"`
	DurationMin int       `json:"duration_min"`
	Completed   bool      `json:"completed"`
}
