package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/stroll/internal/constants"
	"github.com/julianstephens/stroll/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_progress (
	date            TEXT PRIMARY KEY,
	completed_walks INTEGER NOT NULL,
	total_walks     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS walk_slots (
	date         TEXT NOT NULL,
	idx          INTEGER NOT NULL,
	id           TEXT NOT NULL,
	hour         INTEGER NOT NULL,
	completed    INTEGER NOT NULL DEFAULT 0,
	completed_at TEXT,
	PRIMARY KEY (date, idx)
);

CREATE TABLE IF NOT EXISTS history (
	date                  TEXT PRIMARY KEY,
	completed_walks       INTEGER NOT NULL,
	total_walks           INTEGER NOT NULL,
	completion_percentage INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS walk_sessions (
	id           TEXT PRIMARY KEY,
	slot_id      TEXT NOT NULL,
	started_at   TEXT NOT NULL,
	duration_min INTEGER NOT NULL,
	completed    INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteStore is the default persistence backend.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed default settings when the settings table is empty.
	if _, err := s.GetSettings(); err != nil {
		defaults := models.UserSettings{
			DailyQuota:           constants.DefaultDailyQuota,
			WalkDurationMin:      constants.DefaultWalkDurationMin,
			ThemeMode:            constants.DefaultThemeMode,
			NotificationsEnabled: constants.DefaultNotificationsEnabled,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'stroll init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.UserSettings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.UserSettings{}, err
	}
	defer rows.Close()

	settings := models.UserSettings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.UserSettings{}, err
		}
		switch key {
		case constants.SettingDailyQuota:
			if _, err := fmt.Sscanf(value, "%d", &settings.DailyQuota); err != nil {
				return models.UserSettings{}, fmt.Errorf("parsing daily_quota: %w", err)
			}
		case constants.SettingWalkDurationMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.WalkDurationMin); err != nil {
				return models.UserSettings{}, fmt.Errorf("parsing walk_duration_min: %w", err)
			}
		case constants.SettingThemeMode:
			settings.ThemeMode = value
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.UserSettings{}, err
	}

	if count == 0 {
		return models.UserSettings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.UserSettings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(constants.SettingDailyQuota, fmt.Sprintf("%d", settings.DailyQuota)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingWalkDurationMin, fmt.Sprintf("%d", settings.WalkDurationMin)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingThemeMode, settings.ThemeMode); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingNotificationsEnabled, fmt.Sprintf("%v", settings.NotificationsEnabled)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetProgress(date string) (models.DailyProgress, bool, error) {
	row := s.db.QueryRow(`
		SELECT date, completed_walks, total_walks
		FROM daily_progress WHERE date = ?`, date)

	var p models.DailyProgress
	if err := row.Scan(&p.Date, &p.CompletedWalks, &p.TotalWalks); err != nil {
		if err == sql.ErrNoRows {
			return models.DailyProgress{}, false, nil
		}
		return models.DailyProgress{}, false, err
	}

	rows, err := s.db.Query(`
		SELECT id, hour, completed, completed_at
		FROM walk_slots WHERE date = ? ORDER BY idx`, date)
	if err != nil {
		return models.DailyProgress{}, false, err
	}
	defer rows.Close()

	for rows.Next() {
		var slot models.WalkSlot
		var completed int
		var completedAt sql.NullString
		if err := rows.Scan(&slot.ID, &slot.Hour, &completed, &completedAt); err != nil {
			return models.DailyProgress{}, false, err
		}
		slot.Completed = completed != 0
		if completedAt.Valid {
			t, err := time.Parse(time.RFC3339, completedAt.String)
			if err != nil {
				return models.DailyProgress{}, false, fmt.Errorf("failed to parse completed_at: %w", err)
			}
			slot.CompletedAt = &t
		}
		p.WalkSlots = append(p.WalkSlots, slot)
	}
	if err := rows.Err(); err != nil {
		return models.DailyProgress{}, false, err
	}

	return p, true, nil
}

func (s *SQLiteStore) SaveProgress(p models.DailyProgress) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO daily_progress (date, completed_walks, total_walks)
		VALUES (?, ?, ?)`, p.Date, p.CompletedWalks, p.TotalWalks); err != nil {
		return err
	}

	// Full replace of the day's slot list.
	if _, err := tx.Exec("DELETE FROM walk_slots WHERE date = ?", p.Date); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO walk_slots (date, idx, id, hour, completed, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, slot := range p.WalkSlots {
		completed := 0
		if slot.Completed {
			completed = 1
		}
		var completedAt interface{}
		if slot.CompletedAt != nil {
			completedAt = slot.CompletedAt.Format(time.RFC3339)
		}
		if _, err := stmt.Exec(p.Date, i, slot.ID, slot.Hour, completed, completedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) PurgeProgressBefore(date string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM walk_slots WHERE date < ?", date); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM daily_progress WHERE date < ?", date); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetHistory() ([]models.HistoryDay, error) {
	rows, err := s.db.Query(`
		SELECT date, completed_walks, total_walks, completion_percentage
		FROM history ORDER BY date DESC LIMIT ?`, constants.HistoryRetentionDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []models.HistoryDay
	for rows.Next() {
		var day models.HistoryDay
		if err := rows.Scan(&day.Date, &day.CompletedWalks, &day.TotalWalks, &day.CompletionPercentage); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (s *SQLiteStore) SaveHistory(days []models.HistoryDay) error {
	days = normalizeHistory(days)

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM history"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO history (date, completed_walks, total_walks, completion_percentage)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, day := range days {
		if _, err := stmt.Exec(day.Date, day.CompletedWalks, day.TotalWalks, day.CompletionPercentage); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) UpsertHistoryDay(day models.HistoryDay) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO history (date, completed_walks, total_walks, completion_percentage)
		VALUES (?, ?, ?, ?)`, day.Date, day.CompletedWalks, day.TotalWalks, day.CompletionPercentage); err != nil {
		return err
	}

	// Trim to the retention cap, dropping the oldest dates.
	if _, err := tx.Exec(`
		DELETE FROM history WHERE date NOT IN (
			SELECT date FROM history ORDER BY date DESC LIMIT ?
		)`, constants.HistoryRetentionDays); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) SaveWalkSession(session models.WalkSession) error {
	completed := 0
	if session.Completed {
		completed = 1
	}
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO walk_sessions (id, slot_id, started_at, duration_min, completed)
		VALUES (?, ?, ?, ?, ?)`,
		session.ID, session.SlotID, session.StartedAt.Format(time.RFC3339), session.DurationMin, completed)
	return err
}

func (s *SQLiteStore) GetWalkSessions(date string) ([]models.WalkSession, error) {
	rows, err := s.db.Query(`
		SELECT id, slot_id, started_at, duration_min, completed
		FROM walk_sessions WHERE started_at LIKE ? ORDER BY started_at`, date+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.WalkSession
	for rows.Next() {
		var session models.WalkSession
		var startedAt string
		var completed int
		if err := rows.Scan(&session.ID, &session.SlotID, &startedAt, &session.DurationMin, &completed); err != nil {
			return nil, err
		}
		session.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		session.Completed = completed != 0
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
