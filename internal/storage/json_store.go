package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/stroll/internal/constants"
	"github.com/julianstephens/stroll/internal/models"
)

type jsonDocument struct {
	Version  int                             `json:"version"`
	Settings models.UserSettings             `json:"settings"`
	Progress map[string]models.DailyProgress `json:"progress"` // date -> progress
	History  []models.HistoryDay             `json:"history"`
	Sessions []models.WalkSession            `json:"sessions"`
}

// JSONStore persists everything in a single JSON file. It also serves as
// the in-memory fake for tests via a temp path.
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDocument{
		Version: 1,
		Settings: models.UserSettings{
			DailyQuota:           constants.DefaultDailyQuota,
			WalkDurationMin:      constants.DefaultWalkDurationMin,
			ThemeMode:            constants.DefaultThemeMode,
			NotificationsEnabled: constants.DefaultNotificationsEnabled,
		},
		Progress: make(map[string]models.DailyProgress),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'stroll init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDocument{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.doc.Progress == nil {
		s.doc.Progress = make(map[string]models.DailyProgress)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.UserSettings, error) {
	if s.doc == nil {
		return models.UserSettings{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.UserSettings) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) GetProgress(date string) (models.DailyProgress, bool, error) {
	if s.doc == nil {
		return models.DailyProgress{}, false, fmt.Errorf("storage not loaded")
	}
	p, ok := s.doc.Progress[date]
	return p, ok, nil
}

func (s *JSONStore) SaveProgress(p models.DailyProgress) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Progress[p.Date] = p
	return s.save()
}

func (s *JSONStore) PurgeProgressBefore(date string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	for day := range s.doc.Progress {
		if day < date {
			delete(s.doc.Progress, day)
		}
	}
	return s.save()
}

func (s *JSONStore) GetHistory() ([]models.HistoryDay, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	history := make([]models.HistoryDay, len(s.doc.History))
	copy(history, s.doc.History)
	return history, nil
}

func (s *JSONStore) SaveHistory(days []models.HistoryDay) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.History = normalizeHistory(days)
	return s.save()
}

func (s *JSONStore) UpsertHistoryDay(day models.HistoryDay) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.History = upsertHistoryDay(s.doc.History, day)
	return s.save()
}

func (s *JSONStore) SaveWalkSession(session models.WalkSession) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.doc.Sessions {
		if s.doc.Sessions[i].ID == session.ID {
			s.doc.Sessions[i] = session
			return s.save()
		}
	}
	s.doc.Sessions = append(s.doc.Sessions, session)
	return s.save()
}

func (s *JSONStore) GetWalkSessions(date string) ([]models.WalkSession, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	var sessions []models.WalkSession
	for _, session := range s.doc.Sessions {
		if session.StartedAt.Format(constants.DateFormat) == date {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
