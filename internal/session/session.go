// Package session owns the live application state: current settings,
// today's progress, and the midnight rollover watch. All mutation of
// DailyProgress goes through it; persistence and notification calls are
// side effects that degrade gracefully on failure.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/stroll/internal/constants"
	"github.com/julianstephens/stroll/internal/logger"
	"github.com/julianstephens/stroll/internal/models"
	"github.com/julianstephens/stroll/internal/notify"
	"github.com/julianstephens/stroll/internal/progress"
	"github.com/julianstephens/stroll/internal/storage"
	"github.com/julianstephens/stroll/internal/utils"
)

// Session is the authoritative owner of today's walk state.
type Session struct {
	mu       sync.Mutex
	store    storage.Provider
	notifier notify.Notifier
	settings models.UserSettings
	today    models.DailyProgress
	midnight *time.Timer
}

// New creates a session. Call Load before anything else.
func New(store storage.Provider, notifier notify.Notifier) *Session {
	return &Session{
		store:    store,
		notifier: notifier,
	}
}

// Load reads settings and today's progress, creating or repartitioning the
// day as needed, then runs startup housekeeping: purging stale progress
// records and scheduling reminders.
func (s *Session) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	s.settings = settings

	if err := s.loadToday(); err != nil {
		return err
	}

	// Drop per-day records outside the retention window.
	cutoff := utils.FormatDate(time.Now().AddDate(0, 0, -constants.HistoryRetentionDays))
	if err := s.store.PurgeProgressBefore(cutoff); err != nil {
		logger.Warn("Failed to purge old progress records", "error", err)
	}

	s.scheduleReminders()
	return nil
}

// loadToday fetches or builds the progress record for the current day.
// Caller holds the lock.
func (s *Session) loadToday() error {
	today := utils.Today()

	p, ok, err := s.store.GetProgress(today)
	if err != nil {
		return fmt.Errorf("failed to load progress for %s: %w", today, err)
	}

	if !ok {
		p = progress.New(today, s.settings.DailyQuota)
		if err := s.store.SaveProgress(p); err != nil {
			logger.Error("Failed to persist new day", "date", today, "error", err)
		}
	} else if p.TotalWalks != s.settings.DailyQuota {
		// Quota changed since the record was written.
		p = progress.Repartition(p, s.settings.DailyQuota)
		if err := s.store.SaveProgress(p); err != nil {
			logger.Error("Failed to persist repartitioned day", "date", today, "error", err)
		}
	}

	s.today = p
	return nil
}

// ensureToday discards in-memory state and reinitializes when the calendar
// day has rolled over since the progress record was loaded. The old day is
// left behind as its sealed history entry. Caller holds the lock.
func (s *Session) ensureToday() {
	if utils.IsToday(s.today.Date) {
		return
	}
	logger.Info("Day rollover detected", "from", s.today.Date)
	if err := s.loadToday(); err != nil {
		logger.Error("Failed to reload after rollover", "error", err)
	}
	s.scheduleReminders()
}

// Today returns the current day's progress, rolling over first if needed.
func (s *Session) Today() models.DailyProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureToday()
	return s.today
}

// Settings returns the loaded settings.
func (s *Session) Settings() models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// History returns the persisted history list, newest first.
func (s *Session) History() ([]models.HistoryDay, error) {
	return s.store.GetHistory()
}

// Complete marks a slot done, persists the day, refreshes its history
// entry, and notifies. Unknown slot ids are a silent no-op.
func (s *Session) Complete(slotID string) models.DailyProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureToday()

	updated, found := progress.Complete(s.today, slotID, time.Now())
	if !found {
		return s.today
	}
	s.today = updated
	s.persistAndRecord()

	if s.settings.NotificationsEnabled {
		if progress.IsComplete(s.today) {
			s.send("Congratulations!", "You've completed all your walks for today!")
		} else {
			s.send("Walk Completed!", fmt.Sprintf("%d/%d walks done today. Keep it up!",
				s.today.CompletedWalks, s.today.TotalWalks))
		}
	}
	s.scheduleReminders()

	return s.today
}

// Undo clears a slot's completion and refreshes the day's history entry.
func (s *Session) Undo(slotID string) models.DailyProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureToday()

	updated, found := progress.Undo(s.today, slotID)
	if !found {
		return s.today
	}
	s.today = updated
	s.persistAndRecord()
	s.scheduleReminders()

	return s.today
}

// UpdateSettings applies pre-validated settings: persists them,
// repartitions today's slots when the quota changed, and reconciles
// reminder scheduling when notifications were toggled.
func (s *Session) UpdateSettings(settings models.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureToday()

	if err := s.store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	quotaChanged := settings.DailyQuota != s.settings.DailyQuota
	notifyToggled := settings.NotificationsEnabled != s.settings.NotificationsEnabled
	s.settings = settings

	if quotaChanged && s.today.TotalWalks != settings.DailyQuota {
		s.today = progress.Repartition(s.today, settings.DailyQuota)
		s.persistAndRecord()
	}

	if notifyToggled && !settings.NotificationsEnabled {
		if err := s.notifier.CancelAll(); err != nil {
			logger.Warn("Failed to cancel reminders", "error", err)
		}
	} else {
		s.scheduleReminders()
	}

	return nil
}

// WatchMidnight arms a timer that reinitializes the session at the next
// local midnight and re-arms itself for the following day. Close stops it.
func (s *Session) WatchMidnight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armMidnight()
}

func (s *Session) armMidnight() {
	if s.midnight != nil {
		s.midnight.Stop()
	}
	s.midnight = time.AfterFunc(utils.TimeUntilMidnight(time.Now()), func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.ensureToday()
		s.armMidnight()
	})
}

// Close cancels the midnight watch and releases the storage backend.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.midnight != nil {
		s.midnight.Stop()
		s.midnight = nil
	}
	s.mu.Unlock()
	return s.store.Close()
}

// RecordWalkSession stores a timed walk's outcome. Failures are logged only.
func (s *Session) RecordWalkSession(session models.WalkSession) {
	if err := s.store.SaveWalkSession(session); err != nil {
		logger.Warn("Failed to record walk session", "error", err)
	}
}

// persistAndRecord writes today's progress and its history snapshot.
// Failures are logged and the in-memory state stays authoritative.
// Caller holds the lock.
func (s *Session) persistAndRecord() {
	if err := s.store.SaveProgress(s.today); err != nil {
		logger.Error("Failed to persist progress", "date", s.today.Date, "error", err)
	}
	if err := s.store.UpsertHistoryDay(progress.HistorySnapshot(s.today)); err != nil {
		logger.Error("Failed to update history", "date", s.today.Date, "error", err)
	}
}

// scheduleReminders records the pending-hour plan with the notifier.
// Caller holds the lock.
func (s *Session) scheduleReminders() {
	if !s.settings.NotificationsEnabled {
		return
	}
	if !s.notifier.RequestPermission() {
		logger.Debug("Notification delivery unavailable, reminders not scheduled")
		return
	}
	if err := s.notifier.ScheduleReminders(s.today.TotalWalks, progress.CompletedHours(s.today)); err != nil {
		logger.Warn("Failed to schedule reminders", "error", err)
	}
}

func (s *Session) send(title, body string) {
	if err := s.notifier.Send(title, body); err != nil {
		logger.Debug("Notification not delivered", "error", err)
	}
}
