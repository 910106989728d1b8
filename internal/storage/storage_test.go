package storage

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/stroll/internal/models"
	"github.com/julianstephens/stroll/internal/progress"
)

func setupTestSQLiteStore(t *testing.T) Provider {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "stroll.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init sqlite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func setupTestJSONStore(t *testing.T) Provider {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "stroll.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init json store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func forEachBackend(t *testing.T, fn func(t *testing.T, store Provider)) {
	t.Run("sqlite", func(t *testing.T) { fn(t, setupTestSQLiteStore(t)) })
	t.Run("json", func(t *testing.T) { fn(t, setupTestJSONStore(t)) })
}

func TestDefaultSettings(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("failed to get settings: %v", err)
		}
		if settings.DailyQuota != 8 || settings.WalkDurationMin != 5 {
			t.Errorf("unexpected defaults: %+v", settings)
		}
		if settings.ThemeMode != "system" || !settings.NotificationsEnabled {
			t.Errorf("unexpected defaults: %+v", settings)
		}
	})
}

func TestSettingsRoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		settings := models.UserSettings{
			DailyQuota:           12,
			WalkDurationMin:      10,
			ThemeMode:            "dark",
			NotificationsEnabled: false,
		}
		if err := store.SaveSettings(settings); err != nil {
			t.Fatalf("failed to save settings: %v", err)
		}

		got, err := store.GetSettings()
		if err != nil {
			t.Fatalf("failed to get settings: %v", err)
		}
		if got != settings {
			t.Errorf("expected %+v, got %+v", settings, got)
		}
	})
}

func TestProgressRoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		if _, ok, err := store.GetProgress("2024-01-01"); err != nil || ok {
			t.Fatalf("expected no record for fresh day, ok=%v err=%v", ok, err)
		}

		p := progress.New("2024-01-01", 8)
		now := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
		p, _ = progress.Complete(p, p.WalkSlots[3].ID, now)

		if err := store.SaveProgress(p); err != nil {
			t.Fatalf("failed to save progress: %v", err)
		}

		got, ok, err := store.GetProgress("2024-01-01")
		if err != nil || !ok {
			t.Fatalf("failed to get progress: ok=%v err=%v", ok, err)
		}
		if got.CompletedWalks != 1 || got.TotalWalks != 8 || len(got.WalkSlots) != 8 {
			t.Errorf("unexpected progress: %+v", got)
		}
		slot := got.WalkSlots[3]
		if !slot.Completed || slot.CompletedAt == nil || !slot.CompletedAt.Equal(now) {
			t.Errorf("completion state lost: %+v", slot)
		}
		for i, s := range got.WalkSlots {
			if s.ID != p.WalkSlots[i].ID || s.Hour != p.WalkSlots[i].Hour {
				t.Errorf("slot %d mismatch: %+v vs %+v", i, s, p.WalkSlots[i])
			}
		}
	})
}

func TestSaveProgressReplacesSlots(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		p := progress.New("2024-01-01", 8)
		if err := store.SaveProgress(p); err != nil {
			t.Fatalf("failed to save progress: %v", err)
		}

		p = progress.Repartition(p, 4)
		if err := store.SaveProgress(p); err != nil {
			t.Fatalf("failed to save repartitioned progress: %v", err)
		}

		got, _, err := store.GetProgress("2024-01-01")
		if err != nil {
			t.Fatalf("failed to get progress: %v", err)
		}
		if len(got.WalkSlots) != 4 || got.TotalWalks != 4 {
			t.Errorf("expected 4 slots after repartition, got %d", len(got.WalkSlots))
		}
	})
}

func TestPurgeProgressBefore(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		for _, date := range []string{"2023-11-01", "2023-12-15", "2024-01-01"} {
			if err := store.SaveProgress(progress.New(date, 4)); err != nil {
				t.Fatalf("failed to save progress: %v", err)
			}
		}

		if err := store.PurgeProgressBefore("2023-12-31"); err != nil {
			t.Fatalf("failed to purge: %v", err)
		}

		for _, tt := range []struct {
			date string
			want bool
		}{
			{"2023-11-01", false},
			{"2023-12-15", false},
			{"2024-01-01", true},
		} {
			_, ok, err := store.GetProgress(tt.date)
			if err != nil {
				t.Fatalf("failed to get progress: %v", err)
			}
			if ok != tt.want {
				t.Errorf("date %s: expected present=%v, got %v", tt.date, tt.want, ok)
			}
		}
	})
}

func TestHistoryUpsertReplacesByDate(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		day := models.HistoryDay{Date: "2024-01-01", CompletedWalks: 1, TotalWalks: 8, CompletionPercentage: 13}
		if err := store.UpsertHistoryDay(day); err != nil {
			t.Fatalf("failed to upsert: %v", err)
		}

		day.CompletedWalks = 2
		day.CompletionPercentage = 25
		if err := store.UpsertHistoryDay(day); err != nil {
			t.Fatalf("failed to upsert: %v", err)
		}

		history, err := store.GetHistory()
		if err != nil {
			t.Fatalf("failed to get history: %v", err)
		}
		if len(history) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(history))
		}
		if history[0].CompletedWalks != 2 || history[0].CompletionPercentage != 25 {
			t.Errorf("entry not replaced: %+v", history[0])
		}
	})
}

func TestHistoryRetentionCap(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 31; i++ {
			day := models.HistoryDay{
				Date:                 start.AddDate(0, 0, i).Format("2006-01-02"),
				CompletedWalks:       4,
				TotalWalks:           8,
				CompletionPercentage: 50,
			}
			if err := store.UpsertHistoryDay(day); err != nil {
				t.Fatalf("failed to upsert day %d: %v", i, err)
			}
		}

		history, err := store.GetHistory()
		if err != nil {
			t.Fatalf("failed to get history: %v", err)
		}
		if len(history) != 30 {
			t.Fatalf("expected 30 entries after 31 upserts, got %d", len(history))
		}
		// Sorted descending: the oldest day (2024-01-01) was trimmed.
		if history[0].Date != "2024-01-31" {
			t.Errorf("expected newest entry first, got %s", history[0].Date)
		}
		if history[len(history)-1].Date != "2024-01-02" {
			t.Errorf("expected oldest surviving entry 2024-01-02, got %s", history[len(history)-1].Date)
		}
	})
}

func TestSaveHistoryNormalizes(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		// Ascending order, over the retention cap.
		days := make([]models.HistoryDay, 0, 35)
		for i := 0; i < 35; i++ {
			days = append(days, models.HistoryDay{
				Date:                 start.AddDate(0, 0, i).Format("2006-01-02"),
				CompletedWalks:       2,
				TotalWalks:           8,
				CompletionPercentage: 25,
			})
		}

		if err := store.SaveHistory(days); err != nil {
			t.Fatalf("failed to save history: %v", err)
		}

		history, err := store.GetHistory()
		if err != nil {
			t.Fatalf("failed to get history: %v", err)
		}
		if len(history) != 30 {
			t.Fatalf("expected list capped at 30, got %d", len(history))
		}
		// Sorted descending: the 5 oldest days were dropped.
		if history[0].Date != "2024-02-04" {
			t.Errorf("expected newest entry first, got %s", history[0].Date)
		}
		if history[len(history)-1].Date != "2024-01-06" {
			t.Errorf("expected oldest surviving entry 2024-01-06, got %s", history[len(history)-1].Date)
		}
		for i := 1; i < len(history); i++ {
			if history[i].Date > history[i-1].Date {
				t.Fatalf("history not sorted descending at %d: %s > %s",
					i, history[i].Date, history[i-1].Date)
			}
		}
	})
}

func TestWalkSessions(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		started := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			session := models.WalkSession{
				ID:          uuid.New().String(),
				SlotID:      fmt.Sprintf("2024-01-01_%d_%d", i*3, i),
				StartedAt:   started.Add(time.Duration(i) * time.Hour),
				DurationMin: 5,
				Completed:   i != 2,
			}
			if err := store.SaveWalkSession(session); err != nil {
				t.Fatalf("failed to save session: %v", err)
			}
		}

		sessions, err := store.GetWalkSessions("2024-01-01")
		if err != nil {
			t.Fatalf("failed to get sessions: %v", err)
		}
		if len(sessions) != 3 {
			t.Fatalf("expected 3 sessions, got %d", len(sessions))
		}

		other, err := store.GetWalkSessions("2024-01-02")
		if err != nil {
			t.Fatalf("failed to get sessions: %v", err)
		}
		if len(other) != 0 {
			t.Errorf("expected no sessions on another day, got %d", len(other))
		}
	})
}
