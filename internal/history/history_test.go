package history

import (
	"testing"
	"time"

	"github.com/julianstephens/stroll/internal/models"
	"github.com/julianstephens/stroll/internal/utils"
)

func TestWindowAlwaysFillsSevenDays(t *testing.T) {
	now := time.Date(2024, 1, 7, 12, 0, 0, 0, time.Local)
	days := utils.LastNDays(7, now)

	tests := []struct {
		name      string
		persisted []models.HistoryDay
	}{
		{name: "empty history", persisted: nil},
		{
			name: "sparse history",
			persisted: []models.HistoryDay{
				{Date: "2024-01-03", CompletedWalks: 4, TotalWalks: 8, CompletionPercentage: 50},
			},
		},
		{
			name: "history outside the window",
			persisted: []models.HistoryDay{
				{Date: "2023-12-01", CompletedWalks: 8, TotalWalks: 8, CompletionPercentage: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := Window(days, tt.persisted, 8)
			if len(window) != 7 {
				t.Fatalf("expected 7 entries, got %d", len(window))
			}
			for i, day := range window {
				if day.Date != days[i] {
					t.Errorf("entry %d: expected date %s, got %s", i, days[i], day.Date)
				}
			}
		})
	}
}

func TestWindowPlaceholders(t *testing.T) {
	now := time.Date(2024, 1, 7, 12, 0, 0, 0, time.Local)
	days := utils.LastNDays(7, now)
	persisted := []models.HistoryDay{
		{Date: "2024-01-05", CompletedWalks: 6, TotalWalks: 8, CompletionPercentage: 75},
	}

	window := Window(days, persisted, 10)
	for _, day := range window {
		if day.Date == "2024-01-05" {
			if day.CompletedWalks != 6 || day.CompletionPercentage != 75 {
				t.Errorf("persisted day overwritten: %+v", day)
			}
			continue
		}
		if day.CompletedWalks != 0 || day.CompletionPercentage != 0 || day.TotalWalks != 10 {
			t.Errorf("placeholder should be zero-valued with current quota: %+v", day)
		}
	}
}

func TestSummarize(t *testing.T) {
	window := []models.HistoryDay{
		{Date: "2024-01-01", CompletedWalks: 8, TotalWalks: 8, CompletionPercentage: 100},
		{Date: "2024-01-02", CompletedWalks: 4, TotalWalks: 8, CompletionPercentage: 50},
		{Date: "2024-01-03", CompletedWalks: 0, TotalWalks: 8, CompletionPercentage: 0},
		{Date: "2024-01-04", CompletedWalks: 8, TotalWalks: 8, CompletionPercentage: 100},
	}

	s := Summarize(window)
	if s.TotalWalks != 20 {
		t.Errorf("expected 20 total walks, got %d", s.TotalWalks)
	}
	if s.TotalPossible != 32 {
		t.Errorf("expected 32 possible walks, got %d", s.TotalPossible)
	}
	if s.AverageCompletion != 63 { // round(20/32*100) = round(62.5)
		t.Errorf("expected average 63, got %d", s.AverageCompletion)
	}
	if s.PerfectDays != 2 {
		t.Errorf("expected 2 perfect days, got %d", s.PerfectDays)
	}
	if s.BestDayPercentage != 100 {
		t.Errorf("expected best day 100, got %d", s.BestDayPercentage)
	}
	if s.EstimatedMiles != 10.0 {
		t.Errorf("expected 10 estimated miles, got %f", s.EstimatedMiles)
	}
}

func TestSummarizeEmptyWindow(t *testing.T) {
	s := Summarize(nil)
	if s.AverageCompletion != 0 || s.TotalWalks != 0 || s.BestDayPercentage != 0 {
		t.Errorf("expected zeroed summary, got %+v", s)
	}
}

func TestBestDayFirstOccurrenceWins(t *testing.T) {
	window := []models.HistoryDay{
		{Date: "2024-01-01", CompletionPercentage: 75},
		{Date: "2024-01-02", CompletionPercentage: 75},
	}
	if s := Summarize(window); s.BestDayPercentage != 75 {
		t.Errorf("expected 75, got %d", s.BestDayPercentage)
	}
}

func TestMotivationTiers(t *testing.T) {
	tests := []struct {
		avg  int
		want string
	}{
		{95, "Outstanding consistency! You're a walking champion!"},
		{80, "Great job! You're building an excellent walking habit!"},
		{60, "Good progress! Keep pushing forward!"},
		{30, "Every step counts! You're on the right track!"},
		{10, "Ready to start fresh? Today is a new opportunity!"},
	}
	for _, tt := range tests {
		if got := Motivation(tt.avg); got != tt.want {
			t.Errorf("Motivation(%d) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}
