// Package history derives the trailing-window review from persisted
// daily summaries. It holds no state of its own.
package history

import (
	"github.com/julianstephens/stroll/internal/constants"
	"github.com/julianstephens/stroll/internal/models"
	"github.com/julianstephens/stroll/internal/progress"
)

// Summary is the aggregate view over a history window.
type Summary struct {
	TotalWalks        int     // completed walks across the window
	TotalPossible     int     // quota sum across the window
	AverageCompletion int     // rounded percentage, 0 when nothing was possible
	PerfectDays       int     // days at 100%
	BestDayPercentage int     // highest single-day percentage, first occurrence wins
	EstimatedMiles    float64 // static estimate, not GPS-derived
}

// Window maps the given day keys onto persisted history, producing exactly
// one entry per day. Days absent from the persisted list get a zero-valued
// placeholder carrying the current quota.
func Window(days []string, persisted []models.HistoryDay, currentQuota int) []models.HistoryDay {
	byDate := make(map[string]models.HistoryDay, len(persisted))
	for _, day := range persisted {
		byDate[day.Date] = day
	}

	window := make([]models.HistoryDay, 0, len(days))
	for _, date := range days {
		if day, ok := byDate[date]; ok {
			window = append(window, day)
			continue
		}
		window = append(window, models.HistoryDay{
			Date:       date,
			TotalWalks: currentQuota,
		})
	}
	return window
}

// Summarize computes the window statistics shown on the history screen.
func Summarize(window []models.HistoryDay) Summary {
	s := Summary{}
	for _, day := range window {
		s.TotalWalks += day.CompletedWalks
		s.TotalPossible += day.TotalWalks
		if day.CompletionPercentage >= 100 {
			s.PerfectDays++
		}
		if day.CompletionPercentage > s.BestDayPercentage {
			s.BestDayPercentage = day.CompletionPercentage
		}
	}
	s.AverageCompletion = progress.Percentage(s.TotalWalks, s.TotalPossible)
	s.EstimatedMiles = float64(s.TotalWalks) * constants.MilesPerWalk
	return s
}

// Motivation returns the encouragement line for an average completion
// percentage.
func Motivation(averageCompletion int) string {
	switch {
	case averageCompletion >= 90:
		return "Outstanding consistency! You're a walking champion!"
	case averageCompletion >= 75:
		return "Great job! You're building an excellent walking habit!"
	case averageCompletion >= 50:
		return "Good progress! Keep pushing forward!"
	case averageCompletion >= 25:
		return "Every step counts! You're on the right track!"
	default:
		return "Ready to start fresh? Today is a new opportunity!"
	}
}
