package storage

import (
	"sort"

	"github.com/julianstephens/stroll/internal/constants"
	"github.com/julianstephens/stroll/internal/models"
)

// normalizeHistory sorts entries descending by date and trims the list to
// the retention cap. Dates are YYYY-MM-DD so lexical order is date order.
func normalizeHistory(days []models.HistoryDay) []models.HistoryDay {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
	if len(days) > constants.HistoryRetentionDays {
		days = days[:constants.HistoryRetentionDays]
	}
	return days
}

// upsertHistoryDay replaces the entry sharing the day's date or appends it,
// then normalizes the list.
func upsertHistoryDay(days []models.HistoryDay, day models.HistoryDay) []models.HistoryDay {
	replaced := false
	for i := range days {
		if days[i].Date == day.Date {
			days[i] = day
			replaced = true
			break
		}
	}
	if !replaced {
		days = append(days, day)
	}
	return normalizeHistory(days)
}
