// Package progress implements the daily walk state machine: slot
// generation, quota repartitioning, and completion transitions. All
// functions are pure; persistence and notification side effects belong
// to the session controller.
package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/stroll/internal/models"
)

// SlotID builds the deterministic slot identifier for a day, hour, and
// ordinal index. The index disambiguates slots that land on the same hour.
func SlotID(date string, hour, index int) string {
	return fmt.Sprintf("%s_%d_%d", date, hour, index)
}

// Hours returns the hour-of-day of each slot under the given quota,
// evenly spaced across 24 hours and strictly increasing for quota 1-24.
func Hours(quota int) []int {
	hours := make([]int, 0, quota)
	for i := 0; i < quota; i++ {
		hours = append(hours, i*24/quota)
	}
	return hours
}

// New creates the initial progress record for a day, distributing quota
// slots evenly across 24 hours. Quota must already be validated to 1-24.
func New(date string, quota int) models.DailyProgress {
	slots := make([]models.WalkSlot, 0, quota)
	for i, hour := range Hours(quota) {
		slots = append(slots, models.WalkSlot{
			ID:   SlotID(date, hour, i),
			Hour: hour,
		})
	}

	return models.DailyProgress{
		Date:       date,
		WalkSlots:  slots,
		TotalWalks: quota,
	}
}

// Repartition rebuilds the slot list for a new quota. A new slot inherits
// completion from any previously completed slot that shares its hour,
// keeping the original completion timestamp.
func Repartition(p models.DailyProgress, newQuota int) models.DailyProgress {
	completedByHour := make(map[int]models.WalkSlot)
	for _, slot := range p.WalkSlots {
		if slot.Completed {
			if _, ok := completedByHour[slot.Hour]; !ok {
				completedByHour[slot.Hour] = slot
			}
		}
	}

	slots := make([]models.WalkSlot, 0, newQuota)
	for i := 0; i < newQuota; i++ {
		hour := i * 24 / newQuota
		next := models.WalkSlot{
			ID:   SlotID(p.Date, hour, i),
			Hour: hour,
		}
		if prev, ok := completedByHour[hour]; ok {
			next.Completed = true
			next.CompletedAt = prev.CompletedAt
		}
		slots = append(slots, next)
	}

	p.WalkSlots = slots
	p.TotalWalks = newQuota
	p.CompletedWalks = countCompleted(slots)
	return p
}

// Complete marks the slot with the given id as completed at now. Unknown
// slot ids are a silent no-op, reported through the second return value.
func Complete(p models.DailyProgress, slotID string, now time.Time) (models.DailyProgress, bool) {
	found := false
	slots := make([]models.WalkSlot, len(p.WalkSlots))
	for i, slot := range p.WalkSlots {
		if slot.ID == slotID {
			t := now
			slot.Completed = true
			slot.CompletedAt = &t
			found = true
		}
		slots[i] = slot
	}

	p.WalkSlots = slots
	p.CompletedWalks = countCompleted(slots)
	return p, found
}

// Undo clears the completion state of the slot with the given id. Unknown
// slot ids are a silent no-op.
func Undo(p models.DailyProgress, slotID string) (models.DailyProgress, bool) {
	found := false
	slots := make([]models.WalkSlot, len(p.WalkSlots))
	for i, slot := range p.WalkSlots {
		if slot.ID == slotID {
			slot.Completed = false
			slot.CompletedAt = nil
			found = true
		}
		slots[i] = slot
	}

	p.WalkSlots = slots
	p.CompletedWalks = countCompleted(slots)
	return p, found
}

// SlotByHour returns the first slot at the given hour.
func SlotByHour(p models.DailyProgress, hour int) (models.WalkSlot, bool) {
	for _, slot := range p.WalkSlots {
		if slot.Hour == hour {
			return slot, true
		}
	}
	return models.WalkSlot{}, false
}

// NextPending returns the first pending slot at or after the given hour,
// falling back to the earliest pending slot of the day.
func NextPending(p models.DailyProgress, hour int) (models.WalkSlot, bool) {
	for _, slot := range p.WalkSlots {
		if !slot.Completed && slot.Hour >= hour {
			return slot, true
		}
	}
	for _, slot := range p.WalkSlots {
		if !slot.Completed {
			return slot, true
		}
	}
	return models.WalkSlot{}, false
}

// CompletedHours returns the set of hours with a completed slot.
func CompletedHours(p models.DailyProgress) map[int]bool {
	hours := make(map[int]bool)
	for _, slot := range p.WalkSlots {
		if slot.Completed {
			hours[slot.Hour] = true
		}
	}
	return hours
}

// IsComplete reports whether every slot of the day is completed.
func IsComplete(p models.DailyProgress) bool {
	return p.TotalWalks > 0 && p.CompletedWalks == p.TotalWalks
}

// HistorySnapshot derives the history entry for a day's progress.
func HistorySnapshot(p models.DailyProgress) models.HistoryDay {
	return models.HistoryDay{
		Date:                 p.Date,
		CompletedWalks:       p.CompletedWalks,
		TotalWalks:           p.TotalWalks,
		CompletionPercentage: Percentage(p.CompletedWalks, p.TotalWalks),
	}
}

// Percentage computes a rounded completion percentage.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func countCompleted(slots []models.WalkSlot) int {
	n := 0
	for _, slot := range slots {
		if slot.Completed {
			n++
		}
	}
	return n
}
