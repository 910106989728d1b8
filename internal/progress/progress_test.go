package progress

import (
	"testing"
	"time"
)

func TestNewGeneratesEvenSlots(t *testing.T) {
	for quota := 1; quota <= 24; quota++ {
		p := New("2024-01-01", quota)

		if len(p.WalkSlots) != quota {
			t.Fatalf("quota %d: expected %d slots, got %d", quota, quota, len(p.WalkSlots))
		}
		if p.TotalWalks != quota {
			t.Errorf("quota %d: expected TotalWalks %d, got %d", quota, quota, p.TotalWalks)
		}
		if p.CompletedWalks != 0 {
			t.Errorf("quota %d: expected no completed walks, got %d", quota, p.CompletedWalks)
		}

		prevHour := -1
		seen := make(map[string]bool)
		for _, slot := range p.WalkSlots {
			if slot.Hour < 0 || slot.Hour > 23 {
				t.Errorf("quota %d: hour %d out of range", quota, slot.Hour)
			}
			if slot.Hour < prevHour {
				t.Errorf("quota %d: hours not non-decreasing", quota)
			}
			prevHour = slot.Hour
			if slot.Completed || slot.CompletedAt != nil {
				t.Errorf("quota %d: new slot already completed", quota)
			}
			if seen[slot.ID] {
				t.Errorf("quota %d: duplicate slot id %s", quota, slot.ID)
			}
			seen[slot.ID] = true
		}
	}
}

func TestHours(t *testing.T) {
	got := Hours(8)
	want := []int{0, 3, 6, 9, 12, 15, 18, 21}
	for i, hour := range want {
		if got[i] != hour {
			t.Errorf("Hours(8)[%d]: expected %d, got %d", i, hour, got[i])
		}
	}

	for quota := 1; quota <= 24; quota++ {
		hours := Hours(quota)
		if len(hours) != quota {
			t.Errorf("quota %d: expected %d hours, got %d", quota, quota, len(hours))
		}
		for i, hour := range hours {
			if hour < 0 || hour > 23 {
				t.Errorf("quota %d: hour %d out of range", quota, hour)
			}
			if i > 0 && hour <= hours[i-1] {
				t.Errorf("quota %d: hours not strictly increasing: %v", quota, hours)
			}
		}
	}
}

func TestNewQuota8Hours(t *testing.T) {
	p := New("2024-01-01", 8)
	want := []int{0, 3, 6, 9, 12, 15, 18, 21}
	for i, slot := range p.WalkSlots {
		if slot.Hour != want[i] {
			t.Errorf("slot %d: expected hour %d, got %d", i, want[i], slot.Hour)
		}
	}
}

func TestCompleteAndHistorySnapshot(t *testing.T) {
	p := New("2024-01-01", 8)
	now := time.Date(2024, 1, 1, 9, 15, 0, 0, time.Local)

	slot, ok := SlotByHour(p, 9)
	if !ok {
		t.Fatal("expected a slot at hour 9")
	}

	p, found := Complete(p, slot.ID, now)
	if !found {
		t.Fatal("expected slot to be found")
	}
	if p.CompletedWalks != 1 {
		t.Errorf("expected 1 completed walk, got %d", p.CompletedWalks)
	}

	day := HistorySnapshot(p)
	if day.Date != "2024-01-01" || day.CompletedWalks != 1 || day.TotalWalks != 8 {
		t.Errorf("unexpected snapshot: %+v", day)
	}
	if day.CompletionPercentage != 13 {
		t.Errorf("expected percentage 13 (round of 12.5), got %d", day.CompletionPercentage)
	}
}

func TestCompleteUnknownSlotIsNoop(t *testing.T) {
	p := New("2024-01-01", 4)
	updated, found := Complete(p, "2024-01-01_99_99", time.Now())
	if found {
		t.Error("expected unknown slot id to report not found")
	}
	if updated.CompletedWalks != 0 {
		t.Errorf("expected no completions, got %d", updated.CompletedWalks)
	}
}

func TestCompleteThenUndoRestoresState(t *testing.T) {
	p := New("2024-01-01", 8)
	slot := p.WalkSlots[3]

	p, _ = Complete(p, slot.ID, time.Now())
	if p.CompletedWalks != 1 {
		t.Fatalf("expected 1 completed walk, got %d", p.CompletedWalks)
	}

	p, found := Undo(p, slot.ID)
	if !found {
		t.Fatal("expected slot to be found on undo")
	}
	if p.CompletedWalks != 0 {
		t.Errorf("expected 0 completed walks after undo, got %d", p.CompletedWalks)
	}
	for _, s := range p.WalkSlots {
		if s.ID == slot.ID && (s.Completed || s.CompletedAt != nil) {
			t.Error("undo did not clear completion state")
		}
	}
}

func TestRepartitionPreservesCompletedHours(t *testing.T) {
	p := New("2024-01-01", 8) // hours 0,3,6,9,12,15,18,21
	completedAt := time.Date(2024, 1, 1, 12, 30, 0, 0, time.Local)

	slot, _ := SlotByHour(p, 12)
	p, _ = Complete(p, slot.ID, completedAt)
	slot, _ = SlotByHour(p, 9)
	p, _ = Complete(p, slot.ID, completedAt)

	// quota 12 yields hours 0,2,4,6,8,10,12,14,16,18,20,22: hour 12
	// survives, hour 9 does not.
	p = Repartition(p, 12)

	if p.TotalWalks != 12 || len(p.WalkSlots) != 12 {
		t.Fatalf("expected 12 slots, got %d/%d", p.TotalWalks, len(p.WalkSlots))
	}
	if p.CompletedWalks != 1 {
		t.Errorf("expected 1 carried-over completion, got %d", p.CompletedWalks)
	}

	carried, ok := SlotByHour(p, 12)
	if !ok || !carried.Completed {
		t.Fatal("expected hour 12 to stay completed")
	}
	if carried.CompletedAt == nil || !carried.CompletedAt.Equal(completedAt) {
		t.Error("expected original completion timestamp to carry over")
	}
}

func TestRepartitionCompletedCountMatchesCarriedHours(t *testing.T) {
	p := New("2024-01-01", 6) // hours 0,4,8,12,16,20
	for _, s := range p.WalkSlots {
		p, _ = Complete(p, s.ID, time.Now())
	}

	p = Repartition(p, 3) // hours 0,8,16, all previously completed
	if p.CompletedWalks != 3 {
		t.Errorf("expected 3 completions after shrinking quota, got %d", p.CompletedWalks)
	}

	p = Repartition(p, 24) // one slot per hour; 0,8,16 completed
	if p.CompletedWalks != 3 {
		t.Errorf("expected 3 completions after growing quota, got %d", p.CompletedWalks)
	}
}

func TestNextPending(t *testing.T) {
	p := New("2024-01-01", 8)

	slot, ok := NextPending(p, 10)
	if !ok || slot.Hour != 12 {
		t.Errorf("expected next pending at hour 12, got %+v", slot)
	}

	// Complete everything after hour 10; next pending wraps to the morning.
	for _, s := range p.WalkSlots {
		if s.Hour >= 10 {
			p, _ = Complete(p, s.ID, time.Now())
		}
	}
	slot, ok = NextPending(p, 10)
	if !ok || slot.Hour != 0 {
		t.Errorf("expected fallback to earliest pending slot, got %+v", slot)
	}

	for _, s := range p.WalkSlots {
		p, _ = Complete(p, s.ID, time.Now())
	}
	if _, ok := NextPending(p, 0); ok {
		t.Error("expected no pending slot on a fully completed day")
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 8, 0},
		{1, 8, 13},
		{4, 8, 50},
		{8, 8, 100},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Percentage(tt.completed, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestIsComplete(t *testing.T) {
	p := New("2024-01-01", 2)
	if IsComplete(p) {
		t.Error("fresh day should not be complete")
	}
	for _, s := range p.WalkSlots {
		p, _ = Complete(p, s.ID, time.Now())
	}
	if !IsComplete(p) {
		t.Error("expected day with all slots done to be complete")
	}
}
