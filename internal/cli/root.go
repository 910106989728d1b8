package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/stroll/internal/models"
	"github.com/julianstephens/stroll/internal/notify"
	"github.com/julianstephens/stroll/internal/progress"
	"github.com/julianstephens/stroll/internal/session"
	"github.com/julianstephens/stroll/internal/storage"
	"github.com/julianstephens/stroll/internal/utils"
)

type Context struct {
	Store    storage.Provider
	Notifier notify.Notifier
}

var timeNow = time.Now

// OpenSession loads storage and returns a ready session. Callers own
// the session and must Close it.
func (ctx *Context) OpenSession() (*session.Session, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, err
	}
	sess := session.New(ctx.Store, ctx.Notifier)
	if err := sess.Load(); err != nil {
		return nil, err
	}
	return sess, nil
}

func printDay(p models.DailyProgress) {
	fmt.Printf("Walks for %s: %d/%d (%d%%)\n\n", utils.ReadableDate(p.Date, timeNow()),
		p.CompletedWalks, p.TotalWalks, progress.Percentage(p.CompletedWalks, p.TotalWalks))

	for _, slot := range p.WalkSlots {
		mark := "[ ]"
		detail := ""
		if slot.Completed {
			mark = "[x]"
			if slot.CompletedAt != nil {
				detail = fmt.Sprintf("  done at %s", slot.CompletedAt.Format("3:04 PM"))
			}
		}
		fmt.Printf("  %s %-6s%s\n", mark, utils.HourLabel(slot.Hour), detail)
	}
}

// resolveSlot maps an optional --hour flag to a slot id. With no hour
// given it picks the next pending slot at or after the current hour.
func resolveSlot(p models.DailyProgress, hour *int, now int) (models.WalkSlot, error) {
	if hour != nil {
		slot, ok := progress.SlotByHour(p, *hour)
		if !ok {
			return models.WalkSlot{}, fmt.Errorf("no walk scheduled at %s", utils.HourLabel(*hour))
		}
		return slot, nil
	}
	slot, ok := progress.NextPending(p, now)
	if !ok {
		return models.WalkSlot{}, fmt.Errorf("all walks are done for today")
	}
	return slot, nil
}
