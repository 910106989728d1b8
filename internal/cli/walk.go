package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/julianstephens/stroll/internal/models"
	"github.com/julianstephens/stroll/internal/timer"
	"github.com/julianstephens/stroll/internal/utils"
)

type WalkCmd struct {
	Hour     *int `help:"Hour of the slot to walk (0-23). Defaults to the next pending walk."`
	Duration *int `help:"Override the walk duration in minutes for this walk only."`
}

func (c *WalkCmd) Run(ctx *Context) error {
	sess, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	slot, err := resolveSlot(sess.Today(), c.Hour, timeNow().Hour())
	if err != nil {
		return err
	}
	if slot.Completed {
		return fmt.Errorf("the %s walk is already done", utils.HourLabel(slot.Hour))
	}

	duration := sess.Settings().WalkDurationMin
	if c.Duration != nil {
		if *c.Duration < 1 {
			return fmt.Errorf("duration must be at least 1 minute")
		}
		duration = *c.Duration
	}

	startedAt := timeNow()
	completed := false
	t := timer.New(func(slotID string) {
		sess.Complete(slotID)
		completed = true
	})
	t.Start(slot.ID, duration)

	fmt.Printf("Walking the %s slot for %d minutes. Ctrl+C to stop early.\n",
		utils.HourLabel(slot.Hour), duration)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	for t.State() == timer.Running {
		select {
		case <-ticker.C:
			t.Tick()
			snap := t.Snapshot()
			fmt.Printf("\r  %s remaining ", utils.FormatClock(snap.TimeRemaining))
		case <-interrupt:
			t.Stop()
			fmt.Println("\nWalk stopped. The slot stays pending.")
		}
	}

	sess.RecordWalkSession(models.WalkSession{
		ID:          uuid.NewString(),
		SlotID:      slot.ID,
		StartedAt:   startedAt,
		DurationMin: duration,
		Completed:   completed,
	})

	if completed {
		today := sess.Today()
		fmt.Printf("\nWalk complete! %d/%d walks today.\n", today.CompletedWalks, today.TotalWalks)
	}
	return nil
}
