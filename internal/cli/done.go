package cli

import (
	"fmt"

	"github.com/julianstephens/stroll/internal/utils"
)

type DoneCmd struct {
	Hour *int `help:"Hour of the slot to mark (0-23). Defaults to the next pending walk."`
}

func (c *DoneCmd) Run(ctx *Context) error {
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

	updated := sess.Complete(slot.ID)
	fmt.Printf("Marked the %s walk done. %d/%d walks today.\n",
		utils.HourLabel(slot.Hour), updated.CompletedWalks, updated.TotalWalks)
	return nil
}

type UndoCmd struct {
	Hour *int `help:"Hour of the slot to clear (0-23). Defaults to the most recent completed walk."`
}

func (c *UndoCmd) Run(ctx *Context) error {
	sess, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	today := sess.Today()
	var slotID string
	var hour int
	if c.Hour != nil {
		slot, err := resolveSlot(today, c.Hour, timeNow().Hour())
		if err != nil {
			return err
		}
		if !slot.Completed {
			return fmt.Errorf("the %s walk is not marked done", utils.HourLabel(slot.Hour))
		}
		slotID = slot.ID
		hour = slot.Hour
	} else {
		// Without an hour, clear the latest completed slot.
		found := false
		for _, slot := range today.WalkSlots {
			if slot.Completed {
				slotID = slot.ID
				hour = slot.Hour
				found = true
			}
		}
		if !found {
			return fmt.Errorf("no completed walks to undo")
		}
	}

	updated := sess.Undo(slotID)
	fmt.Printf("Cleared the %s walk. %d/%d walks today.\n",
		utils.HourLabel(hour), updated.CompletedWalks, updated.TotalWalks)
	return nil
}
