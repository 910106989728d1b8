package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/julianstephens/stroll/internal/notify"
	"github.com/julianstephens/stroll/internal/progress"
	"github.com/julianstephens/stroll/internal/reminder"
	"github.com/julianstephens/stroll/internal/utils"
)

type RemindCmd struct {
	DryRun bool `help:"Print the reminder that would fire right now and exit."`
}

func (c *RemindCmd) Run(ctx *Context) error {
	sess, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	if c.DryRun {
		if !sess.Settings().NotificationsEnabled {
			fmt.Println("Notifications are disabled; no reminders would fire.")
			return nil
		}
		today := sess.Today()
		slot, ok := progress.SlotByHour(today, timeNow().Hour())
		if !ok || slot.Completed {
			fmt.Println("No reminder due this hour.")
		} else {
			fmt.Printf("Would remind: time for your %s walk (%d/%d done today).\n",
				utils.HourLabel(slot.Hour), today.CompletedWalks, today.TotalWalks)
		}
		printTrayPlan()
		return nil
	}

	sess.WatchMidnight()

	daemon, err := reminder.New(sess, ctx.Notifier)
	if err != nil {
		return err
	}
	if err := daemon.Start(); err != nil {
		return err
	}
	defer daemon.Stop()

	fmt.Println("Reminder daemon running. Ctrl+C to stop.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	fmt.Println("Stopping.")
	return nil
}

// printTrayPlan reports the reminder plan last persisted for the tray
// companion, when one exists.
func printTrayPlan() {
	total, pending, err := notify.ReminderPlan()
	if err != nil || total == 0 {
		return
	}
	if len(pending) == 0 {
		fmt.Printf("Tray plan: %d walks/day, nothing pending.\n", total)
		return
	}
	labels := make([]string, 0, len(pending))
	for _, hour := range pending {
		labels = append(labels, utils.HourLabel(hour))
	}
	fmt.Printf("Tray plan: %d walks/day, pending: %s\n", total, strings.Join(labels, ", "))
}
