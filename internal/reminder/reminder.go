// Package reminder runs the background loop that turns the day's pending
// slots into desktop notifications. It checks once a minute, in the same
// way it would fire from a mobile notification scheduler, and relies on
// the session for day rollover.
package reminder

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/julianstephens/stroll/internal/logger"
	"github.com/julianstephens/stroll/internal/notify"
	"github.com/julianstephens/stroll/internal/session"
	"github.com/julianstephens/stroll/internal/utils"
)

// Daemon owns the recurring reminder job.
type Daemon struct {
	session   *session.Session
	notifier  notify.Notifier
	scheduler gocron.Scheduler
}

func New(sess *session.Session, notifier notify.Notifier) (*Daemon, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Daemon{
		session:   sess,
		notifier:  notifier,
		scheduler: scheduler,
	}, nil
}

// Start registers the minute job and begins scheduling. The job fires a
// reminder at the top of each hour that still has a pending slot.
func (d *Daemon) Start() error {
	_, err := d.scheduler.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(func() {
			d.Check(time.Now())
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to register reminder job: %w", err)
	}

	d.scheduler.Start()
	return nil
}

// Check fires the reminder for now's hour when it is the top of the hour
// and the hour has a pending slot. Exposed for the dry-run command and
// tests.
func (d *Daemon) Check(now time.Time) bool {
	if now.Minute() != 0 {
		return false
	}

	settings := d.session.Settings()
	if !settings.NotificationsEnabled {
		return false
	}

	today := d.session.Today()
	hour := now.Hour()
	for _, slot := range today.WalkSlots {
		if slot.Hour != hour || slot.Completed {
			continue
		}
		body := fmt.Sprintf("Time for your %s walk (%d/%d done today)",
			utils.HourLabel(hour), today.CompletedWalks, today.TotalWalks)
		if err := d.notifier.Send("Walk Reminder", body); err != nil {
			logger.Warn("Failed to deliver reminder", "hour", hour, "error", err)
			return false
		}
		return true
	}
	return false
}

// Stop shuts the scheduler down. Safe to call once.
func (d *Daemon) Stop() error {
	return d.scheduler.Shutdown()
}
