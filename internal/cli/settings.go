package cli

import (
	"fmt"

	"github.com/julianstephens/stroll/internal/validation"
)

type SettingsCmd struct {
	Quota         *int    `help:"Walks per day (1-24)."`
	Duration      *int    `help:"Walk length in minutes (1-60)."`
	Theme         *string `help:"Theme mode: light, dark, or system."`
	Notifications *bool   `help:"Enable/disable walk reminders."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	sess, err := ctx.OpenSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	settings := sess.Settings()

	changed := false
	if c.Quota != nil {
		settings.DailyQuota = *c.Quota
		changed = true
	}
	if c.Duration != nil {
		settings.WalkDurationMin = *c.Duration
		changed = true
	}
	if c.Theme != nil {
		settings.ThemeMode = *c.Theme
		changed = true
	}
	if c.Notifications != nil {
		settings.NotificationsEnabled = *c.Notifications
		changed = true
	}

	if changed {
		if err := validation.ValidateSettings(settings); err != nil {
			return err
		}
		if err := sess.UpdateSettings(settings); err != nil {
			return err
		}
		fmt.Println("Settings updated.")
	}

	fmt.Println("Current settings:")
	fmt.Printf("  daily_quota:           %d\n", settings.DailyQuota)
	fmt.Printf("  walk_duration_min:     %d\n", settings.WalkDurationMin)
	fmt.Printf("  theme_mode:            %s\n", settings.ThemeMode)
	fmt.Printf("  notifications_enabled: %t\n", settings.NotificationsEnabled)
	return nil
}
