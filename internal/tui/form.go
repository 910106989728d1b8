package tui

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/stroll/internal/constants"
	"github.com/julianstephens/stroll/internal/models"
	"github.com/julianstephens/stroll/internal/validation"
)

type SettingsFormModel struct {
	Quota         string
	Duration      string
	Theme         string
	Notifications bool
}

func newSettingsFormModel(s models.UserSettings) *SettingsFormModel {
	return &SettingsFormModel{
		Quota:         strconv.Itoa(s.DailyQuota),
		Duration:      strconv.Itoa(s.WalkDurationMin),
		Theme:         s.ThemeMode,
		Notifications: s.NotificationsEnabled,
	}
}

// Settings converts the form back to validated settings.
func (fm *SettingsFormModel) Settings() (models.UserSettings, error) {
	s := models.UserSettings{
		ThemeMode:            fm.Theme,
		NotificationsEnabled: fm.Notifications,
	}
	var err error
	if s.DailyQuota, err = strconv.Atoi(fm.Quota); err != nil {
		return s, err
	}
	if s.WalkDurationMin, err = strconv.Atoi(fm.Duration); err != nil {
		return s, err
	}
	return s, validation.ValidateSettings(s)
}

func newSettingsForm(fm *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Walks per day").
				Value(&fm.Quota).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					return validation.ValidateQuota(i)
				}),
			huh.NewInput().
				Title("Walk length (minutes)").
				Value(&fm.Duration).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					return validation.ValidateDuration(i)
				}),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("Light", constants.ThemeLight),
					huh.NewOption("Dark", constants.ThemeDark),
					huh.NewOption("System", constants.ThemeSystem),
				).
				Value(&fm.Theme),
			huh.NewConfirm().
				Title("Walk reminders").
				Value(&fm.Notifications),
		),
	).WithTheme(huh.ThemeDracula())
}
