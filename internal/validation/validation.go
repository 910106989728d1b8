// Package validation checks user settings at the update boundary. The
// progress engine assumes values that passed these checks.
package validation

import (
	"fmt"

	"github.com/julianstephens/stroll/internal/constants"
	"github.com/julianstephens/stroll/internal/models"
)

// ValidateQuota checks that a daily quota is within the allowed range.
func ValidateQuota(quota int) error {
	if quota < constants.MinDailyQuota || quota > constants.MaxDailyQuota {
		return fmt.Errorf("daily quota must be between %d and %d, got %d",
			constants.MinDailyQuota, constants.MaxDailyQuota, quota)
	}
	return nil
}

// ValidateDuration checks that a walk duration is within the allowed range.
func ValidateDuration(minutes int) error {
	if minutes < constants.MinWalkDurationMin || minutes > constants.MaxWalkDurationMin {
		return fmt.Errorf("walk duration must be between %d and %d minutes, got %d",
			constants.MinWalkDurationMin, constants.MaxWalkDurationMin, minutes)
	}
	return nil
}

// ValidateThemeMode checks that a theme mode is one of the known values.
func ValidateThemeMode(mode string) error {
	switch mode {
	case constants.ThemeLight, constants.ThemeDark, constants.ThemeSystem:
		return nil
	}
	return fmt.Errorf("theme mode must be %q, %q, or %q, got %q",
		constants.ThemeLight, constants.ThemeDark, constants.ThemeSystem, mode)
}

// ValidateSettings checks a full settings struct.
func ValidateSettings(s models.UserSettings) error {
	if err := ValidateQuota(s.DailyQuota); err != nil {
		return err
	}
	if err := ValidateDuration(s.WalkDurationMin); err != nil {
		return err
	}
	return ValidateThemeMode(s.ThemeMode)
}
