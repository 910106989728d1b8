package validation

import (
	"testing"

	"github.com/julianstephens/stroll/internal/models"
)

func TestValidateQuota(t *testing.T) {
	tests := []struct {
		name    string
		quota   int
		wantErr bool
	}{
		{name: "minimum", quota: 1, wantErr: false},
		{name: "maximum", quota: 24, wantErr: false},
		{name: "typical", quota: 8, wantErr: false},
		{name: "zero", quota: 0, wantErr: true},
		{name: "negative", quota: -1, wantErr: true},
		{name: "above maximum", quota: 25, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuota(tt.quota)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQuota(%d) error = %v, wantErr %v", tt.quota, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDuration(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		wantErr bool
	}{
		{name: "minimum", minutes: 1, wantErr: false},
		{name: "maximum", minutes: 60, wantErr: false},
		{name: "zero", minutes: 0, wantErr: true},
		{name: "above maximum", minutes: 61, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDuration(tt.minutes)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDuration(%d) error = %v, wantErr %v", tt.minutes, err, tt.wantErr)
			}
		})
	}
}

func TestValidateThemeMode(t *testing.T) {
	for _, mode := range []string{"light", "dark", "system"} {
		if err := ValidateThemeMode(mode); err != nil {
			t.Errorf("ValidateThemeMode(%q) unexpected error: %v", mode, err)
		}
	}
	if err := ValidateThemeMode("sepia"); err == nil {
		t.Error("expected error for unknown theme mode")
	}
}

func TestValidateSettings(t *testing.T) {
	valid := models.UserSettings{DailyQuota: 8, WalkDurationMin: 5, ThemeMode: "system", NotificationsEnabled: true}
	if err := ValidateSettings(valid); err != nil {
		t.Errorf("unexpected error for valid settings: %v", err)
	}

	invalid := valid
	invalid.DailyQuota = 0
	if err := ValidateSettings(invalid); err == nil {
		t.Error("expected error for invalid quota")
	}
}
