package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/stroll/internal/constants"
	"github.com/julianstephens/stroll/internal/progress"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// Tray delivers notifications through the stroll-tray companion process.
// The tray advertises itself with a lockfile containing port|pid|secret;
// reminders land there as webhook posts.
type Tray struct{}

type webhookPayload struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

// reminderPlan is written next to the lockfile for the reminder daemon.
type reminderPlan struct {
	TotalWalks   int   `json:"total_walks"`
	PendingHours []int `json:"pending_hours"`
}

func NewTray() *Tray {
	return &Tray{}
}

// RequestPermission reports whether the tray process is reachable.
func (t *Tray) RequestPermission() bool {
	configDir, err := TrayConfigDir()
	if err != nil {
		return false
	}
	_, _, err = findAndValidateTrayProcess(filepath.Join(configDir, constants.NotifierLockfileName))
	return err == nil
}

// ScheduleReminders persists the day's reminder plan for the daemon:
// one reminder per slot hour that is not yet completed.
func (t *Tray) ScheduleReminders(totalWalks int, completedHours map[int]bool) error {
	configDir, err := TrayConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create tray config dir: %w", err)
	}

	plan := reminderPlan{TotalWalks: totalWalks}
	for _, hour := range progress.Hours(totalWalks) {
		if !completedHours[hour] {
			plan.PendingHours = append(plan.PendingHours, hour)
		}
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(remindersPath(configDir), data, 0600)
}

// CancelAll removes the persisted reminder plan.
func (t *Tray) CancelAll() error {
	configDir, err := TrayConfigDir()
	if err != nil {
		return err
	}
	if err := os.Remove(remindersPath(configDir)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Send posts an immediate notification to the tray webhook.
func (t *Tray) Send(title, body string) error {
	configDir, err := TrayConfigDir()
	if err != nil {
		return err
	}

	port, secret, err := findAndValidateTrayProcess(filepath.Join(configDir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	return postNotification(port, secret, webhookPayload{
		Title:      title,
		Text:       body,
		DurationMs: constants.NotificationDurationMs,
	})
}

// ReminderPlan reads the persisted reminder plan. A missing plan file
// returns an empty plan.
func ReminderPlan() (totalWalks int, pendingHours []int, err error) {
	configDir, err := TrayConfigDir()
	if err != nil {
		return 0, nil, err
	}

	data, err := os.ReadFile(remindersPath(configDir))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil, nil
		}
		return 0, nil, err
	}

	var plan reminderPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return 0, nil, fmt.Errorf("failed to parse reminder plan: %w", err)
	}
	return plan.TotalWalks, plan.PendingHours, nil
}

// TrayConfigDir returns the configuration directory used by the tray
// application.
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	// A settings.json may point at a custom lockfile dir.
	settingsPath := filepath.Join(trayConfigDir, "settings.json")
	if _, err := os.Stat(settingsPath); err == nil {
		data, err := os.ReadFile(settingsPath)
		if err == nil {
			var store struct {
				Settings struct {
					LockfileDir *string `json:"lockfile_dir"`
				} `json:"settings"`
			}
			if err := json.Unmarshal(data, &store); err == nil {
				if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
					return *store.Settings.LockfileDir, nil
				}
			}
		}
	}

	return trayConfigDir, nil
}

func remindersPath(configDir string) string {
	return filepath.Join(configDir, "reminders.json")
}

func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("stroll-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("stroll-tray process not running")
	}

	if !strings.HasPrefix(process.Executable(), "stroll-tray") {
		return "", "", fmt.Errorf("process with PID %d is not stroll-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func postNotification(port string, secret string, payload webhookPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Stroll-Secret", secret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
