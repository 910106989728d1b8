package reminder

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/stroll/internal/session"
	"github.com/julianstephens/stroll/internal/storage"
	"github.com/julianstephens/stroll/internal/utils"
)

type fakeNotifier struct {
	sent []string
}

func (n *fakeNotifier) RequestPermission() bool { return true }
func (n *fakeNotifier) ScheduleReminders(int, map[int]bool) error {
	return nil
}
func (n *fakeNotifier) CancelAll() error { return nil }
func (n *fakeNotifier) Send(title, body string) error {
	n.sent = append(n.sent, title+": "+body)
	return nil
}

func setupDaemon(t *testing.T) (*Daemon, *session.Session, *fakeNotifier) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "stroll.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	notifier := &fakeNotifier{}
	sess := session.New(store, notifier)
	if err := sess.Load(); err != nil {
		t.Fatalf("failed to load session: %v", err)
	}
	t.Cleanup(func() { sess.Close() })

	d, err := New(sess, notifier)
	if err != nil {
		t.Fatalf("failed to create daemon: %v", err)
	}
	return d, sess, notifier
}

// topOfHour returns today at the given local hour, minute zero.
func topOfHour(hour int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.Local)
}

func TestCheckFiresOnPendingHour(t *testing.T) {
	d, _, notifier := setupDaemon(t)

	// Default quota 8 puts a slot at hour 0.
	if !d.Check(topOfHour(0)) {
		t.Fatal("expected reminder for pending hour")
	}
	if len(notifier.sent) != 1 || !strings.HasPrefix(notifier.sent[0], "Walk Reminder") {
		t.Errorf("unexpected notifications: %v", notifier.sent)
	}
	if !strings.Contains(notifier.sent[0], utils.HourLabel(0)) {
		t.Errorf("reminder should name the hour: %v", notifier.sent[0])
	}
}

func TestCheckSkipsOffMinute(t *testing.T) {
	d, _, notifier := setupDaemon(t)

	at := topOfHour(0).Add(15 * time.Minute)
	if d.Check(at) {
		t.Error("reminder should only fire at the top of the hour")
	}
	if len(notifier.sent) != 0 {
		t.Errorf("unexpected notifications: %v", notifier.sent)
	}
}

func TestCheckSkipsCompletedHour(t *testing.T) {
	d, sess, notifier := setupDaemon(t)

	today := sess.Today()
	sess.Complete(today.WalkSlots[0].ID) // hour 0
	sentBefore := len(notifier.sent)

	if d.Check(topOfHour(0)) {
		t.Error("reminder should not fire for a completed hour")
	}
	if len(notifier.sent) != sentBefore {
		t.Errorf("unexpected notifications: %v", notifier.sent[sentBefore:])
	}
}

func TestCheckSkipsHourWithoutSlot(t *testing.T) {
	d, _, notifier := setupDaemon(t)

	// Default quota 8 has slots at 0,3,6,...; hour 1 has none.
	if d.Check(topOfHour(1)) {
		t.Error("reminder should not fire for an hour with no slot")
	}
	if len(notifier.sent) != 0 {
		t.Errorf("unexpected notifications: %v", notifier.sent)
	}
}

func TestCheckRespectsDisabledNotifications(t *testing.T) {
	d, sess, notifier := setupDaemon(t)

	settings := sess.Settings()
	settings.NotificationsEnabled = false
	if err := sess.UpdateSettings(settings); err != nil {
		t.Fatalf("failed to update settings: %v", err)
	}

	if d.Check(topOfHour(0)) {
		t.Error("reminder should not fire when notifications are disabled")
	}
	if len(notifier.sent) != 0 {
		t.Errorf("unexpected notifications: %v", notifier.sent)
	}
}
