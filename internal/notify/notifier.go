// Package notify is the reminder port. The core calls this interface and
// never blocks on notification failures; a denied or absent tray degrades
// to "no reminders".
package notify

// Notifier delivers walk reminders and completion messages.
type Notifier interface {
	// RequestPermission reports whether notifications can be delivered.
	RequestPermission() bool
	// ScheduleReminders records the reminder plan for the day: one
	// reminder per pending slot hour. Hours in completedHours are skipped.
	ScheduleReminders(totalWalks int, completedHours map[int]bool) error
	// CancelAll drops any scheduled reminders.
	CancelAll() error
	// Send delivers an immediate notification.
	Send(title, body string) error
}

// Noop is the adapter used when notifications are disabled. Every
// operation succeeds without doing anything.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) RequestPermission() bool {
	return false
}

func (n *Noop) ScheduleReminders(totalWalks int, completedHours map[int]bool) error {
	return nil
}

func (n *Noop) CancelAll() error {
	return nil
}

func (n *Noop) Send(title, body string) error {
	return nil
}
