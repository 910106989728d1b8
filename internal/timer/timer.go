// Package timer implements the single countdown state machine that drives
// a walk session. Ticks are supplied by the caller (the TUI's one-second
// tick or a test loop); the timer itself never owns a goroutine.
package timer

import "github.com/julianstephens/stroll/internal/models"

// State is the lifecycle phase of the countdown.
type State int

const (
	// Idle: no walk in progress, timeRemaining is zero.
	Idle State = iota
	// Running: counting down once per tick.
	Running
	// Expired: the countdown reached zero and the completion callback
	// fired; held until Acknowledge or the next Start.
	Expired
)

// Timer counts a walk session down to zero and reports expiry exactly once.
type Timer struct {
	state         State
	slotID        string
	timeRemaining int // seconds
	totalTime     int // seconds
	onExpire      func(slotID string)
}

// New creates an idle timer. onExpire is invoked exactly once per session,
// on the tick that reaches zero; it may be nil.
func New(onExpire func(slotID string)) *Timer {
	return &Timer{onExpire: onExpire}
}

// Start begins a countdown of durationMin minutes for the given slot.
// Starting replaces any previous session unconditionally.
func (t *Timer) Start(slotID string, durationMin int) {
	seconds := durationMin * 60
	t.state = Running
	t.slotID = slotID
	t.timeRemaining = seconds
	t.totalTime = seconds
}

// Tick advances the countdown by one second. On reaching zero the timer
// moves to Expired and fires the completion callback. Ticks outside the
// Running state are ignored.
func (t *Timer) Tick() {
	if t.state != Running {
		return
	}

	t.timeRemaining--
	if t.timeRemaining > 0 {
		return
	}

	t.timeRemaining = 0
	t.state = Expired
	if t.onExpire != nil {
		t.onExpire(t.slotID)
	}
}

// Stop abandons the session without completing the slot.
func (t *Timer) Stop() {
	t.state = Idle
	t.slotID = ""
	t.timeRemaining = 0
	t.totalTime = 0
}

// Acknowledge moves an expired timer back to idle.
func (t *Timer) Acknowledge() {
	if t.state == Expired {
		t.Stop()
	}
}

// State returns the current lifecycle phase.
func (t *Timer) State() State {
	return t.state
}

// SlotID returns the slot the current or just-expired session belongs to.
func (t *Timer) SlotID() string {
	return t.slotID
}

// Snapshot returns the externally visible timer state.
func (t *Timer) Snapshot() models.TimerState {
	return models.TimerState{
		IsRunning:     t.state == Running,
		TimeRemaining: t.timeRemaining,
		TotalTime:     t.totalTime,
	}
}

// Progress returns completion of the countdown in [0,1] for rendering.
func (t *Timer) Progress() float64 {
	if t.totalTime == 0 {
		return 0
	}
	return float64(t.totalTime-t.timeRemaining) / float64(t.totalTime)
}
