package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/stroll/internal/constants"
	"github.com/julianstephens/stroll/internal/history"
	"github.com/julianstephens/stroll/internal/models"
	"github.com/julianstephens/stroll/internal/session"
	"github.com/julianstephens/stroll/internal/timer"
	"github.com/julianstephens/stroll/internal/tui/components/countdown"
	"github.com/julianstephens/stroll/internal/tui/components/historyview"
	"github.com/julianstephens/stroll/internal/tui/components/today"
	"github.com/julianstephens/stroll/internal/utils"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHistory
	StateSettings
	StateWalking
	StateWalkDone
	StateEditSettings
)

// tabCount covers the states reachable with tab.
const tabCount = 3

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	sess          *session.Session
	walkTimer     *timer.Timer
	state         SessionState
	keys          KeyMap
	help          help.Model
	todayModel    today.Model
	countdown     countdown.Model
	historyModel  historyview.Model
	form          *huh.Form
	settingsForm  *SettingsFormModel
	formError     string
	walkSlot      models.WalkSlot
	walkStartedAt time.Time
	quitting      bool
	width         int
	height        int
}

func NewModel(sess *session.Session) Model {
	m := Model{
		sess:         sess,
		walkTimer:    timer.New(func(slotID string) { sess.Complete(slotID) }),
		state:        StateToday,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		todayModel:   today.New(sess.Today()),
		countdown:    countdown.New(),
		historyModel: historyview.New(),
	}
	m.todayModel.FocusNextPending(time.Now())
	m.refreshHistory()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Walk, m.keys.Enter, m.keys.Undo)
	case StateSettings:
		keys = append(keys, m.keys.Edit)
	case StateWalking:
		keys = []key.Binding{m.keys.Stop, m.keys.Quit}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateToday:
		actions = []key.Binding{m.keys.Walk, m.keys.Undo}
	case StateSettings:
		actions = []key.Binding{m.keys.Edit}
	case StateWalking:
		actions = []key.Binding{m.keys.Stop}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refreshToday() {
	m.todayModel.SetDay(m.sess.Today())
}

func (m *Model) refreshHistory() {
	persisted, err := m.sess.History()
	if err != nil {
		return
	}
	now := time.Now()
	window := history.Window(utils.LastNDays(constants.HistoryWindowDays, now),
		persisted, m.sess.Settings().DailyQuota)
	m.historyModel.SetWindow(window, now)
}
