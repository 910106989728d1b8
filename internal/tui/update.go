package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/stroll/internal/models"
	"github.com/julianstephens/stroll/internal/timer"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.todayModel.SetSize(msg.Width, msg.Height)
		m.countdown.SetSize(msg.Width)
		m.historyModel.SetSize(msg.Width)
		return m, nil

	case tickMsg:
		if m.state != StateWalking {
			return m, nil
		}
		m.walkTimer.Tick()
		if m.walkTimer.State() == timer.Expired {
			m.recordWalk(true)
			m.walkTimer.Acknowledge()
			m.refreshToday()
			m.refreshHistory()
			m.state = StateWalkDone
			return m, nil
		}
		m.countdown.SetSnapshot(m.walkTimer.Snapshot())
		return m, tickCmd()
	}

	switch m.state {
	case StateEditSettings:
		return m.updateEditSettings(msg)
	case StateWalking:
		return m.updateWalking(msg)
	case StateWalkDone:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.state = StateToday
		}
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.updateTabs(msg)
	}
	return m, nil
}

func (m Model) updateTabs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		return m, nil
	}

	switch m.state {
	case StateToday:
		return m.updateToday(msg)
	case StateSettings:
		if key.Matches(msg, m.keys.Edit) {
			m.settingsForm = newSettingsFormModel(m.sess.Settings())
			m.form = newSettingsForm(m.settingsForm)
			m.formError = ""
			m.state = StateEditSettings
			return m, m.form.Init()
		}
	}
	return m, nil
}

func (m Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.todayModel.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.todayModel.MoveDown()
	case key.Matches(msg, m.keys.Enter):
		slot, ok := m.todayModel.Selected()
		if !ok {
			break
		}
		if slot.Completed {
			m.sess.Undo(slot.ID)
		} else {
			m.sess.Complete(slot.ID)
		}
		m.refreshToday()
		m.refreshHistory()
	case key.Matches(msg, m.keys.Undo):
		slot, ok := m.todayModel.Selected()
		if ok && slot.Completed {
			m.sess.Undo(slot.ID)
			m.refreshToday()
			m.refreshHistory()
		}
	case key.Matches(msg, m.keys.Walk):
		slot, ok := m.todayModel.Selected()
		if !ok || slot.Completed {
			break
		}
		m.walkSlot = slot
		m.walkStartedAt = time.Now()
		m.walkTimer.Start(slot.ID, m.sess.Settings().WalkDurationMin)
		m.countdown.SetWalk(slot.Hour, m.walkTimer.Snapshot())
		m.state = StateWalking
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) updateWalking(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Stop):
		m.walkTimer.Stop()
		m.recordWalk(false)
		m.refreshToday()
		m.state = StateToday
	case key.Matches(keyMsg, m.keys.Quit):
		m.walkTimer.Stop()
		m.recordWalk(false)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateEditSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.formError = ""
		m.state = StateSettings
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		settings, err := m.settingsForm.Settings()
		if err == nil {
			err = m.sess.UpdateSettings(settings)
		}
		if err != nil {
			m.formError = "Failed to update settings: " + err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.formError = ""
		m.refreshToday()
		m.refreshHistory()
		m.state = StateSettings
		return m, nil
	}

	return m, cmd
}

func (m *Model) recordWalk(completed bool) {
	m.sess.RecordWalkSession(models.WalkSession{
		ID:          uuid.NewString(),
		SlotID:      m.walkSlot.ID,
		StartedAt:   m.walkStartedAt,
		DurationMin: m.sess.Settings().WalkDurationMin,
		Completed:   completed,
	})
}
