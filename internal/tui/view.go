package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/stroll/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.todayModel.View())
	case StateHistory:
		content = docStyle.Render(m.historyModel.View())
	case StateSettings:
		content = docStyle.Render(m.viewSettings())
	case StateWalking:
		content = lipgloss.Place(m.width, m.height-4,
			lipgloss.Center, lipgloss.Center,
			m.countdown.View(),
		)
	case StateWalkDone:
		content = m.viewWalkDone()
	case StateEditSettings:
		content = m.viewEditSettings()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "History", "Settings"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSettings() string {
	s := m.sess.Settings()
	lines := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Settings"),
		"",
		fmt.Sprintf("  Walks per day:   %d", s.DailyQuota),
		fmt.Sprintf("  Walk length:     %d min", s.WalkDurationMin),
		fmt.Sprintf("  Theme:           %s", s.ThemeMode),
		fmt.Sprintf("  Walk reminders:  %t", s.NotificationsEnabled),
		"",
		mutedStyle.Render("Press 'e' to edit."),
	)
	return lines
}

func (m Model) viewWalkDone() string {
	today := m.sess.Today()
	body := fmt.Sprintf("%d/%d walks done today.", today.CompletedWalks, today.TotalWalks)
	if today.CompletedWalks == today.TotalWalks {
		body = "You've completed all your walks for today!"
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			clockStyle.Render("Walk complete!"),
			"",
			body,
			"",
			mutedStyle.Render(fmt.Sprintf("The %s walk is checked off. Press any key.",
				utils.HourLabel(m.walkSlot.Hour))),
		),
	)
}

func (m Model) viewEditSettings() string {
	view := m.form.View()
	if m.formError != "" {
		view = lipgloss.JoinVertical(lipgloss.Left,
			errorStyle.Render(m.formError),
			"",
			view,
		)
	}
	return view
}
