package historyview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/julianstephens/stroll/internal/history"
	"github.com/julianstephens/stroll/internal/models"
	"github.com/julianstephens/stroll/internal/utils"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(11)

	barFillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	motivationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Italic(true)
)

const barWidth = 14

type Model struct {
	window  []models.HistoryDay
	summary history.Summary
	now     time.Time
	width   int
}

func New() Model {
	return Model{now: time.Now()}
}

// SetWindow replaces the displayed window, oldest first.
func (m *Model) SetWindow(window []models.HistoryDay, now time.Time) {
	m.window = window
	m.summary = history.Summarize(window)
	m.now = now
}

func (m *Model) SetSize(width int) {
	m.width = width
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Last %d days", len(m.window))))
	b.WriteString("\n\n")

	for i := len(m.window) - 1; i >= 0; i-- {
		day := m.window[i]
		b.WriteString(fmt.Sprintf("%s %s %3d%%  (%d/%d)\n",
			dayStyle.Render(utils.ReadableDate(day.Date, m.now)),
			renderBar(day.CompletionPercentage),
			day.CompletionPercentage, day.CompletedWalks, day.TotalWalks))
	}

	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("Total walks:   %d/%d",
		m.summary.TotalWalks, m.summary.TotalPossible)))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("Average:       %d%%", m.summary.AverageCompletion)))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("Perfect days:  %d", m.summary.PerfectDays)))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("Est. distance: %.1f mi", m.summary.EstimatedMiles)))
	b.WriteString("\n\n")
	b.WriteString(motivationStyle.Render(history.Motivation(m.summary.AverageCompletion)))

	return b.String()
}

func renderBar(pct int) string {
	filled := pct * barWidth / 100
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}
