package countdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/julianstephens/stroll/internal/models"
	"github.com/julianstephens/stroll/internal/utils"
)

var (
	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	bar      progress.Model
	snapshot models.TimerState
	hour     int
	width    int
}

func New() Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return Model{bar: bar}
}

func (m *Model) SetSize(width int) {
	m.width = width
	m.bar.Width = min(width-10, 60)
}

// SetWalk resets the display for a new countdown against the given slot hour.
func (m *Model) SetWalk(hour int, snapshot models.TimerState) {
	m.hour = hour
	m.snapshot = snapshot
}

// SetSnapshot refreshes the remaining time after a tick.
func (m *Model) SetSnapshot(snapshot models.TimerState) {
	m.snapshot = snapshot
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(fmt.Sprintf("Walking the %s slot", utils.HourLabel(m.hour))))
	b.WriteString("\n\n")
	b.WriteString(clockStyle.Render(utils.FormatClock(m.snapshot.TimeRemaining)))
	b.WriteString("\n\n")

	pct := 0.0
	if m.snapshot.TotalTime > 0 {
		pct = float64(m.snapshot.TotalTime-m.snapshot.TimeRemaining) / float64(m.snapshot.TotalTime)
	}
	b.WriteString(m.bar.ViewAs(pct))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("s/esc to stop early"))

	return b.String()
}
