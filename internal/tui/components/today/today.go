package today

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/julianstephens/stroll/internal/models"
	"github.com/julianstephens/stroll/internal/progress"
	"github.com/julianstephens/stroll/internal/utils"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	hourStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(8)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	day    models.DailyProgress
	cursor int
	width  int
	height int
}

func New(day models.DailyProgress) Model {
	return Model{day: day}
}

func (m *Model) SetDay(day models.DailyProgress) {
	m.day = day
	if m.cursor >= len(day.WalkSlots) {
		m.cursor = len(day.WalkSlots) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) MoveDown() {
	if m.cursor < len(m.day.WalkSlots)-1 {
		m.cursor++
	}
}

// Selected returns the slot under the cursor.
func (m Model) Selected() (models.WalkSlot, bool) {
	if len(m.day.WalkSlots) == 0 {
		return models.WalkSlot{}, false
	}
	return m.day.WalkSlots[m.cursor], true
}

// FocusNextPending moves the cursor to the next pending slot at or after
// the current hour.
func (m *Model) FocusNextPending(now time.Time) {
	slot, ok := progress.NextPending(m.day, now.Hour())
	if !ok {
		return
	}
	for i, s := range m.day.WalkSlots {
		if s.ID == slot.ID {
			m.cursor = i
			return
		}
	}
}

func (m Model) View() string {
	var b strings.Builder

	pct := progress.Percentage(m.day.CompletedWalks, m.day.TotalWalks)
	b.WriteString(headerStyle.Render(fmt.Sprintf("Today's walks: %d/%d (%d%%)",
		m.day.CompletedWalks, m.day.TotalWalks, pct)))
	b.WriteString("\n\n")

	for i, slot := range m.day.WalkSlots {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		mark := pendingStyle.Render("[ ]")
		label := pendingStyle.Render("walk")
		if slot.Completed {
			mark = doneStyle.Render("[x]")
			label = doneStyle.Render("done")
			if slot.CompletedAt != nil {
				label = doneStyle.Render("done " + slot.CompletedAt.Format("3:04 PM"))
			}
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			cursor, hourStyle.Render(utils.HourLabel(slot.Hour)), mark, label))
	}

	if progress.IsComplete(m.day) {
		b.WriteString("\n" + doneStyle.Render("All walks done. Nice work!"))
	} else if next, ok := progress.NextPending(m.day, time.Now().Hour()); ok {
		b.WriteString("\n" + hintStyle.Render(fmt.Sprintf("Next walk: %s", utils.HourLabel(next.Hour))))
	}

	return b.String()
}
