// Package board renders the check-in heatmap for the selected thing and
// tracks a cursor over its cells. Selecting an enabled cell is the only way
// to open the check-in editor; the board itself never persists anything.
package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mosaic-habits/mosaic/internal/checkin"
	"github.com/mosaic-habits/mosaic/internal/dateutil"
	"github.com/mosaic-habits/mosaic/internal/heatmap"
	"github.com/mosaic-habits/mosaic/internal/i18n"
	"github.com/mosaic-habits/mosaic/internal/models"
)

type Mode int

const (
	ModeYear Mode = iota
	ModeMonth
)

type palette struct {
	checked  lipgloss.Style
	empty    lipgloss.Style
	disabled lipgloss.Style
	cursor   lipgloss.Style
	label    lipgloss.Style
}

func newPalette(dark bool) palette {
	if dark {
		return palette{
			checked:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
			cursor:   lipgloss.NewStyle().Reverse(true),
			label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		}
	}
	return palette{
		checked:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("254")),
		cursor:   lipgloss.NewStyle().Reverse(true),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

type Model struct {
	mode   Mode
	lang   string
	pal    palette
	now    time.Time
	year   heatmap.YearGrid
	month  heatmap.MonthGrid
	cursor int
}

func New(lang string, dark bool) Model {
	m := Model{lang: lang, pal: newPalette(dark), now: time.Now()}
	m.SetCheckIns(nil)
	return m
}

// SetCheckIns recomputes both layouts from the given collection and parks
// the cursor on today.
func (m *Model) SetCheckIns(checkIns []models.CheckIn) {
	m.now = time.Now()
	set := checkin.DateSet(checkIns)
	m.year = heatmap.YearLayout(dateutil.LastYearDates(m.now), set, m.now)
	m.month = heatmap.MonthLayout(dateutil.MonthGridDates(m.now), set, m.now)
	m.cursorToToday()
}

func (m *Model) SetLanguage(lang string) {
	m.lang = lang
}

func (m *Model) SetDarkMode(dark bool) {
	m.pal = newPalette(dark)
}

func (m Model) Mode() Mode {
	return m.mode
}

func (m *Model) ToggleMode() {
	if m.mode == ModeYear {
		m.mode = ModeMonth
	} else {
		m.mode = ModeYear
	}
	m.cursorToToday()
}

func (m *Model) cells() []heatmap.Cell {
	if m.mode == ModeYear {
		return m.year.Cells
	}
	return m.month.Cells
}

func (m *Model) cursorToToday() {
	today := dateutil.Format(m.now)
	for i, c := range m.cells() {
		if c.Key == today {
			m.cursor = i
			return
		}
	}
	m.cursor = 0
}

// CursorToToday moves the cursor back to today's cell.
func (m *Model) CursorToToday() {
	m.cursorToToday()
}

// SelectedDate returns the date key under the cursor and whether that cell
// is enabled for interaction.
func (m *Model) SelectedDate() (string, bool) {
	cells := m.cells()
	if m.cursor < 0 || m.cursor >= len(cells) {
		return "", false
	}
	c := cells[m.cursor]
	return c.Key, !c.Disabled
}

// Cursor movement. In year mode consecutive cells run down a week column,
// so vertical movement is one day and horizontal movement one week. Month
// mode reads left to right.
func (m *Model) MoveUp() {
	if m.mode == ModeYear {
		m.moveBy(-1)
	} else {
		m.moveBy(-7)
	}
}

func (m *Model) MoveDown() {
	if m.mode == ModeYear {
		m.moveBy(1)
	} else {
		m.moveBy(7)
	}
}

func (m *Model) MoveLeft() {
	if m.mode == ModeYear {
		m.moveBy(-7)
	} else {
		m.moveBy(-1)
	}
}

func (m *Model) MoveRight() {
	if m.mode == ModeYear {
		m.moveBy(7)
	} else {
		m.moveBy(1)
	}
}

func (m *Model) moveBy(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.cells()) {
		return
	}
	m.cursor = next
}

func (m Model) View() string {
	if m.mode == ModeYear {
		return m.viewYear()
	}
	return m.viewMonth()
}

func (m Model) viewYear() string {
	months := i18n.Months(m.lang)
	weekdays := i18n.Weekdays(m.lang)

	labels := make([]string, m.year.WeekCount)
	for i := range labels {
		labels[i] = "  "
	}
	for _, ml := range m.year.MonthLabels {
		if ml.Col < len(labels) {
			labels[ml.Col] = fmt.Sprintf("%-2.2s", months[ml.Month-1])
		}
	}

	rows := make([][]string, 7)
	for r := range rows {
		rows[r] = make([]string, m.year.WeekCount)
		for c := range rows[r] {
			rows[r][c] = "  "
		}
	}

	for i, cell := range m.year.Cells {
		mark := "· "
		style := m.pal.empty
		if cell.CheckedIn {
			mark = "■ "
			style = m.pal.checked
		}
		if cell.Disabled {
			mark = "  "
			style = m.pal.disabled
		}
		if i == m.cursor {
			style = m.pal.cursor
		}
		rows[cell.Row][cell.Col] = style.Render(mark)
	}

	var b strings.Builder
	b.WriteString("    " + m.pal.label.Render(strings.Join(labels, "")) + "\n")
	for r, row := range rows {
		label := "   "
		if r%2 == 1 {
			label = fmt.Sprintf("%-3.3s", weekdays[r])
		}
		b.WriteString(m.pal.label.Render(label) + " " + strings.Join(row, "") + "\n")
	}
	return b.String()
}

func (m Model) viewMonth() string {
	weekdays := i18n.Weekdays(m.lang)

	var b strings.Builder
	header := make([]string, len(weekdays))
	for i, wd := range weekdays {
		header[i] = fmt.Sprintf("%4.3s", wd)
	}
	b.WriteString(m.pal.label.Render(strings.Join(header, "")) + "\n")

	var line strings.Builder
	for i, cell := range m.month.Cells {
		var s string
		style := m.pal.empty
		switch {
		case !cell.InMonth:
			s = "    "
			style = m.pal.disabled
		case cell.CheckedIn:
			s = fmt.Sprintf("[%2d]", cell.Date.Day())
			style = m.pal.checked
		case cell.Disabled:
			s = fmt.Sprintf(" %2d ", cell.Date.Day())
			style = m.pal.disabled
		default:
			s = fmt.Sprintf(" %2d ", cell.Date.Day())
		}
		if i == m.cursor {
			style = m.pal.cursor
		}
		line.WriteString(style.Render(s))
		if cell.Col == 6 {
			b.WriteString(line.String() + "\n")
			line.Reset()
		}
	}
	return b.String()
}
