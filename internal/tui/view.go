package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mosaic-habits/mosaic/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAddThing, StateEditCheckIn, StateConfirmArchive, StateConfirmDelete:
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.form.View(),
		)
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewPanes(),
		statusStyle.Render(m.status),
		m.help.View(m.keys),
	)
	return ui
}

func (m Model) viewHeader() string {
	title := m.tr("appName")
	if m.state == StateArchived {
		title = m.tr("archivedTitle")
	}

	t := m.selectedThing()
	if t == nil {
		return titleStyle.Render(title)
	}

	s := stats.Compute(t, time.Now())
	line := fmt.Sprintf("%s  ·  %s %d/%d  ·  %s %d/%d",
		t.Name,
		m.tr("monthlyCheckins"), s.MonthCount, s.MonthTotal,
		m.tr("yearlyCheckins"), s.YearCount, s.YearTotal,
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		statsStyle.Render(line),
	)
}

func (m Model) viewPanes() string {
	sidebarStyle := blurredPaneStyle
	boardStyle := blurredPaneStyle
	if m.boardFocused {
		boardStyle = focusedPaneStyle
	} else {
		sidebarStyle = focusedPaneStyle
	}

	var sidebarView string
	if len(m.visibleThings()) == 0 {
		if m.state == StateArchived {
			sidebarView = m.tr("noArchivedThings")
		} else {
			sidebarView = m.tr("noThings")
		}
	} else {
		sidebarView = m.sidebar.View()
	}

	var boardView string
	if m.selectedThing() != nil {
		boardView = m.board.View()
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebarStyle.Width(sidebarWidth).Render(sidebarView),
		boardStyle.Render(boardView),
	)
}
