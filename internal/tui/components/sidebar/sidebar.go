// Package sidebar is the thing list shown beside the heatmap. It renders
// either the active or the archived set and reports the selected thing id.
package sidebar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mosaic-habits/mosaic/internal/checkin"
	"github.com/mosaic-habits/mosaic/internal/dateutil"
	"github.com/mosaic-habits/mosaic/internal/models"
)

type Item struct {
	Thing          models.Thing
	CheckedInToday bool
}

func (i Item) Title() string {
	if i.Thing.Archived {
		return "[ARCHIVED] " + i.Thing.Name
	}
	if i.CheckedInToday {
		return "✓ " + i.Thing.Name
	}
	return "○ " + i.Thing.Name
}

func (i Item) Description() string {
	n := len(i.Thing.CheckIns)
	if n == 1 {
		return "1 check-in"
	}
	return fmt.Sprintf("%d check-ins", n)
}

func (i Item) FilterValue() string { return i.Thing.Name }

type Model struct {
	list list.Model
}

func New(things []models.Thing, width, height int) Model {
	l := list.New(toItems(things), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	return Model{list: l}
}

func toItems(things []models.Thing) []list.Item {
	today := dateutil.Today()
	items := make([]list.Item, len(things))
	for i, t := range things {
		items[i] = Item{
			Thing:          t,
			CheckedInToday: checkin.Has(t.CheckIns, today),
		}
	}
	return items
}

// SetThings replaces the listed collection, keeping the selection on the
// thing with selectedID when it is still present.
func (m *Model) SetThings(things []models.Thing, selectedID string) {
	m.list.SetItems(toItems(things))
	for i, t := range things {
		if t.ID == selectedID {
			m.list.Select(i)
			return
		}
	}
	m.list.Select(0)
}

// SelectedID returns the id of the thing under the cursor, or "".
func (m Model) SelectedID() string {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return ""
	}
	return item.Thing.ID
}

// SelectedThing returns the thing under the cursor, or nil.
func (m Model) SelectedThing() *models.Thing {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return nil
	}
	t := item.Thing
	return &t
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
