package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mosaic-habits/mosaic/internal/checkin"
	"github.com/mosaic-habits/mosaic/internal/dateutil"
	"github.com/mosaic-habits/mosaic/internal/models"
	"github.com/mosaic-habits/mosaic/internal/registry"
)

const sidebarWidth = 30

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.sidebar.SetSize(sidebarWidth, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case StateAddThing:
		return m.updateAddThing(msg)
	case StateEditCheckIn:
		return m.updateEditCheckIn(msg)
	case StateConfirmArchive, StateConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m.updateBrowse(msg)
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		return m, cmd
	}
	m.status = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Tab):
		m.boardFocused = !m.boardFocused

	case key.Matches(keyMsg, m.keys.ViewMode):
		m.board.ToggleMode()

	case key.Matches(keyMsg, m.keys.DarkMode):
		m.settings.DarkMode = !m.settings.DarkMode
		if err := m.store.SaveSettings(m.settings); err != nil {
			m.status = err.Error()
		}
		m.board.SetDarkMode(m.settings.DarkMode)

	case key.Matches(keyMsg, m.keys.Archived):
		if m.state == StateArchived {
			m.state = StateBrowse
		} else {
			m.state = StateArchived
		}
		m.selectedID = ""
		m.boardFocused = false
		m.refresh()

	case key.Matches(keyMsg, m.keys.Add):
		if m.state == StateBrowse {
			m.thingForm = &ThingFormModel{}
			m.form = newThingForm(m.thingForm, m.settings.Language)
			m.returnState = m.state
			m.state = StateAddThing
			return m, m.form.Init()
		}

	case key.Matches(keyMsg, m.keys.Today):
		if m.state == StateBrowse {
			return m.openCheckInEditor(dateutil.Today())
		}

	case key.Matches(keyMsg, m.keys.Archive):
		if m.selectedID == "" {
			break
		}
		if m.state == StateArchived {
			if m.save(registry.Unarchive(m.things, m.selectedID)) {
				m.refresh()
			}
		} else {
			return m.openConfirm(StateConfirmArchive, m.tr("archiveConfirmation"))
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if m.selectedID != "" {
			return m.openConfirm(StateConfirmDelete, m.tr("deleteConfirmation"))
		}

	case key.Matches(keyMsg, m.keys.Enter):
		if !m.boardFocused {
			m.boardFocused = true
			break
		}
		if date, enabled := m.board.SelectedDate(); enabled && m.state == StateBrowse {
			return m.openCheckInEditor(date)
		}

	case key.Matches(keyMsg, m.keys.Up), key.Matches(keyMsg, m.keys.Down),
		key.Matches(keyMsg, m.keys.Left), key.Matches(keyMsg, m.keys.Right):
		if m.boardFocused {
			m.moveCursor(keyMsg)
		} else {
			var cmd tea.Cmd
			m.sidebar, cmd = m.sidebar.Update(msg)
			m.syncSelection()
			return m, cmd
		}

	default:
		if !m.boardFocused {
			var cmd tea.Cmd
			m.sidebar, cmd = m.sidebar.Update(msg)
			m.syncSelection()
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) moveCursor(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.board.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.board.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.board.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.board.MoveRight()
	}
}

// syncSelection follows sidebar cursor movement so the board always shows
// the highlighted thing.
func (m *Model) syncSelection() {
	id := m.sidebar.SelectedID()
	if id == m.selectedID {
		return
	}
	m.selectedID = id
	if t := registry.Find(m.things, id); t != nil {
		m.board.SetCheckIns(t.CheckIns)
	} else {
		m.board.SetCheckIns(nil)
	}
}

func (m Model) openCheckInEditor(date string) (tea.Model, tea.Cmd) {
	t := m.selectedThing()
	if t == nil || t.Archived {
		return m, nil
	}
	m.checkInForm = &CheckInFormModel{
		Note:   checkin.NoteFor(t.CheckIns, date),
		Action: "save",
	}
	m.editingDate = date
	m.form = newCheckInForm(m.checkInForm, m.settings.Language, checkin.Has(t.CheckIns, date))
	m.returnState = StateBrowse
	m.state = StateEditCheckIn
	return m, m.form.Init()
}

func (m Model) openConfirm(state SessionState, title string) (tea.Model, tea.Cmd) {
	m.confirmForm = &ConfirmFormModel{}
	m.form = newConfirmForm(m.confirmForm, title)
	m.pendingID = m.selectedID
	m.returnState = m.state
	m.state = state
	return m, m.form.Init()
}

func (m Model) updateAddThing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.returnState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		things, id, ok := registry.Add(m.things, m.thingForm.Name)
		if ok && m.save(things) {
			m.selectedID = id
		}
		m.state = m.returnState
		m.refresh()
	case huh.StateAborted:
		m.state = m.returnState
	}
	return m, cmd
}

func (m Model) updateEditCheckIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.returnState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if t := m.selectedThing(); t != nil {
			switch m.checkInForm.Action {
			case "save":
				t.CheckIns = checkin.Upsert(t.CheckIns, m.editingDate, strings.TrimSpace(m.checkInForm.Note))
				if m.save(m.things) {
					m.status = m.tr("logged")
				}
			case "delete":
				t.CheckIns = checkin.Remove(t.CheckIns, m.editingDate)
				m.save(m.things)
			}
		}
		m.state = m.returnState
		m.refresh()
	case huh.StateAborted:
		m.state = m.returnState
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.returnState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.confirmForm.Confirmed {
			var things []models.Thing
			if m.state == StateConfirmArchive {
				things = registry.Archive(m.things, m.pendingID)
			} else {
				things = registry.Remove(m.things, m.pendingID)
			}
			if m.save(things) && m.returnState == StateBrowse {
				m.selectedID = registry.Reselect(m.things, m.selectedID)
			}
		}
		m.pendingID = ""
		m.state = m.returnState
		m.refresh()
	case huh.StateAborted:
		m.state = m.returnState
	}
	return m, cmd
}
