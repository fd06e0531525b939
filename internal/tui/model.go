// Package tui is the interactive terminal surface. It keeps the whole
// thing collection in memory, routes key presses to the sidebar and the
// heatmap board, and writes the collection back through the storage
// provider after every mutation.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mosaic-habits/mosaic/internal/constants"
	"github.com/mosaic-habits/mosaic/internal/i18n"
	"github.com/mosaic-habits/mosaic/internal/models"
	"github.com/mosaic-habits/mosaic/internal/registry"
	"github.com/mosaic-habits/mosaic/internal/storage"
	"github.com/mosaic-habits/mosaic/internal/tui/components/board"
	"github.com/mosaic-habits/mosaic/internal/tui/components/sidebar"
)

type SessionState int

const (
	StateBrowse SessionState = iota
	StateArchived
	StateAddThing
	StateEditCheckIn
	StateConfirmArchive
	StateConfirmDelete
)

type ThingFormModel struct {
	Name string
}

type CheckInFormModel struct {
	Note   string
	Action string
}

type ConfirmFormModel struct {
	Confirmed bool
}

type Model struct {
	store      storage.Provider
	settings   storage.Settings
	things     []models.Thing
	selectedID string

	state        SessionState
	keys         KeyMap
	help         help.Model
	sidebar      sidebar.Model
	board        board.Model
	boardFocused bool

	form        *huh.Form
	thingForm   *ThingFormModel
	checkInForm *CheckInFormModel
	confirmForm *ConfirmFormModel
	editingDate string
	pendingID   string
	returnState SessionState

	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider) Model {
	things, err := store.GetThings()
	if err != nil {
		things = []models.Thing{}
	}
	settings, err := store.GetSettings()
	if err != nil {
		settings = storage.Settings{Language: constants.DefaultLanguage}
	}
	settings.Language = i18n.Normalize(settings.Language)

	m := Model{
		store:      store,
		settings:   settings,
		things:     things,
		selectedID: registry.Reselect(things, ""),
		state:      StateBrowse,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		sidebar:    sidebar.New(registry.Active(things), 0, 0),
		board:      board.New(settings.Language, settings.DarkMode),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// visibleThings is the set the sidebar shows in the current state.
func (m *Model) visibleThings() []models.Thing {
	if m.state == StateArchived {
		return registry.Archived(m.things)
	}
	return registry.Active(m.things)
}

// refresh pushes the collection into both panes and re-reads the sidebar
// selection so the board always tracks a real thing.
func (m *Model) refresh() {
	m.sidebar.SetThings(m.visibleThings(), m.selectedID)
	m.selectedID = m.sidebar.SelectedID()
	if t := registry.Find(m.things, m.selectedID); t != nil {
		m.board.SetCheckIns(t.CheckIns)
	} else {
		m.board.SetCheckIns(nil)
	}
}

func (m *Model) selectedThing() *models.Thing {
	return registry.Find(m.things, m.selectedID)
}

// save persists the given collection and adopts it on success. Failures
// are surfaced in the status line.
func (m *Model) save(things []models.Thing) bool {
	if err := m.store.SaveThings(things); err != nil {
		m.status = err.Error()
		return false
	}
	m.things = things
	return true
}

func (m Model) tr(key string) string {
	return i18n.T(m.settings.Language, key)
}

func newThingForm(f *ThingFormModel, lang string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(i18n.T(lang, "startNewThing")).
				Placeholder(i18n.T(lang, "addThingPrompt")).
				Value(&f.Name),
		),
	)
}

func newCheckInForm(f *CheckInFormModel, lang string, existing bool) *huh.Form {
	options := []huh.Option[string]{
		huh.NewOption(i18n.T(lang, "saveLog"), "save"),
	}
	if existing {
		options = append(options, huh.NewOption(i18n.T(lang, "deleteLog"), "delete"))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(i18n.T(lang, "noteLabel")).
				Placeholder(i18n.T(lang, "notePlaceholder")).
				Value(&f.Note),
			huh.NewSelect[string]().
				Options(options...).
				Value(&f.Action),
		),
	)
}

func newConfirmForm(f *ConfirmFormModel, title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&f.Confirmed),
		),
	)
}
