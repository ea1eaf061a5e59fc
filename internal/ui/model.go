package ui

import (
	"reflect"

	"github.com/atomicstack/levocale/internal/menu"
	"github.com/atomicstack/levocale/internal/theme"
	"github.com/atomicstack/levocale/internal/ui/command"
	uistate "github.com/atomicstack/levocale/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const rootLevelID = "root"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the locale and keyboard menu.
type Model struct {
	level       *level
	registry    *menu.Registry
	provider    menu.Provider
	bus         *command.Bus
	status      menu.Status
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	quitting    bool
	keys        KeyMap
	help        help.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel reads the current system status, builds the initial menu and
// applies any fixed terminal dimensions.
func NewModel(provider menu.Provider, width, height int, showFooter bool) *Model {
	h := help.New()
	h.ShortSeparator = " • "
	m := &Model{
		registry:   menu.BuildRegistry(),
		provider:   provider,
		bus:        command.New(provider),
		showFooter: showFooter,
		keys:       DefaultKeyMap(),
		help:       h,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.level = uistate.NewLevel(rootLevelID, nil)
	m.refreshStatus()
	m.rebuild("startup")
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages. Every message is handled to
// completion, including any system command it triggers, before the next
// frame is drawn.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Status returns the last status snapshot read from the system.
func (m *Model) Status() menu.Status {
	return m.status
}

// Entries returns the flattened menu currently displayed.
func (m *Model) Entries() []menu.Entry {
	return m.level.Entries
}

// Cursor returns the selected index and the viewport offset.
func (m *Model) Cursor() (int, int) {
	return m.level.Cursor, m.level.ViewportOffset
}
