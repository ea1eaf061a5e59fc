package ui

import (
	"github.com/atomicstack/levocale/internal/logging/events"
	"github.com/atomicstack/levocale/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursorUp()
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursorDown()
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursorPageUp()
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursorPageDown()
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursorHome()
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursorEnd()
	case key.Matches(keyMsg, m.keys.Activate):
		m.activate()
	case key.Matches(keyMsg, m.keys.Collapse):
		m.collapse()
	case key.Matches(keyMsg, m.keys.Refresh):
		m.refresh()
	}
	return nil
}

// activate runs the action bound to the entry under the cursor.
func (m *Model) activate() {
	entry, ok := m.level.Current()
	if !ok {
		return
	}
	events.UI.MenuEnter(m.level.Cursor, entry.Kind.String(), entry.Label)
	switch entry.Action.Kind {
	case menu.ActionToggleGroup:
		m.toggleGroup(entry.Action.Group)
	case menu.ActionApplyLocale, menu.ActionApplyLayout:
		m.runAction(entry)
	}
}

// collapse folds the group under the cursor if its header is selected and
// the group is expanded. Anything else is ignored.
func (m *Model) collapse() {
	entry, ok := m.level.Current()
	if !ok || !entry.IsHeader() {
		return
	}
	if !m.registry.Expanded(entry.Group) {
		return
	}
	m.toggleGroup(entry.Group)
}

// toggleGroup flips a group and leaves the cursor on that group's header in
// the rebuilt list.
func (m *Model) toggleGroup(id menu.GroupID) {
	expanded, ok := m.registry.Toggle(id)
	if !ok {
		return
	}
	m.rebuild("toggle")
	m.level.SelectGroup(id)
	m.syncViewport()
	events.UI.MenuToggle(string(id), expanded, m.level.Cursor)
}

func (m *Model) refresh() {
	m.refreshStatus()
	m.rebuild("refresh")
	m.syncViewport()
}

func (m *Model) refreshStatus() {
	m.status = menu.ReadStatus(m.provider)
	events.Status.Refresh(m.status.Locale, m.status.Layout)
}

// rebuild replaces the entry list from the registry and the current status.
// The cursor keeps its index and is clamped into the new list.
func (m *Model) rebuild(reason string) {
	entries := menu.Build(m.registry, m.status, m.provider)
	m.level.UpdateEntries(entries)
	events.UI.MenuRebuild(reason, len(entries))
}

func (m *Model) moveCursorUp() {
	if m.level.MoveCursorUp() {
		m.syncViewport()
		events.UI.MenuCursor(m.level.Cursor, m.level.ViewportOffset)
	}
}

func (m *Model) moveCursorDown() {
	if m.level.MoveCursorDown() {
		m.syncViewport()
		events.UI.MenuCursor(m.level.Cursor, m.level.ViewportOffset)
	}
}

func (m *Model) moveCursorPageUp() {
	if m.level.MoveCursorPageUp(m.maxVisibleItems()) {
		events.UI.MenuCursor(m.level.Cursor, m.level.ViewportOffset)
	}
	m.syncViewport()
}

func (m *Model) moveCursorPageDown() {
	if m.level.MoveCursorPageDown(m.maxVisibleItems()) {
		events.UI.MenuCursor(m.level.Cursor, m.level.ViewportOffset)
	}
	m.syncViewport()
}

func (m *Model) moveCursorHome() {
	if m.level.MoveCursorHome() {
		events.UI.MenuCursor(m.level.Cursor, m.level.ViewportOffset)
	}
	m.syncViewport()
}

func (m *Model) moveCursorEnd() {
	if m.level.MoveCursorEnd() {
		events.UI.MenuCursor(m.level.Cursor, m.level.ViewportOffset)
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if m.level == nil {
		return
	}
	m.level.EnsureCursorVisible(m.maxVisibleItems())
}
