package state

import "github.com/atomicstack/levocale/internal/menu"

// Level encapsulates the flattened menu together with cursor position and
// viewport offset.
type Level struct {
	ID             string
	Entries        []menu.Entry
	Cursor         int
	ViewportOffset int
}

// NewLevel constructs a Level using the provided entries.
func NewLevel(id string, entries []menu.Entry) *Level {
	l := &Level{ID: id}
	l.UpdateEntries(entries)
	return l
}

// Len returns the number of entries.
func (l *Level) Len() int {
	return len(l.Entries)
}

// UpdateEntries replaces the entry list. The cursor keeps its numeric index
// and is pulled back into range when the list shrank.
func (l *Level) UpdateEntries(entries []menu.Entry) {
	l.Entries = cloneEntries(entries)
	l.ClampCursor()
}

// ClampCursor keeps the cursor and viewport offset inside the entry list.
// It reports whether the cursor moved.
func (l *Level) ClampCursor() bool {
	old := l.Cursor
	n := len(l.Entries)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return old != l.Cursor
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.ViewportOffset > l.Cursor {
		l.ViewportOffset = l.Cursor
	}
	return old != l.Cursor
}

// Current returns the entry under the cursor.
func (l *Level) Current() (menu.Entry, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Entries) {
		return menu.Entry{}, false
	}
	return l.Entries[l.Cursor], true
}

// IndexOfGroup returns the index of the group's header, or -1.
func (l *Level) IndexOfGroup(id menu.GroupID) int {
	for i, entry := range l.Entries {
		if entry.Kind == menu.KindHeader && entry.Group == id {
			return i
		}
	}
	return -1
}

// SelectGroup moves the cursor onto the group's header if it is present.
func (l *Level) SelectGroup(id menu.GroupID) bool {
	idx := l.IndexOfGroup(id)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}

func cloneEntries(entries []menu.Entry) []menu.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]menu.Entry, len(entries))
	copy(dup, entries)
	return dup
}
