package state

import (
	"testing"

	"github.com/atomicstack/levocale/internal/menu"
)

func groupedEntries() []menu.Entry {
	return []menu.Entry{
		{Kind: menu.KindHeader, Group: menu.GroupKeyboard, Label: "▼ Keyboard Layouts"},
		{Kind: menu.KindLeaf, Group: menu.GroupKeyboard, Label: "● us", Code: "us"},
		{Kind: menu.KindLeaf, Group: menu.GroupKeyboard, Label: "  dk", Code: "dk"},
		{Kind: menu.KindHeader, Group: menu.GroupLocale, Label: "▼ System Locales"},
		{Kind: menu.KindLeaf, Group: menu.GroupLocale, Label: "● English (US)", Code: "en_US.UTF-8"},
	}
}

func TestNewLevelCopiesEntries(t *testing.T) {
	entries := groupedEntries()
	l := NewLevel("root", entries)
	entries[0].Label = "mutated"
	if l.Entries[0].Label == "mutated" {
		t.Fatalf("expected level to own its entries")
	}
	if l.Len() != 5 {
		t.Fatalf("expected 5 entries, got %d", l.Len())
	}
}

func TestUpdateEntriesClampsCursor(t *testing.T) {
	l := NewLevel("root", groupedEntries())
	l.Cursor = 4
	l.ViewportOffset = 3
	l.UpdateEntries(groupedEntries()[:2])
	if l.Cursor != 1 {
		t.Fatalf("expected cursor clamped to 1, got %d", l.Cursor)
	}
	if l.ViewportOffset > l.Cursor {
		t.Fatalf("expected offset <= cursor, got offset=%d cursor=%d", l.ViewportOffset, l.Cursor)
	}

	l.UpdateEntries(nil)
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected zeroed state, got cursor=%d offset=%d", l.Cursor, l.ViewportOffset)
	}
	if _, ok := l.Current(); ok {
		t.Fatalf("expected no current entry on empty level")
	}
}

func TestUpdateEntriesKeepsIndex(t *testing.T) {
	l := NewLevel("root", groupedEntries())
	l.Cursor = 2
	l.UpdateEntries(groupedEntries())
	if l.Cursor != 2 {
		t.Fatalf("expected cursor to keep index 2, got %d", l.Cursor)
	}
}

func TestClampCursorNegative(t *testing.T) {
	l := NewLevel("root", groupedEntries())
	l.Cursor = -3
	l.ViewportOffset = -1
	if !l.ClampCursor() {
		t.Fatalf("expected clamp to report movement")
	}
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected zeroed state, got cursor=%d offset=%d", l.Cursor, l.ViewportOffset)
	}
}

func TestIndexAndSelectGroup(t *testing.T) {
	l := NewLevel("root", groupedEntries())
	if idx := l.IndexOfGroup(menu.GroupLocale); idx != 3 {
		t.Fatalf("expected locale header at 3, got %d", idx)
	}
	l.Cursor = 4
	if !l.SelectGroup(menu.GroupKeyboard) || l.Cursor != 0 {
		t.Fatalf("expected cursor on keyboard header, got %d", l.Cursor)
	}
	current, ok := l.Current()
	if !ok || !current.IsHeader() {
		t.Fatalf("expected header under cursor, got %#v", current)
	}

	l.UpdateEntries(groupedEntries()[:3])
	if l.IndexOfGroup(menu.GroupLocale) != -1 {
		t.Fatalf("expected missing group to report -1")
	}
	if l.SelectGroup(menu.GroupLocale) {
		t.Fatalf("expected SelectGroup to fail for missing group")
	}
}
