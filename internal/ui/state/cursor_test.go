package state

import (
	"testing"

	"github.com/atomicstack/levocale/internal/menu"
)

func newTestLevel(labels ...string) *Level {
	entries := make([]menu.Entry, len(labels))
	for i, label := range labels {
		entries[i] = menu.Entry{Kind: menu.KindLeaf, Group: menu.GroupLocale, Label: label, Code: label}
	}
	return NewLevel("test", entries)
}

func TestMoveCursorDownWraps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	for i, want := range []int{1, 2, 0, 1} {
		l.MoveCursorDown()
		if l.Cursor != want {
			t.Fatalf("step %d: expected cursor %d, got %d", i, want, l.Cursor)
		}
	}
}

func TestMoveCursorUpWraps(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	for i, want := range []int{2, 1, 0, 2} {
		l.MoveCursorUp()
		if l.Cursor != want {
			t.Fatalf("step %d: expected cursor %d, got %d", i, want, l.Cursor)
		}
	}
}

func TestMoveCursorCycleReturnsToStart(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e", "f")
	l.Cursor = 3
	for i := 0; i < l.Len(); i++ {
		l.MoveCursorDown()
	}
	if l.Cursor != 3 {
		t.Fatalf("expected cursor back at 3 after a full cycle, got %d", l.Cursor)
	}
	for i := 0; i < l.Len(); i++ {
		l.MoveCursorUp()
	}
	if l.Cursor != 3 {
		t.Fatalf("expected cursor back at 3 after a reverse cycle, got %d", l.Cursor)
	}
}

func TestMoveCursorSingleEntry(t *testing.T) {
	l := newTestLevel("only")
	if l.MoveCursorDown() || l.Cursor != 0 {
		t.Fatalf("expected cursor to stay on single entry, got %d", l.Cursor)
	}
	if l.MoveCursorUp() || l.Cursor != 0 {
		t.Fatalf("expected cursor to stay on single entry, got %d", l.Cursor)
	}
}

func TestMoveCursorEmptyIsNoop(t *testing.T) {
	l := newTestLevel()
	if l.MoveCursorDown() || l.MoveCursorUp() {
		t.Fatalf("expected no movement on empty level")
	}
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected zeroed state, got cursor=%d offset=%d", l.Cursor, l.ViewportOffset)
	}
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when entries exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestLevel()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty level")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}

	empty := newTestLevel()
	if empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty level")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	if !l.MoveCursorPageDown(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) || l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", l.Cursor)
	}
	if !l.MoveCursorPageUp(10) || l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleScrollsDown(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}
}

func TestEnsureCursorVisibleScrollsUp(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.ViewportOffset = 3
	l.Cursor = 1
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}

func TestEnsureCursorVisibleIsSticky(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e", "f", "g", "h")
	l.ViewportOffset = 2
	l.Cursor = 4
	l.EnsureCursorVisible(4)
	if l.ViewportOffset != 2 {
		t.Fatalf("expected offset to stay at 2 while cursor is visible, got %d", l.ViewportOffset)
	}
}

func TestEnsureCursorVisibleCapsOffset(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	l.ViewportOffset = 4
	l.Cursor = 4
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 2 {
		t.Fatalf("expected offset capped at 2, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 1
	l.Cursor = 1
	l.EnsureCursorVisible(10)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset 0 when everything fits, got %d", l.ViewportOffset)
	}
}

func TestEnsureCursorVisibleKeepsCursorInWindow(t *testing.T) {
	for _, visible := range []int{1, 2, 3, 5, 9} {
		l := newTestLevel("a", "b", "c", "d", "e", "f", "g")
		for step := 0; step < 20; step++ {
			if step%3 == 0 {
				l.MoveCursorUp()
			} else {
				l.MoveCursorDown()
			}
			l.EnsureCursorVisible(visible)
			if l.Cursor < l.ViewportOffset || l.Cursor >= l.ViewportOffset+visible {
				t.Fatalf("visible=%d step=%d: cursor %d outside window at %d", visible, step, l.Cursor, l.ViewportOffset)
			}
		}
	}
}

func TestEnsureCursorVisibleIdempotent(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e", "f")
	l.Cursor = 5
	l.EnsureCursorVisible(3)
	cursor, offset := l.Cursor, l.ViewportOffset
	l.EnsureCursorVisible(3)
	if l.Cursor != cursor || l.ViewportOffset != offset {
		t.Fatalf("expected idempotent reclamp, got cursor=%d offset=%d", l.Cursor, l.ViewportOffset)
	}
}

func TestEnsureCursorVisibleZeroCapacityIsNoop(t *testing.T) {
	l := newTestLevel("a", "b", "c")
	l.Cursor = 2
	l.ViewportOffset = 1
	l.EnsureCursorVisible(0)
	if l.Cursor != 2 || l.ViewportOffset != 1 {
		t.Fatalf("expected untouched state, got cursor=%d offset=%d", l.Cursor, l.ViewportOffset)
	}
}

func TestEnsureCursorVisibleEmpty(t *testing.T) {
	l := newTestLevel()
	l.Cursor = 3
	l.ViewportOffset = 2
	l.EnsureCursorVisible(4)
	if l.Cursor != 0 || l.ViewportOffset != 0 {
		t.Fatalf("expected zeroed state, got cursor=%d offset=%d", l.Cursor, l.ViewportOffset)
	}
}

func TestVisibleRangeAndIndicators(t *testing.T) {
	l := newTestLevel("a", "b", "c", "d", "e")
	start, end := l.VisibleRange(2)
	if start != 0 || end != 2 {
		t.Fatalf("expected [0,2), got [%d,%d)", start, end)
	}
	if l.HasMoreAbove() || !l.HasMoreBelow(2) {
		t.Fatalf("expected only more-below at top")
	}
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	start, end = l.VisibleRange(2)
	if start != 3 || end != 5 {
		t.Fatalf("expected [3,5), got [%d,%d)", start, end)
	}
	if !l.HasMoreAbove() || l.HasMoreBelow(2) {
		t.Fatalf("expected only more-above at bottom")
	}
	if s, e := l.VisibleRange(0); s != 0 || e != 0 {
		t.Fatalf("expected empty range for zero capacity, got [%d,%d)", s, e)
	}
}
