package state

// MoveCursorUp moves the cursor up one entry, wrapping to the last entry.
func (l *Level) MoveCursorUp() bool {
	n := len(l.Entries)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor > 0 {
		l.Cursor--
	} else {
		l.Cursor = n - 1
	}
	return old != l.Cursor
}

// MoveCursorDown moves the cursor down one entry, wrapping to the first entry.
func (l *Level) MoveCursorDown() bool {
	n := len(l.Entries)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < n-1 {
		l.Cursor++
	} else {
		l.Cursor = 0
	}
	return old != l.Cursor
}

// MoveCursorHome moves the cursor to the first entry.
func (l *Level) MoveCursorHome() bool {
	if len(l.Entries) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last entry.
func (l *Level) MoveCursorEnd() bool {
	n := len(l.Entries)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *Level) moveCursorBy(delta int) bool {
	if len(l.Entries) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Entries) {
		l.Cursor = len(l.Entries) - 1
	}
	return l.Cursor != old
}

func (l *Level) pageSize(maxVisible int) int {
	total := len(l.Entries)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays inside
// a window of maxVisible entries. The offset only moves as far as needed and
// never exceeds len-maxVisible. A non-positive capacity leaves the state
// untouched.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	if len(l.Entries) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if maxVisible <= 0 {
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Entries) {
		l.Cursor = len(l.Entries) - 1
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	} else if l.Cursor >= l.ViewportOffset+maxVisible {
		l.ViewportOffset = l.Cursor - maxVisible + 1
	}
	maxOffset := len(l.Entries) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
}

// VisibleRange returns the half-open range of entries inside the viewport.
func (l *Level) VisibleRange(maxVisible int) (int, int) {
	n := len(l.Entries)
	if n == 0 || maxVisible <= 0 {
		return 0, 0
	}
	start := l.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := start + maxVisible
	if end > n {
		end = n
	}
	return start, end
}

// HasMoreAbove reports whether entries are scrolled off the top.
func (l *Level) HasMoreAbove() bool {
	return l.ViewportOffset > 0
}

// HasMoreBelow reports whether entries are hidden below the viewport.
func (l *Level) HasMoreBelow(maxVisible int) bool {
	_, end := l.VisibleRange(maxVisible)
	return end < len(l.Entries)
}
