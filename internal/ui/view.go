package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/levocale/internal/logging/events"
	"github.com/atomicstack/levocale/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	appTitle = "🌐 Levocale - Locale & Keyboard Switcher"

	// rowsPerEntry is the height of one menu entry: label and description.
	rowsPerEntry = 2
	// defaultVisibleItems is used until the terminal reports its size.
	defaultVisibleItems = 10

	frameRows     = 2 // outer border
	titleRows     = 1
	statusRows    = 3 // bordered single line
	menuChromeRow = 2 // menu border
	footerRows    = 2 // rule + hints

	selectedPrefix    = "► "
	unselectedPrefix  = "  "
	descriptionIndent = "    "

	moreAbove = "⬆ More above"
	moreBelow = "⬇ More below"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.syncViewport()
	inner := m.innerWidth()

	sections := []string{
		m.renderTitle(inner),
		m.renderStatus(inner),
		m.renderMenu(inner),
	}
	if m.showFooter {
		sections = append(sections, m.renderFooter(inner))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	frame := styles.Frame.Copy()
	if inner > 0 {
		frame = frame.Width(inner)
	}
	return frame.Render(body)
}

// innerWidth is the width available inside the outer frame, or 0 when the
// terminal size is not known yet.
func (m *Model) innerWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - 2
	if w < 1 {
		return 1
	}
	return w
}

func (m *Model) renderTitle(width int) string {
	title := styles.Title.Render(truncateText(appTitle, width))
	if width <= 0 {
		return title
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, title)
}

func (m *Model) renderStatus(width int) string {
	text := fmt.Sprintf("Locale: %s | Keyboard Layout: %s", m.status.Locale, m.status.Layout)
	box := styles.StatusBox.Copy()
	content := boxWidth(width)
	if content > 0 {
		box = box.Width(content).Align(lipgloss.Center)
	}
	return box.Render(styles.Status.Render(truncateText(text, content)))
}

func (m *Model) renderMenu(width int) string {
	content := boxWidth(width)
	box := styles.MenuBox.Copy()
	if content > 0 {
		box = box.Width(content)
	}
	lines := m.menuLines(content)
	return box.Render(renderLines(lines))
}

func (m *Model) menuLines(width int) []styledLine {
	if m.level.Len() == 0 {
		return []styledLine{{text: "(no options available)", style: styles.Empty}}
	}
	start, end := m.level.VisibleRange(m.maxVisibleItems())
	lines := make([]styledLine, 0, (end-start)*rowsPerEntry)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.buildEntryLines(m.level.Entries[idx], idx == m.level.Cursor, width)...)
	}
	return lines
}

func (m *Model) buildEntryLines(entry menu.Entry, selected bool, width int) []styledLine {
	prefix := unselectedPrefix
	if selected {
		prefix = selectedPrefix
	}
	labelStyle, descStyle := styles.Item, styles.Description
	switch {
	case selected && entry.IsHeader():
		labelStyle, descStyle = styles.SelectedGroupHeader, styles.SelectedGroupHeader
	case selected:
		labelStyle, descStyle = styles.SelectedItem, styles.SelectedDescription
	case entry.IsHeader():
		labelStyle = styles.GroupHeader
	}
	label := padText(truncateText(prefix+entry.Label, width), width, selected)
	desc := padText(truncateText(descriptionIndent+entry.Description, width), width, selected)
	return []styledLine{
		{text: label, style: labelStyle},
		{text: desc, style: descStyle},
	}
}

func (m *Model) renderFooter(width int) string {
	text := "Controls: " + m.help.ShortHelpView(m.keys.ShortHelp())
	if m.level.HasMoreAbove() {
		text += m.help.ShortSeparator + moreAbove
	}
	if m.level.HasMoreBelow(m.maxVisibleItems()) {
		text += m.help.ShortSeparator + moreBelow
	}
	rule := strings.Repeat("─", max(width, 1))
	footer := styles.Footer.Render(truncateText(text, width))
	if width > 0 {
		footer = lipgloss.PlaceHorizontal(width, lipgloss.Center, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, styles.Footer.Render(rule), footer)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	events.UI.Resize(m.width, m.height, m.maxVisibleItems())
	return nil
}

// maxVisibleItems is the number of entries the menu box can show. It may be
// zero on a very small terminal.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return defaultVisibleItems
	}
	used := frameRows + titleRows + statusRows + menuChromeRow
	if m.showFooter {
		used += footerRows
	}
	remain := m.height - used
	if remain < rowsPerEntry {
		return 0
	}
	return remain / rowsPerEntry
}

// boxWidth is the content width of a bordered box inside width.
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	if width <= 2 {
		return 1
	}
	return width - 2
}

func padText(text string, width int, pad bool) string {
	if !pad || width <= 0 {
		return text
	}
	if gap := width - lipgloss.Width(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
