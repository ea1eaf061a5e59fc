package menu

import "fmt"

const (
	expandedGlyph  = "▼"
	collapsedGlyph = "▶"
	currentMarker  = "● "
	blankMarker    = "  "
)

// Build flattens the registry into render-ready entries. Options are fetched
// from src on every call; groups without options are omitted entirely.
func Build(reg *Registry, status Status, src Source) []Entry {
	if reg == nil || src == nil {
		return nil
	}
	entries := make([]Entry, 0, 16)
	for _, group := range reg.Groups() {
		options := groupOptions(group.ID, src)
		if len(options) == 0 {
			continue
		}
		current := statusValue(group.ID, status)
		entries = append(entries, headerEntry(group, current))
		if !group.Expanded {
			continue
		}
		for _, opt := range options {
			entries = append(entries, leafEntry(group.ID, opt, current))
		}
	}
	return entries
}

func groupOptions(id GroupID, src Source) []Option {
	switch id {
	case GroupKeyboard:
		return src.AvailableLayouts()
	case GroupLocale:
		return src.AvailableLocales()
	default:
		return nil
	}
}

func statusValue(id GroupID, status Status) string {
	switch id {
	case GroupKeyboard:
		return status.Layout
	case GroupLocale:
		return status.Locale
	default:
		return ""
	}
}

func headerEntry(group *Group, current string) Entry {
	glyph := collapsedGlyph
	if group.Expanded {
		glyph = expandedGlyph
	}
	return Entry{
		Kind:        KindHeader,
		Group:       group.ID,
		Label:       fmt.Sprintf("%s %s", glyph, group.Title),
		Description: fmt.Sprintf("Current: %s", current),
		Action:      Action{Kind: ActionToggleGroup, Group: group.ID},
	}
}

func leafEntry(id GroupID, opt Option, current string) Entry {
	isCurrent := opt.Code == current
	prefix := blankMarker
	if isCurrent {
		prefix = currentMarker
	}
	entry := Entry{
		Kind:    KindLeaf,
		Group:   id,
		Label:   prefix + opt.Name,
		Code:    opt.Code,
		Name:    opt.Name,
		Current: isCurrent,
	}
	switch id {
	case GroupKeyboard:
		entry.Description = fmt.Sprintf("Layout: %s", opt.Code)
		entry.Action = Action{Kind: ActionApplyLayout, Code: opt.Code}
	case GroupLocale:
		entry.Description = opt.Code
		entry.Action = Action{Kind: ActionApplyLocale, Code: opt.Code}
	}
	return entry
}
