package system

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/atomicstack/levocale/internal/logging/events"
	"github.com/atomicstack/levocale/internal/menu"
)

var languageLayouts = map[string]string{
	"en": "us",
	"da": "dk",
	"de": "de",
	"es": "es",
	"fr": "fr",
	"zh": "cn",
	"ja": "jp",
	"ko": "kr",
	"ru": "ru",
	"it": "it",
	"nl": "nl",
	"sv": "se",
	"no": "no",
	"fi": "fi",
	"pl": "pl",
	"cs": "cz",
	"hu": "hu",
	"tr": "tr",
	"ar": "ara",
	"hi": "in",
	"th": "th",
	"vi": "vn",
}

// CurrentLayout returns the active keyboard layout, or Unknown.
func (s *System) CurrentLayout() string {
	if out, err := s.runner.Run("hyprctl", "devices"); err == nil {
		for _, line := range splitLines(out) {
			if _, layout, ok := strings.Cut(line, "active keymap:"); ok {
				return strings.TrimSpace(layout)
			}
		}
	} else {
		events.System.CommandFailed("hyprctl devices", err)
	}

	if out, err := s.runner.Run("setxkbmap", "-query"); err == nil {
		for _, line := range splitLines(out) {
			if strings.HasPrefix(line, "layout:") {
				return strings.TrimSpace(strings.TrimPrefix(line, "layout:"))
			}
		}
	} else {
		events.System.CommandFailed("setxkbmap -query", err)
	}

	return Unknown
}

// AvailableLayouts derives keyboard layouts from the installed locales.
func (s *System) AvailableLayouts() []menu.Option {
	return DeriveLayouts(s.AvailableLocales())
}

// ApplyLayout switches the Hyprland keyboard layout.
func (s *System) ApplyLayout(code string) error {
	if _, err := s.runner.Run("hyprctl", "keyword", "input:kb_layout", code); err != nil {
		events.System.CommandFailed("hyprctl keyword", err)
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("hyprctl: %s", strings.TrimSpace(exitErr.Stderr))
		}
		return fmt.Errorf("execute hyprctl: %w", err)
	}
	return nil
}

// LayoutForLocale maps a locale code such as "pt_BR.UTF-8" to a keyboard
// layout code. Locales without a language/country pair or without a known
// language report false.
func LayoutForLocale(code string) (string, bool) {
	base, _, _ := strings.Cut(code, ".")
	lang, country, ok := strings.Cut(base, "_")
	if !ok {
		return "", false
	}
	if lang == "pt" {
		country, _, _ = strings.Cut(country, "@")
		if country == "BR" {
			return "br", true
		}
		return "pt", true
	}
	layout, ok := languageLayouts[lang]
	return layout, ok
}

// DeriveLayouts maps locales to layouts, sorted by layout code and
// deduplicated so the first display name seen for each code wins.
func DeriveLayouts(locales []menu.Option) []menu.Option {
	layouts := make([]menu.Option, 0, len(locales))
	for _, locale := range locales {
		if layout, ok := LayoutForLocale(locale.Code); ok {
			layouts = append(layouts, menu.Option{Code: layout, Name: locale.Name})
		}
	}
	slices.SortStableFunc(layouts, func(a, b menu.Option) int {
		return strings.Compare(a.Code, b.Code)
	})
	return slices.CompactFunc(layouts, func(a, b menu.Option) bool {
		return a.Code == b.Code
	})
}
