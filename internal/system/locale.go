package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/levocale/internal/logging/events"
	"github.com/atomicstack/levocale/internal/menu"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrLocaleNotApplied is returned when the system locale could not be changed.
var ErrLocaleNotApplied = errors.New("failed to set language")

var fallbackLocales = []menu.Option{
	{Code: "en_US.UTF-8", Name: "English (US)"},
	{Code: "C.UTF-8", Name: "C (POSIX)"},
}

var knownLocaleNames = []struct {
	prefix string
	name   string
}{
	{"en_US", "English (US)"},
	{"en_GB", "English (UK)"},
	{"da_DK", "Danish (Denmark)"},
	{"de_DE", "German (Germany)"},
	{"es_US", "Spanish (US)"},
	{"es_ES", "Spanish (Spain)"},
	{"fr_FR", "French (France)"},
	{"zh_CN", "Chinese (Simplified)"},
	{"zh_TW", "Chinese (Traditional)"},
	{"ja_JP", "Japanese (Japan)"},
	{"ko_KR", "Korean (Korea)"},
	{"ru_RU", "Russian (Russia)"},
	{"it_IT", "Italian (Italy)"},
	{"pt_BR", "Portuguese (Brazil)"},
	{"pt_PT", "Portuguese (Portugal)"},
	{"nl_NL", "Dutch (Netherlands)"},
	{"sv_SE", "Swedish (Sweden)"},
	{"no_NO", "Norwegian (Norway)"},
	{"fi_FI", "Finnish (Finland)"},
	{"pl_PL", "Polish (Poland)"},
	{"cs_CZ", "Czech (Czech Republic)"},
	{"hu_HU", "Hungarian (Hungary)"},
	{"tr_TR", "Turkish (Turkey)"},
	{"ar_SA", "Arabic (Saudi Arabia)"},
	{"hi_IN", "Hindi (India)"},
	{"th_TH", "Thai (Thailand)"},
	{"vi_VN", "Vietnamese (Vietnam)"},
}

// CurrentLocale returns the active LANG value, or Unknown.
func (s *System) CurrentLocale() string {
	if out, err := s.runner.Run("locale"); err == nil {
		for _, line := range splitLines(out) {
			if strings.HasPrefix(line, "LANG=") {
				return strings.Trim(strings.TrimPrefix(line, "LANG="), `"`)
			}
		}
	} else {
		events.System.CommandFailed("locale", err)
	}

	if out, err := s.runner.Run("localectl", "status"); err == nil {
		for _, line := range splitLines(out) {
			trimmed := strings.TrimSpace(line)
			trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "System Locale:"))
			if strings.HasPrefix(trimmed, "LANG=") {
				return strings.TrimSpace(strings.TrimPrefix(trimmed, "LANG="))
			}
		}
	} else {
		events.System.CommandFailed("localectl status", err)
	}

	if lang := s.getenv("LANG"); lang != "" {
		return lang
	}
	return Unknown
}

// AvailableLocales lists installed locales. It never returns an empty list.
func (s *System) AvailableLocales() []menu.Option {
	out, err := s.runner.Run("localectl", "list-locales")
	if err != nil {
		events.System.CommandFailed("localectl list-locales", err)
	}
	var locales []menu.Option
	if err == nil {
		for _, line := range splitLines(out) {
			code := strings.TrimSpace(line)
			if code == "" {
				continue
			}
			locales = append(locales, menu.Option{Code: code, Name: DisplayName(code)})
		}
	}
	if len(locales) == 0 {
		return append([]menu.Option(nil), fallbackLocales...)
	}
	return locales
}

// ApplyLocale sets the system LANG through localectl. sudo runs
// non-interactively since the terminal is owned by the menu.
func (s *System) ApplyLocale(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: empty locale code", ErrLocaleNotApplied)
	}
	if _, err := s.runner.Run("sudo", "-n", "localectl", "set-locale", "LANG="+code); err != nil {
		events.System.CommandFailed("localectl set-locale", err)
		return fmt.Errorf("%w: %s", ErrLocaleNotApplied, code)
	}
	return nil
}

// DisplayName converts a locale code into a human readable name.
func DisplayName(code string) string {
	base := localeBase(code)
	if base == "C" || base == "POSIX" {
		return "C (POSIX)"
	}
	for _, known := range knownLocaleNames {
		if strings.HasPrefix(code, known.prefix) {
			return known.name
		}
	}
	if tag, err := language.Parse(strings.ReplaceAll(base, "_", "-")); err == nil {
		if name := display.English.Tags().Name(tag); name != "" {
			return name
		}
	}
	if lang, country, ok := strings.Cut(base, "_"); ok {
		return fmt.Sprintf("%s (%s)", strings.ToUpper(lang), strings.ToUpper(country))
	}
	if base == "" {
		return code
	}
	return strings.ToUpper(base)
}

// localeBase strips the codeset and modifier from a locale code, so
// "de_DE.UTF-8@euro" becomes "de_DE".
func localeBase(code string) string {
	base, _, _ := strings.Cut(code, ".")
	base, _, _ = strings.Cut(base, "@")
	return base
}
