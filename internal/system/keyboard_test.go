package system

import (
	"reflect"
	"testing"

	"github.com/atomicstack/levocale/internal/menu"
)

func TestLayoutForLocale(t *testing.T) {
	cases := []struct {
		code   string
		layout string
		ok     bool
	}{
		{"en_US.UTF-8", "us", true},
		{"en_GB.UTF-8", "us", true},
		{"da_DK.UTF-8", "dk", true},
		{"pt_BR.UTF-8", "br", true},
		{"pt_PT.UTF-8", "pt", true},
		{"pt_BR", "br", true},
		{"sv_SE.UTF-8", "se", true},
		{"ar_SA.UTF-8", "ara", true},
		{"hi_IN", "in", true},
		{"C", "", false},
		{"C.UTF-8", "", false},
		{"POSIX", "", false},
		{"eo.UTF-8", "", false},
		{"xx_YY.UTF-8", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		layout, ok := LayoutForLocale(tc.code)
		if layout != tc.layout || ok != tc.ok {
			t.Fatalf("%q: expected (%q, %v), got (%q, %v)", tc.code, tc.layout, tc.ok, layout, ok)
		}
	}
}

func TestDeriveLayoutsSortsAndDedupes(t *testing.T) {
	locales := []menu.Option{
		{Code: "en_US.UTF-8", Name: "English (US)"},
		{Code: "da_DK.UTF-8", Name: "Danish (Denmark)"},
		{Code: "C.UTF-8", Name: "C (POSIX)"},
		{Code: "en_GB.UTF-8", Name: "English (UK)"},
		{Code: "pt_BR.UTF-8", Name: "Portuguese (Brazil)"},
		{Code: "pt_PT.UTF-8", Name: "Portuguese (Portugal)"},
	}
	want := []menu.Option{
		{Code: "br", Name: "Portuguese (Brazil)"},
		{Code: "dk", Name: "Danish (Denmark)"},
		{Code: "pt", Name: "Portuguese (Portugal)"},
		{Code: "us", Name: "English (US)"},
	}
	if got := DeriveLayouts(locales); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected layouts\nwant %#v\ngot  %#v", want, got)
	}
}

func TestDeriveLayoutsEmpty(t *testing.T) {
	if got := DeriveLayouts([]menu.Option{{Code: "C", Name: "C (POSIX)"}}); len(got) != 0 {
		t.Fatalf("expected no layouts, got %#v", got)
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"C":                "C (POSIX)",
		"C.UTF-8":          "C (POSIX)",
		"en_US.UTF-8":      "English (US)",
		"da_DK.UTF-8":      "Danish (Denmark)",
		"de_DE.UTF-8@euro": "German (Germany)",
		"pt_BR.UTF-8":      "Portuguese (Brazil)",
	}
	for code, want := range cases {
		if got := DisplayName(code); got != want {
			t.Fatalf("%q: expected %q, got %q", code, want, got)
		}
	}
}

func TestDisplayNameFallbacks(t *testing.T) {
	if got := DisplayName("nb_NO.UTF-8"); got == "" || got == "NB (NO)" {
		t.Fatalf("expected a language name for nb_NO, got %q", got)
	}
	if got := DisplayName("123_45.UTF-8"); got != "123 (45)" {
		t.Fatalf("expected upper-cased fallback, got %q", got)
	}
}
