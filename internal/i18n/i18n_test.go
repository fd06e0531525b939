package i18n

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"zh", "zh"},
		{" EN ", "en"},
		{"fr", "en"},
		{"", "en"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestT_FallsBackToEnglish(t *testing.T) {
	if got := T("fr", "logged"); got != "Logged!" {
		t.Errorf("expected English fallback, got %q", got)
	}
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	if got := T("en", "noSuchKey"); got != "noSuchKey" {
		t.Errorf("expected key echo for unknown key, got %q", got)
	}
}

func TestAllLanguagesCoverSameKeys(t *testing.T) {
	base := tables["en"].strings
	for _, lang := range Languages {
		tbl := tables[lang].strings
		for key := range base {
			if _, ok := tbl[key]; !ok {
				t.Errorf("language %s is missing key %s", lang, key)
			}
		}
		if len(tbl) != len(base) {
			t.Errorf("language %s has %d keys, en has %d", lang, len(tbl), len(base))
		}
	}
}

func TestWeekdaysStartSunday(t *testing.T) {
	if Weekdays("en")[0] != "Sun" {
		t.Errorf("expected week to start on Sunday, got %q", Weekdays("en")[0])
	}
	for _, lang := range Languages {
		for i, wd := range Weekdays(lang) {
			if wd == "" {
				t.Errorf("language %s has empty weekday at %d", lang, i)
			}
		}
	}
}
