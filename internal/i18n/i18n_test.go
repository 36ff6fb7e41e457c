package i18n

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		lang string
		want language.Tag
	}{
		{"", language.English},
		{"de", language.German},
		{"de_DE", language.German},
		{"de_AT.UTF-8", language.German},
		{"fr-CA", language.French},
		{"en_US", language.English},
		{"C", language.English},
		{"xx-invalid-!!", language.English},
		{"ja", language.English},
	}
	for _, tt := range tests {
		if got := Match(tt.lang); got != tt.want {
			t.Fatalf("Match(%q) = %v, want %v", tt.lang, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	de := New("de_DE")
	if got := de.Translate(CaptionError); got != "Fehler" {
		t.Fatalf("Translate(Error) = %q, want Fehler", got)
	}
	if got := de.Translate("Not in catalog"); got != "Not in catalog" {
		t.Fatalf("Translate(unknown) = %q, want key", got)
	}
	if got := de.Translate(FeePrompt); got != FeePrompt {
		t.Fatalf("Translate should not format keys containing verbs, got %q", got)
	}

	en := New("en")
	if got := en.Translate(CaptionError); got != "Error" {
		t.Fatalf("Translate(Error) in English = %q", got)
	}
}

func TestSprintfFormatsCatalogEntry(t *testing.T) {
	got := New("de").Sprintf(FeePrompt, "0.01")
	if !strings.Contains(got, "Gebühr von 0.01") {
		t.Fatalf("Sprintf = %q, want German text with amount", got)
	}
	var nilTranslator *Translator
	if got := nilTranslator.Sprintf(FeePrompt, "1.00"); !strings.Contains(got, "fee of 1.00") {
		t.Fatalf("nil Sprintf = %q", got)
	}
}

func TestNewFallsBackToEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "fr_FR.UTF-8")
	if got := New("").Tag(); got != language.French {
		t.Fatalf("Tag = %v, want French from LANG", got)
	}
}
