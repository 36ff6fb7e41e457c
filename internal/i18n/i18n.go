// Package i18n resolves the user-visible strings of the control plane for
// the language picked with -lang or the environment.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{language.English, language.German, language.French}

var matcher = language.NewMatcher(supported)

// Translator looks up catalog strings for one language. It is safe for
// concurrent use.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for lang (BCP 47 or de_DE style). An empty lang
// falls back to LC_ALL, LC_MESSAGES and LANG; anything unmatched is English.
func New(lang string) *Translator {
	if strings.TrimSpace(lang) == "" {
		lang = fromEnvironment()
	}
	tag := Match(lang)
	return &Translator{tag: tag, printer: message.NewPrinter(tag, message.Catalog(builtin))}
}

// Match picks the supported language closest to lang.
func Match(lang string) language.Tag {
	lang = normalize(lang)
	if lang == "" {
		return language.English
	}
	requested, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(requested)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Tag returns the matched language.
func (t *Translator) Tag() language.Tag {
	if t == nil {
		return language.English
	}
	return t.tag
}

// Translate returns the catalog text for key, or key itself when the catalog
// has no entry.
func (t *Translator) Translate(key string) string {
	if t == nil || key == "" {
		return key
	}
	if strings.Contains(key, "%") {
		// Keys are plain text, never format strings.
		return key
	}
	return t.printer.Sprintf(key)
}

// Sprintf formats a catalog entry with arguments.
func (t *Translator) Sprintf(key string, args ...any) string {
	if t == nil {
		return message.NewPrinter(language.English).Sprintf(key, args...)
	}
	return t.printer.Sprintf(key, args...)
}

func normalize(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}

func fromEnvironment() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

var builtin = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, text := range entries {
			_ = b.SetString(tag, key, text)
		}
	}
	return b
}
