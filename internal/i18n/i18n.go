// Package i18n holds the interface labels and resolves the active locale.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supportedTags = []language.Tag{
	language.Spanish,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)

var labels = mustBuildCatalog()

// Translator renders labels for one locale.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a translator for the closest supported locale. Unknown or
// malformed locales fall back to Spanish.
func New(locale string) *Translator {
	tag := Resolve(locale)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(labels)),
	}
}

// Resolve maps a locale string to a supported tag.
func Resolve(locale string) language.Tag {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return Default()
	}
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale = locale[:i] // es_MX.UTF-8
	}
	parsed, err := language.Parse(locale)
	if err != nil {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(parsed)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.Spanish
}

// Supported returns the locale codes with a catalog.
func Supported() []string {
	out := make([]string, 0, len(supportedTags))
	for _, tag := range supportedTags {
		out = append(out, tag.String())
	}
	return out
}

// Locale returns the resolved locale code.
func (t *Translator) Locale() string {
	return t.tag.String()
}

// Next returns a translator for the following supported locale.
func (t *Translator) Next() *Translator {
	for i, tag := range supportedTags {
		if tag == t.tag {
			return New(supportedTags[(i+1)%len(supportedTags)].String())
		}
	}
	return New(Default().String())
}

// T formats the label stored under key. Missing keys render as the key.
func (t *Translator) T(key string, args ...any) string {
	if t == nil {
		return key
	}
	return t.printer.Sprintf(message.Key(key, key), args...)
}

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Default()))
	register := func(tag language.Tag, messages map[string]string) {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	register(language.Spanish, messagesES)
	register(language.English, messagesEN)
	return b
}
