// Package i18n loads the embedded gettext catalogs and translates message keys.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLocale is used when no locale is configured or the configured one is missing
const DefaultLocale = "en"

//go:embed locales/*.po
var catalogs embed.FS

var (
	mu       sync.RWMutex
	messages map[string]string
	locale   string
)

// Init selects the active catalog. An unknown locale falls back to
// DefaultLocale and returns an error describing the fallback.
func Init(lang string) error {
	if lang == "" {
		lang = DefaultLocale
	}
	m, err := load(lang)
	if err != nil {
		fallback, ferr := load(DefaultLocale)
		if ferr != nil {
			return ferr
		}
		set(fallback, DefaultLocale)
		return fmt.Errorf("locale %q not available, using %q: %w", lang, DefaultLocale, err)
	}
	set(m, lang)
	return nil
}

// Locale returns the active locale name
func Locale() string {
	mu.RLock()
	defer mu.RUnlock()
	return locale
}

// T translates key, formatting the translation with args when given. Keys
// missing from the catalog are returned unchanged.
func T(key string, args ...any) string {
	mu.RLock()
	m := messages
	mu.RUnlock()
	if m == nil {
		if err := Init(DefaultLocale); err == nil {
			mu.RLock()
			m = messages
			mu.RUnlock()
		}
	}

	msg, ok := m[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// load parses one embedded PO file into a msgid -> msgstr table
func load(lang string) (map[string]string, error) {
	data, err := catalogs.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, err
	}
	p := gotext.NewPo()
	p.Parse(data)

	trs := p.GetDomain().GetTranslations()
	m := make(map[string]string, len(trs))
	for id, tr := range trs {
		if id == "" {
			continue
		}
		m[id] = tr.Get()
	}
	return m, nil
}

func set(m map[string]string, lang string) {
	mu.Lock()
	defer mu.Unlock()
	messages, locale = m, lang
}
