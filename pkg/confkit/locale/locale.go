// Package locale translates the toolkit's built-in strings and any message
// IDs an application registers. Catalogs are TOML files in go-i18n format.
package locale

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var catalogs embed.FS

// Message IDs of the built-in chrome.
const (
	ButtonDone      = "ButtonDone"
	ButtonSave      = "ButtonSave"
	ButtonReset     = "ButtonReset"
	ToggleOn        = "ToggleOn"
	ToggleOff       = "ToggleOff"
	ConfirmYes      = "ConfirmYes"
	ConfirmNo       = "ConfirmNo"
	UnsavedTitle    = "UnsavedTitle"
	UnsavedMessage  = "UnsavedMessage"
	ScreenTitle     = "ScreenTitle"
	RestartRequired = "RestartRequired"
)

// Translator resolves message IDs for a preferred language list.
// An ID without a message is returned unchanged, so plain labels pass through.
type Translator struct {
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	langs     []string
}

// New creates a translator holding the embedded catalogs. langs are BCP 47
// tags or Accept-Language strings in preference order; English is the fallback.
func New(langs ...string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := catalogs.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("locale: read catalogs: %w", err)
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := catalogs.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("locale: read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return nil, fmt.Errorf("locale: parse %s: %w", name, err)
		}
	}

	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, langs...),
		langs:     langs,
	}, nil
}

var (
	defaultOnce       sync.Once
	defaultTranslator *Translator
)

// Default returns an English translator. The embedded catalogs are part of
// the binary, so a failure here is a build defect and panics.
func Default() *Translator {
	defaultOnce.Do(func() {
		t, err := New(language.English.String())
		if err != nil {
			panic(err)
		}
		defaultTranslator = t
	})
	return defaultTranslator
}

// T translates id, returning id itself when no catalog defines it.
func (t *Translator) T(id string) string {
	return t.Tf(id, nil)
}

// Tf translates id with template data, e.g. {{.Name}}.
func (t *Translator) Tf(id string, data map[string]any) string {
	if t == nil || id == "" {
		return id
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// AddMessages registers application messages for a language, overriding
// built-in IDs of the same name.
func (t *Translator) AddMessages(tag language.Tag, messages map[string]string) error {
	batch := make([]*i18n.Message, 0, len(messages))
	for id, other := range messages {
		batch = append(batch, &i18n.Message{ID: id, Other: other})
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.bundle.AddMessages(tag, batch...); err != nil {
		return fmt.Errorf("locale: add messages for %s: %w", tag, err)
	}
	t.localizer = i18n.NewLocalizer(t.bundle, t.langs...)
	return nil
}

// LoadFile registers a catalog file such as "active.fr.toml". The language
// is taken from the file name.
func (t *Translator) LoadFile(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("locale: load %s: %w", path, err)
	}
	t.localizer = i18n.NewLocalizer(t.bundle, t.langs...)
	return nil
}

// Language returns the best supported language for the preference list.
func (t *Translator) Language() language.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()

	supported := t.bundle.LanguageTags()
	if len(t.langs) == 0 || len(supported) == 0 {
		return language.English
	}

	_, index, confidence := language.NewMatcher(supported).Match(parseTags(t.langs)...)
	if confidence == language.No {
		return language.English
	}
	return supported[index]
}

// Languages lists the languages with at least one catalog.
func (t *Translator) Languages() []language.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.bundle.LanguageTags()
}

func parseTags(langs []string) []language.Tag {
	var tags []language.Tag
	for _, l := range langs {
		parsed, _, err := language.ParseAcceptLanguage(l)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	return tags
}
