package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator renders bot messages in the configured language
type Translator struct {
	localizer *i18n.Localizer
}

// NewTranslator() loads the embedded locales. Unknown languages fall back to English.
func NewTranslator(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", entry.Name(), err)
		}
	}

	return &Translator{localizer: i18n.NewLocalizer(bundle, lang, language.English.String())}, nil
}

// Msg() returns the message id filled with data, or id itself when it is missing
func (t *Translator) Msg(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		log.Println("ERROR: missing translation", id, err)
		return id
	}
	return msg
}
