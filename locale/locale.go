// Package locale holds the toolkit's user-facing strings.
package locale

import (
	"encoding/json"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	ButtonPlay     = &i18n.Message{ID: "button_play", Other: "Play"}
	ButtonSettings = &i18n.Message{ID: "button_settings", Other: "Settings"}
	ButtonCredits  = &i18n.Message{ID: "button_credits", Other: "Credits"}
	ButtonQuit     = &i18n.Message{ID: "button_quit", Other: "Quit"}
	ButtonNewGame  = &i18n.Message{ID: "button_new_game", Other: "New Game"}
	ButtonLoadGame = &i18n.Message{ID: "button_load_game", Other: "Load Game"}
	ButtonBack     = &i18n.Message{ID: "button_back", Other: "Back"}
	ButtonOk       = &i18n.Message{ID: "button_ok", Other: "Ok"}

	TitleMainMenu = &i18n.Message{ID: "title_main_menu", Other: "Main Menu"}
	TitleSettings = &i18n.Message{ID: "title_settings", Other: "Settings"}
	TitleCredits  = &i18n.Message{ID: "title_credits", Other: "Credits"}
	TitleLoadGame = &i18n.Message{ID: "title_load_game", Other: "Load Game"}

	DuplicateKeyTitle  = &i18n.Message{ID: "dialog_duplicate_key_title", Other: "Duplicate Key"}
	DuplicateKeyBody   = &i18n.Message{ID: "dialog_duplicate_key", Other: "You cannot have two of the same key for different playerprefs values. Please change one of them to a different one."}
	DuplicateKeyDetail = &i18n.Message{ID: "dialog_duplicate_key_detail", Other: "Key \"{{.Key}}\" is used by controls {{.First}} and {{.Second}}."}

	PrefsPlaceholder = &i18n.Message{ID: "prefs_placeholder", Other: "None"}
	NoSaves          = &i18n.Message{ID: "saves_empty", Other: "No saved games"}
)

var defaults = []*i18n.Message{
	ButtonPlay, ButtonSettings, ButtonCredits, ButtonQuit, ButtonNewGame, ButtonLoadGame, ButtonBack, ButtonOk,
	TitleMainMenu, TitleSettings, TitleCredits, TitleLoadGame,
	DuplicateKeyTitle, DuplicateKeyBody, DuplicateKeyDetail,
	PrefsPlaceholder, NoSaves,
}

// Localizer resolves messages for one language, falling back to English.
type Localizer struct {
	bundle *i18n.Bundle
	loc    *i18n.Localizer
	lang   language.Tag
	byID   map[string]*i18n.Message
}

// New creates a localizer for lang, a BCP 47 tag. An empty lang means English.
func New(lang string) (*Localizer, error) {
	tag := language.English
	if lang != "" {
		t, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("parse language %q: %w", lang, err)
		}
		tag = t
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	if err := bundle.AddMessages(language.English, defaults...); err != nil {
		return nil, fmt.Errorf("add default messages: %w", err)
	}

	byID := make(map[string]*i18n.Message, len(defaults))
	for _, m := range defaults {
		byID[m.ID] = m
	}
	l := &Localizer{bundle: bundle, lang: tag, byID: byID}
	l.loc = i18n.NewLocalizer(bundle, tag.String())
	return l, nil
}

// Language is the requested language.
func (l *Localizer) Language() language.Tag { return l.lang }

// LoadMessageFile adds translations from a go-i18n JSON file such as
// "active.fr.json"; the language comes from the file name.
func (l *Localizer) LoadMessageFile(name string, data []byte) error {
	if _, err := l.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	l.loc = i18n.NewLocalizer(l.bundle, l.lang.String())
	return nil
}

// LocalizeMessage renders msg, falling back to its English text.
func (l *Localizer) LocalizeMessage(msg *i18n.Message, data map[string]any) string {
	s, err := l.loc.Localize(&i18n.LocalizeConfig{DefaultMessage: msg, TemplateData: data})
	if err != nil {
		return msg.Other
	}
	return s
}

// Localize renders the message with the given id. Unknown ids come back
// unchanged.
func (l *Localizer) Localize(id string, data map[string]any) string {
	if msg, ok := l.byID[id]; ok {
		return l.LocalizeMessage(msg, data)
	}
	s, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return s
}
