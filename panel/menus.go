package panel

import (
	"fmt"
	"strings"

	"github.com/comereal/gamejamtoolkit/config"
)

// ButtonType is the action behind a main-menu button.
type ButtonType int

const (
	ButtonNone ButtonType = iota
	ButtonPlay
	ButtonSettings
	ButtonCredits
	ButtonQuit
	ButtonNewGame
	ButtonLoadGame
)

var buttonNames = map[ButtonType]string{
	ButtonNone:     "None",
	ButtonPlay:     "Play",
	ButtonSettings: "Settings",
	ButtonCredits:  "Credits",
	ButtonQuit:     "Quit",
	ButtonNewGame:  "New Game",
	ButtonLoadGame: "Load Game",
}

func (b ButtonType) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("ButtonType(%d)", int(b))
}

// MessageID is the localisation id of the button's default label.
func (b ButtonType) MessageID() string {
	return "button_" + strings.ReplaceAll(strings.ToLower(b.String()), " ", "_")
}

// ParseButtonType accepts names like "play", "new_game" or "Load Game".
func ParseButtonType(s string) (ButtonType, error) {
	norm := strings.NewReplacer("_", "", " ", "", "-", "").Replace(strings.ToLower(s))
	for t, name := range buttonNames {
		if strings.ReplaceAll(strings.ToLower(name), " ", "") == norm {
			return t, nil
		}
	}
	if norm == "" {
		return ButtonNone, nil
	}
	return ButtonNone, fmt.Errorf("unknown button type %q", s)
}

// ButtonDefinition is one main-menu button.
type ButtonDefinition struct {
	Type  ButtonType
	Label string
	Scene int // scene index for Play and New Game
}

// MainMenuDefinition is the main menu panel.
type MainMenuDefinition struct {
	Title   string
	Buttons []ButtonDefinition
}

// Normalize drops None buttons and fills missing labels.
func (d *MainMenuDefinition) Normalize() {
	if d.Title == "" {
		d.Title = config.Credits.DefaultMainTitle
	}
	kept := make([]ButtonDefinition, 0, len(d.Buttons))
	for _, b := range d.Buttons {
		if b.Type == ButtonNone {
			continue
		}
		if b.Label == "" {
			b.Label = b.Type.String()
		}
		kept = append(kept, b)
	}
	d.Buttons = kept
}

// CreditsDefinition is the scrolling credits panel.
type CreditsDefinition struct {
	Title       string
	Lines       []string
	ScrollSpeed float64
	ScrollEnd   float64
}

// Normalize fills scroll defaults. A zero scroll end means scroll forever.
func (d *CreditsDefinition) Normalize() {
	if d.Title == "" {
		d.Title = config.Credits.DefaultTitle
	}
	if d.ScrollSpeed <= 0 {
		d.ScrollSpeed = config.Credits.ScrollSpeed
	}
	if d.ScrollEnd <= 0 {
		d.ScrollEnd = config.Credits.ScrollEnd
	}
}
