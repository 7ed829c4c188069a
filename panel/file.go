// Package panel turns menu panel definitions into live controls.
package panel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/comereal/gamejamtoolkit/controls"
	"github.com/comereal/gamejamtoolkit/prefs"
)

// File holds the panels defined in one YAML or JSON document. Absent
// sections are nil.
type File struct {
	Settings *SettingsDefinition
	Main     *MainMenuDefinition
	Credits  *CreditsDefinition
}

type rawFile struct {
	Settings *rawSettings `json:"settings"`
	Main     *rawMain     `json:"main"`
	Credits  *rawCredits  `json:"credits"`
}

type rawSettings struct {
	Title    string       `json:"title"`
	Controls []rawControl `json:"controls"`
}

type rawControl struct {
	Kind    string   `json:"kind"`
	Type    string   `json:"type"`
	Key     string   `json:"key"`
	Text    string   `json:"text"`
	Default any      `json:"default"`
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`
	Options []string `json:"options"`
}

type rawMain struct {
	Title   string      `json:"title"`
	Buttons []rawButton `json:"buttons"`
}

type rawButton struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Scene int    `json:"scene"`
}

type rawCredits struct {
	Title       string   `json:"title"`
	Lines       []string `json:"lines"`
	ScrollSpeed float64  `json:"scroll_speed"`
	ScrollEnd   float64  `json:"scroll_end"`
}

// LoadFile reads panel definitions from path. Definitions are returned as
// written; call Normalize or Build to apply the control rules.
func LoadFile(path string) (*File, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported panel format: %s", filepath.Ext(path))
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var raw rawFile
	if err := k.UnmarshalWithConf("", &raw, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return raw.convert()
}

func (r rawFile) convert() (*File, error) {
	out := &File{}
	if r.Settings != nil {
		s := &SettingsDefinition{Title: r.Settings.Title}
		for i, rc := range r.Settings.Controls {
			c, err := rc.convert()
			if err != nil {
				return nil, fmt.Errorf("settings.controls[%d]: %w", i, err)
			}
			s.Controls = append(s.Controls, c)
		}
		out.Settings = s
	}
	if r.Main != nil {
		m := &MainMenuDefinition{Title: r.Main.Title}
		for i, rb := range r.Main.Buttons {
			t, err := ParseButtonType(rb.Type)
			if err != nil {
				return nil, fmt.Errorf("main.buttons[%d]: %w", i, err)
			}
			m.Buttons = append(m.Buttons, ButtonDefinition{Type: t, Label: rb.Label, Scene: rb.Scene})
		}
		out.Main = m
	}
	if r.Credits != nil {
		out.Credits = &CreditsDefinition{
			Title:       r.Credits.Title,
			Lines:       r.Credits.Lines,
			ScrollSpeed: r.Credits.ScrollSpeed,
			ScrollEnd:   r.Credits.ScrollEnd,
		}
	}
	return out, nil
}

func (rc rawControl) convert() (ControlDefinition, error) {
	kind, err := controls.ParseKind(rc.Kind)
	if err != nil {
		return ControlDefinition{}, err
	}
	typ, err := prefs.ParseDataType(rc.Type)
	if err != nil {
		return ControlDefinition{}, err
	}
	return ControlDefinition{
		Kind:            kind,
		DataType:        typ,
		Key:             rc.Key,
		DisplayText:     rc.Text,
		Default:         defaultValue(rc.Default),
		SliderMin:       rc.Min,
		SliderMax:       rc.Max,
		DropdownOptions: rc.Options,
	}, nil
}

// defaultValue maps a decoded YAML/JSON scalar to a Value.
func defaultValue(v any) prefs.Value {
	switch x := v.(type) {
	case nil:
		return prefs.Value{}
	case bool:
		if x {
			return prefs.IntValue(1)
		}
		return prefs.IntValue(0)
	case int:
		return prefs.IntValue(x)
	case int64:
		return prefs.IntValue(int(x))
	case uint64:
		return prefs.IntValue(int(x))
	case float64:
		if x == float64(int(x)) {
			return prefs.IntValue(int(x))
		}
		return prefs.FloatValue(x)
	case string:
		return prefs.StringValue(x)
	default:
		return prefs.StringValue(fmt.Sprint(x))
	}
}
