package panel

import (
	"errors"
	"fmt"

	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/controls"
	"github.com/comereal/gamejamtoolkit/logger"
	"github.com/comereal/gamejamtoolkit/prefs"
	"github.com/comereal/gamejamtoolkit/settings"
)

// ControlDefinition describes one row of a settings panel.
type ControlDefinition struct {
	Kind            controls.Kind
	DataType        prefs.DataType
	Key             string
	DisplayText     string
	Default         prefs.Value
	SliderMin       float64
	SliderMax       float64
	DropdownOptions []string
}

// Normalize applies the per-kind rules. Dropdowns and toggles store Int and
// sliders store Int or Float. Dropdown defaults clamp to the option range.
// A slider max below its min is raised to min, then the default clamps into
// the bounds. Toggle defaults are 0 or 1. The default always ends up
// matching DataType.
func (c *ControlDefinition) Normalize() {
	if c.DisplayText == "" {
		c.DisplayText = config.Settings.DefaultDisplayText
	}

	switch c.Kind {
	case controls.KindNone, controls.KindButton:
		c.DataType = prefs.None
		c.Default = prefs.Value{}
		return
	case controls.KindDropdown, controls.KindToggle:
		c.DataType = prefs.Int
	case controls.KindSlider:
		if c.DataType != prefs.Int && c.DataType != prefs.Float {
			c.DataType = prefs.Int
		}
	case controls.KindInputField:
		if c.DataType == prefs.None {
			// No persisted value; AddEntry will reject it.
			c.Default = prefs.Value{}
			return
		}
	}

	if c.Default.Type() != c.DataType {
		c.Default, _ = c.Default.Convert(c.DataType)
	}

	switch c.Kind {
	case controls.KindDropdown:
		c.Default = prefs.IntValue(controls.ClampIndex(c.Default.Int(), len(c.DropdownOptions)))
	case controls.KindToggle:
		if v := c.Default.Int(); v != config.Settings.ToggleOff && v != config.Settings.ToggleOn {
			c.Default = prefs.IntValue(config.Settings.ToggleOff)
		}
	case controls.KindSlider:
		if c.DataType == prefs.Int {
			c.SliderMin, c.SliderMax = float64(int(c.SliderMin)), float64(int(c.SliderMax))
		}
		c.SliderMin, c.SliderMax = controls.NormalizeBounds(c.SliderMin, c.SliderMax)
		v := controls.ClampFloat(c.Default.Float(), c.SliderMin, c.SliderMax)
		if c.DataType == prefs.Int {
			c.Default = prefs.IntValue(int(v))
		} else {
			c.Default = prefs.FloatValue(v)
		}
	}
}

// SettingsDefinition is a settings panel: a title and its controls.
type SettingsDefinition struct {
	Title    string
	Controls []ControlDefinition
}

// Normalize normalizes every control.
func (d *SettingsDefinition) Normalize() {
	if d.Title == "" {
		d.Title = config.Settings.DefaultTitle
	}
	for i := range d.Controls {
		d.Controls[i].Normalize()
	}
}

// ValidateKeys rejects definitions where a persisted control has no key or
// two persisted controls share one.
func (d *SettingsDefinition) ValidateKeys() error {
	bindings := make([]settings.Binding, len(d.Controls))
	for i, c := range d.Controls {
		bindings[i] = settings.Binding{Kind: c.Kind, Key: c.Key}
	}
	return settings.ValidateKeys(bindings)
}

// BuiltControl pairs a definition with the widget created for it.
type BuiltControl struct {
	Definition ControlDefinition
	Widget     any
}

// SettingsPanel is an instantiated settings panel.
type SettingsPanel struct {
	Title    string
	Controls []BuiltControl
	Registry *settings.Registry
}

// Control returns the widget bound to key.
func (p *SettingsPanel) Control(key string) (any, bool) {
	for _, c := range p.Controls {
		if c.Definition.Kind.Persisted() && c.Definition.Key == key {
			return c.Widget, true
		}
	}
	return nil, false
}

// Button returns the first button with the given label.
func (p *SettingsPanel) Button(label string) (*controls.ButtonWidget, bool) {
	for _, c := range p.Controls {
		if b, ok := c.Widget.(*controls.ButtonWidget); ok && b.Label() == label {
			return b, true
		}
	}
	return nil, false
}

// Build validates the definition and instantiates it: one widget per
// control and one registry entry per persisted control, in order. A
// missing or duplicate key aborts before the registry or its store is
// touched.
func (d SettingsDefinition) Build(reg *settings.Registry, log logger.Logger) (*SettingsPanel, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := d.ValidateKeys(); err != nil {
		return nil, err
	}
	d.Controls = append([]ControlDefinition(nil), d.Controls...)
	d.Normalize()

	p := &SettingsPanel{Title: d.Title, Registry: reg}
	for _, c := range d.Controls {
		w := newWidget(c)
		if w == nil {
			continue
		}
		p.Controls = append(p.Controls, BuiltControl{Definition: c, Widget: w})
		if !c.Kind.Persisted() {
			continue
		}
		err := reg.AddEntry(w, c.Kind, c.DataType, c.Key, c.Default)
		switch {
		case errors.Is(err, settings.ErrUnsupportedType):
			// Logged by the registry; the widget still shows.
		case err != nil:
			return nil, fmt.Errorf("build %s: %w", d.Title, err)
		}
	}
	log.Debugf("Built settings panel %q with %d controls", p.Title, len(p.Controls))
	return p, nil
}

func newWidget(c ControlDefinition) any {
	switch c.Kind {
	case controls.KindButton:
		return controls.NewButton(c.DisplayText, nil)
	case controls.KindDropdown:
		d := controls.NewDropdown(c.DropdownOptions)
		d.SetSelectedIndex(c.Default.Int())
		return d
	case controls.KindInputField:
		return controls.NewInputField(c.Default.Text())
	case controls.KindSlider:
		s := controls.NewSlider(c.SliderMin, c.SliderMax, c.DataType == prefs.Int)
		s.SetValue(c.Default.Float())
		return s
	case controls.KindToggle:
		return controls.NewToggle(c.DisplayText, c.Default.Int() == config.Settings.ToggleOn)
	default:
		return nil
	}
}
