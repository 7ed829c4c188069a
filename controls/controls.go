package controls

import "math"

// Dropdown exposes the selected option index.
type Dropdown interface {
	SelectedIndex() int
	SetSelectedIndex(i int)
	OptionCount() int
}

// InputField exposes the displayed text.
type InputField interface {
	Text() string
	SetText(s string)
}

// Slider exposes a numeric value inside [min, max].
type Slider interface {
	Value() float64
	SetValue(v float64)
	Bounds() (min, max float64)
	WholeNumbers() bool
}

// Toggle exposes an on/off state.
type Toggle interface {
	IsOn() bool
	SetOn(on bool)
}

// Clicker is implemented by buttons.
type Clicker interface {
	Click()
}

// KindOf returns the category of control c based on the accessors it
// implements.
func KindOf(c any) Kind {
	switch c.(type) {
	case Dropdown:
		return KindDropdown
	case Slider:
		return KindSlider
	case Toggle:
		return KindToggle
	case InputField:
		return KindInputField
	case Clicker:
		return KindButton
	default:
		return KindNone
	}
}

// DropdownWidget is a headless dropdown.
type DropdownWidget struct {
	options  []string
	selected int
}

func NewDropdown(options []string) *DropdownWidget {
	return &DropdownWidget{options: append([]string(nil), options...)}
}

func (d *DropdownWidget) SelectedIndex() int { return d.selected }
func (d *DropdownWidget) OptionCount() int   { return len(d.options) }
func (d *DropdownWidget) Options() []string  { return append([]string(nil), d.options...) }

// SetSelectedIndex clamps i into the option range.
func (d *DropdownWidget) SetSelectedIndex(i int) {
	d.selected = ClampIndex(i, len(d.options))
}

// Selected returns the label of the selected option.
func (d *DropdownWidget) Selected() string {
	if len(d.options) == 0 {
		return ""
	}
	return d.options[d.selected]
}

// InputFieldWidget is a headless text field.
type InputFieldWidget struct {
	text string
}

func NewInputField(text string) *InputFieldWidget {
	return &InputFieldWidget{text: text}
}

func (f *InputFieldWidget) Text() string     { return f.text }
func (f *InputFieldWidget) SetText(s string) { f.text = s }

// SliderWidget is a headless slider. Whole-number sliders round their value.
type SliderWidget struct {
	min, max float64
	whole    bool
	value    float64
}

// NewSlider creates a slider; max is raised to min when smaller.
func NewSlider(min, max float64, whole bool) *SliderWidget {
	s := &SliderWidget{whole: whole}
	s.SetBounds(min, max)
	return s
}

func (s *SliderWidget) Value() float64             { return s.value }
func (s *SliderWidget) Bounds() (float64, float64) { return s.min, s.max }
func (s *SliderWidget) WholeNumbers() bool         { return s.whole }

func (s *SliderWidget) SetValue(v float64) {
	if s.whole {
		v = math.Round(v)
	}
	s.value = ClampFloat(v, s.min, s.max)
}

// SetBounds normalizes the bounds and re-clamps the current value.
func (s *SliderWidget) SetBounds(min, max float64) {
	s.min, s.max = NormalizeBounds(min, max)
	s.SetValue(s.value)
}

// SetWholeNumbers switches between int and float mode and re-clamps.
func (s *SliderWidget) SetWholeNumbers(whole bool) {
	s.whole = whole
	s.SetValue(s.value)
}

// ToggleWidget is a headless checkbox.
type ToggleWidget struct {
	label string
	on    bool
}

func NewToggle(label string, on bool) *ToggleWidget {
	return &ToggleWidget{label: label, on: on}
}

func (t *ToggleWidget) IsOn() bool    { return t.on }
func (t *ToggleWidget) SetOn(on bool) { t.on = on }
func (t *ToggleWidget) Label() string { return t.label }

// ButtonWidget runs its handler when clicked.
type ButtonWidget struct {
	label   string
	onClick func()
}

func NewButton(label string, onClick func()) *ButtonWidget {
	return &ButtonWidget{label: label, onClick: onClick}
}

func (b *ButtonWidget) Label() string { return b.label }

func (b *ButtonWidget) Click() {
	if b.onClick != nil {
		b.onClick()
	}
}

// OnClick replaces the click handler.
func (b *ButtonWidget) OnClick(f func()) { b.onClick = f }

// NormalizeBounds raises max to min when it is smaller.
func NormalizeBounds(min, max float64) (float64, float64) {
	if max < min {
		max = min
	}
	return min, max
}

// ClampFloat clamps v into [min, max].
func ClampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampIndex clamps i into [0, n-1]; with no options the index is 0.
func ClampIndex(i, n int) int {
	if i > n-1 {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
