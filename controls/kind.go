package controls

import (
	"fmt"
	"strings"
)

// Kind is the widget category of a settings control. It decides which
// accessor carries the control's persisted value.
type Kind int

const (
	KindNone Kind = iota
	KindButton
	KindDropdown
	KindInputField
	KindSlider
	KindToggle
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindButton:
		return "Button"
	case KindDropdown:
		return "Dropdown"
	case KindInputField:
		return "InputField"
	case KindSlider:
		return "Slider"
	case KindToggle:
		return "Toggle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Persisted reports whether controls of this kind carry a stored value.
func (k Kind) Persisted() bool {
	return k != KindNone && k != KindButton
}

// ParseKind accepts the names printed by String, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return KindNone, nil
	case "button":
		return KindButton, nil
	case "dropdown":
		return KindDropdown, nil
	case "inputfield", "input_field", "input":
		return KindInputField, nil
	case "slider":
		return KindSlider, nil
	case "toggle":
		return KindToggle, nil
	default:
		return KindNone, fmt.Errorf("unknown control kind %q", s)
	}
}
