package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliderNormalizesBounds(t *testing.T) {
	s := NewSlider(10, 5, true)
	lo, hi := s.Bounds()
	assert.Equal(t, 10.0, lo)
	assert.Equal(t, 10.0, hi)

	s.SetValue(3)
	assert.Equal(t, 10.0, s.Value())
}

func TestSliderClampsOnBoundsAndTypeChange(t *testing.T) {
	s := NewSlider(0, 10, false)
	s.SetValue(7.6)
	assert.Equal(t, 7.6, s.Value())

	s.SetWholeNumbers(true)
	assert.Equal(t, 8.0, s.Value())

	s.SetBounds(0, 5)
	assert.Equal(t, 5.0, s.Value())

	s.SetValue(-1)
	assert.Equal(t, 0.0, s.Value())
}

func TestDropdownClampsIndex(t *testing.T) {
	d := NewDropdown([]string{"Low", "Mid", "High"})
	d.SetSelectedIndex(7)
	assert.Equal(t, 2, d.SelectedIndex())
	assert.Equal(t, "High", d.Selected())
	d.SetSelectedIndex(-3)
	assert.Equal(t, 0, d.SelectedIndex())

	empty := NewDropdown(nil)
	empty.SetSelectedIndex(4)
	assert.Equal(t, 0, empty.SelectedIndex())
	assert.Equal(t, "", empty.Selected())
}

func TestButtonClick(t *testing.T) {
	clicks := 0
	b := NewButton("Apply", func() { clicks++ })
	b.Click()
	b.Click()
	assert.Equal(t, 2, clicks)
	assert.NotPanics(t, NewButton("noop", nil).Click)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindDropdown, KindOf(NewDropdown(nil)))
	assert.Equal(t, KindSlider, KindOf(NewSlider(0, 1, false)))
	assert.Equal(t, KindToggle, KindOf(NewToggle("", false)))
	assert.Equal(t, KindInputField, KindOf(NewInputField("")))
	assert.Equal(t, KindButton, KindOf(NewButton("", nil)))
	assert.Equal(t, KindNone, KindOf(42))
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"slider":      KindSlider,
		"InputField":  KindInputField,
		"input_field": KindInputField,
		"Toggle":      KindToggle,
		"button":      KindButton,
		"dropdown":    KindDropdown,
		"":            KindNone,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseKind("knob")
	assert.Error(t, err)

	assert.False(t, KindButton.Persisted())
	assert.False(t, KindNone.Persisted())
	assert.True(t, KindToggle.Persisted())
}
