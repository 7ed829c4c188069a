// Package settings binds settings-panel controls to persisted preferences.
//
// A Registry keeps one Entry per persisted control, partitioned by data type
// (Int, Float, String) in insertion order. Listing and flat indexing always
// walk the Float partition first, then Int, then String.
package settings

import (
	"errors"
	"fmt"
	"math"

	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/controls"
	"github.com/comereal/gamejamtoolkit/logger"
	"github.com/comereal/gamejamtoolkit/prefs"
)

// Errors returned by AddEntry and ValidateKeys.
var (
	ErrUnsupportedType = errors.New("unsupported data type for control")
	ErrEmptyKey        = errors.New("empty preference key")
	ErrWrongControl    = errors.New("control does not match kind")
)

// Entry is one control bound to a preference key.
type Entry struct {
	Key     string
	Type    prefs.DataType
	Default prefs.Value
	Kind    controls.Kind
	Control any
}

// KeyInfo is one row of the flat key listing.
type KeyInfo struct {
	Key  string
	Type prefs.DataType
}

// Registry owns the mapping from preference key to control.
type Registry struct {
	store  prefs.Store
	log    logger.Logger
	floats []Entry
	ints   []Entry
	texts  []Entry
}

// New creates an empty registry writing to store.
func New(store prefs.Store, log logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{store: store, log: log}
}

// Store returns the backing preference store.
func (r *Registry) Store() prefs.Store { return r.store }

// Supports reports whether a control of kind can persist values of type t.
func Supports(kind controls.Kind, t prefs.DataType) bool {
	switch kind {
	case controls.KindDropdown, controls.KindToggle:
		return t == prefs.Int
	case controls.KindSlider:
		return t == prefs.Int || t == prefs.Float
	case controls.KindInputField:
		return t == prefs.Int || t == prefs.Float || t == prefs.String
	default:
		return false
	}
}

// AddEntry appends a binding and writes def under key right away, without
// looking at any value already stored. Unsupported combinations are logged
// and leave the registry untouched.
func (r *Registry) AddEntry(control any, kind controls.Kind, t prefs.DataType, key string, def prefs.Value) error {
	if !Supports(kind, t) {
		r.log.Warnf("Could not add %q: %s control cannot store %s", key, kind, t)
		return fmt.Errorf("add %q (%s/%s): %w", key, kind, t, ErrUnsupportedType)
	}
	if key == "" {
		r.log.Warnf("Could not add %s control: empty key", kind)
		return ErrEmptyKey
	}
	if !matchesKind(control, kind) {
		r.log.Warnf("Could not add %q: control %T is not a %s", key, control, kind)
		return fmt.Errorf("add %q: %w", key, ErrWrongControl)
	}
	if def.Type() != t {
		converted, ok := def.Convert(t)
		if !ok {
			r.log.Warnf("Default %s for %q does not convert to %s, using zero value", def, key, t)
		}
		def = converted
	}

	e := Entry{Key: key, Type: t, Default: def, Kind: kind, Control: control}
	switch t {
	case prefs.Int:
		r.ints = append(r.ints, e)
	case prefs.Float:
		r.floats = append(r.floats, e)
	case prefs.String:
		r.texts = append(r.texts, e)
	}
	return prefs.Set(r.store, key, def)
}

func matchesKind(control any, kind controls.Kind) bool {
	switch kind {
	case controls.KindDropdown:
		_, ok := control.(controls.Dropdown)
		return ok
	case controls.KindInputField:
		_, ok := control.(controls.InputField)
		return ok
	case controls.KindSlider:
		_, ok := control.(controls.Slider)
		return ok
	case controls.KindToggle:
		_, ok := control.(controls.Toggle)
		return ok
	default:
		return false
	}
}

// Len returns the number of entries across all partitions.
func (r *Registry) Len() int {
	return len(r.floats) + len(r.ints) + len(r.texts)
}

// Entries returns every entry in listing order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, r.Len())
	out = append(out, r.floats...)
	out = append(out, r.ints...)
	return append(out, r.texts...)
}

// Entry returns the first entry bound to key.
func (r *Registry) Entry(key string) (Entry, bool) {
	for _, e := range r.Entries() {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Keys lists (key, type) pairs: Float partition, then Int, then String.
func (r *Registry) Keys() []KeyInfo {
	entries := r.Entries()
	out := make([]KeyInfo, len(entries))
	for i, e := range entries {
		out[i] = KeyInfo{Key: e.Key, Type: e.Type}
	}
	return out
}

// RemovePlayerPref removes the entry at a flat index of Keys. The persisted
// key is left for the caller to delete. An index outside the listing is
// logged and ignored.
func (r *Registry) RemovePlayerPref(index int) bool {
	if index < 0 || index >= r.Len() {
		r.log.Warnf("Could not remove preference %d: index out of range (%d entries)", index, r.Len())
		return false
	}
	for _, part := range []*[]Entry{&r.floats, &r.ints, &r.texts} {
		if index < len(*part) {
			*part = append((*part)[:index], (*part)[index+1:]...)
			return true
		}
		index -= len(*part)
	}
	return false
}

// ApplyDefaultsToControls pushes every persisted value, or the entry default
// when the key is absent, into its control.
func (r *Registry) ApplyDefaultsToControls() {
	for _, e := range r.Entries() {
		r.writeControl(e, prefs.Get(r.store, e.Key, e.Type, e.Default))
	}
}

// SaveAll rewrites the store from the live controls: everything is deleted
// first, so keys not tracked here are lost. The store is flushed at the end.
func (r *Registry) SaveAll() error {
	r.store.DeleteAll()
	for _, e := range r.Entries() {
		if err := prefs.Set(r.store, e.Key, r.readControl(e)); err != nil {
			r.log.Warnf("Could not save %q: %v", e.Key, err)
		}
	}
	if err := r.store.Save(); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// ClearAll deletes every persisted key and empties the registry.
func (r *Registry) ClearAll() error {
	r.store.DeleteAll()
	r.floats, r.ints, r.texts = nil, nil, nil
	if err := r.store.Save(); err != nil {
		return fmt.Errorf("clear preferences: %w", err)
	}
	return nil
}

// Value reads the live value of the control bound to key.
func (r *Registry) Value(key string) (prefs.Value, bool) {
	e, ok := r.Entry(key)
	if !ok {
		return prefs.Value{}, false
	}
	return r.readControl(e), true
}

func (r *Registry) readControl(e Entry) prefs.Value {
	switch e.Kind {
	case controls.KindDropdown:
		return prefs.IntValue(e.Control.(controls.Dropdown).SelectedIndex())
	case controls.KindSlider:
		v := e.Control.(controls.Slider).Value()
		if e.Type == prefs.Int {
			return prefs.IntValue(int(math.Round(v)))
		}
		return prefs.FloatValue(v)
	case controls.KindToggle:
		if e.Control.(controls.Toggle).IsOn() {
			return prefs.IntValue(config.Settings.ToggleOn)
		}
		return prefs.IntValue(config.Settings.ToggleOff)
	case controls.KindInputField:
		v, err := prefs.ParseValue(e.Type, e.Control.(controls.InputField).Text())
		if err != nil {
			r.log.Warnf("Input for %q is not a valid %s, keeping default: %v", e.Key, e.Type, err)
			return e.Default
		}
		return v
	default:
		r.log.Warnf("Control type not recognized for %q", e.Key)
		return e.Default
	}
}

func (r *Registry) writeControl(e Entry, v prefs.Value) {
	switch e.Kind {
	case controls.KindDropdown:
		e.Control.(controls.Dropdown).SetSelectedIndex(v.Int())
	case controls.KindSlider:
		e.Control.(controls.Slider).SetValue(v.Float())
	case controls.KindToggle:
		e.Control.(controls.Toggle).SetOn(v.Int() == config.Settings.ToggleOn)
	case controls.KindInputField:
		e.Control.(controls.InputField).SetText(v.Text())
	default:
		r.log.Warnf("Control type not recognized for %q", e.Key)
	}
}
