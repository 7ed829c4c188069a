package prefs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/comereal/gamejamtoolkit/config"
)

var (
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Store is a typed key-value preference store. Writes are visible
// immediately; Save flushes them to the backing medium.
type Store interface {
	GetInt(key string, def int) int
	GetFloat(key string, def float64) float64
	GetString(key string, def string) string
	SetInt(key string, v int)
	SetFloat(key string, v float64)
	SetString(key string, v string)
	HasKey(key string) bool
	DeleteKey(key string)
	DeleteAll()
	Keys() []string
	Save() error
}

// Get reads key as type t, falling back to def when the key is absent.
func Get(s Store, key string, t DataType, def Value) Value {
	if def.Type() != t {
		def, _ = def.Convert(t)
	}
	switch t {
	case Int:
		return IntValue(s.GetInt(key, def.Int()))
	case Float:
		return FloatValue(s.GetFloat(key, def.Float()))
	case String:
		return StringValue(s.GetString(key, def.Text()))
	default:
		return Value{}
	}
}

// Set writes v under key using the setter matching its type.
func Set(s Store, key string, v Value) error {
	switch v.Type() {
	case Int:
		s.SetInt(key, v.Int())
	case Float:
		s.SetFloat(key, v.Float())
	case String:
		s.SetString(key, v.Text())
	default:
		return fmt.Errorf("set %q: %w", key, ErrTypeMismatch)
	}
	return nil
}

// Lookup returns the stored value of key regardless of its type.
func Lookup(s Store, key string) (Value, bool) {
	if t, ok := s.(interface{ Lookup(string) (Value, bool) }); ok {
		return t.Lookup(key)
	}
	if !s.HasKey(key) {
		return Value{}, false
	}
	return StringValue(s.GetString(key, "")), true
}

// Open creates the store selected by cfg.
func Open(cfg config.StoreConfig, appName string) (Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case "memory":
		return NewMemoryStore(), nil
	case "gdata", "":
		return OpenGdataStore(appName)
	case "sqlite":
		return OpenSQLiteStore(cfg.Path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
}
