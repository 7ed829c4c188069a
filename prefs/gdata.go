package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/comereal/gamejamtoolkit/config"
	"github.com/quasilyte/gdata"
)

// ItemStore is the subset of *gdata.Manager the store needs.
type ItemStore interface {
	SaveItem(itemKey string, data []byte) error
	LoadItem(itemKey string) ([]byte, error)
}

// GdataStore flushes the whole preference set as one JSON item in the
// platform save-data directory.
type GdataStore struct {
	*MemoryStore
	items   ItemStore
	itemKey string
}

type storedValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// OpenGdataItems opens the gdata manager for appName.
func OpenGdataItems(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata: %w", err)
	}
	return m, nil
}

// OpenGdataStore opens the save-data directory for appName and loads any
// previously flushed preferences.
func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := OpenGdataItems(appName)
	if err != nil {
		return nil, err
	}
	return NewGdataStore(m, config.Settings.PrefsItemKey)
}

// NewGdataStore loads the preference item itemKey from items.
func NewGdataStore(items ItemStore, itemKey string) (*GdataStore, error) {
	s := &GdataStore{MemoryStore: NewMemoryStore(), items: items, itemKey: itemKey}
	data, err := items.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", itemKey, err)
	}
	if len(data) == 0 {
		// Nothing flushed yet
		return s, nil
	}
	values, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", itemKey, err)
	}
	s.replace(values)
	return s, nil
}

// Save writes the current preferences as a single item.
func (s *GdataStore) Save() error {
	data, err := encodeDocument(s.snapshot())
	if err != nil {
		return fmt.Errorf("serialize preferences: %w", err)
	}
	if err := s.items.SaveItem(s.itemKey, data); err != nil {
		return fmt.Errorf("save %s: %w", s.itemKey, err)
	}
	return nil
}

func encodeDocument(values map[string]Value) ([]byte, error) {
	doc := make(map[string]storedValue, len(values))
	for k, v := range values {
		doc[k] = storedValue{Type: v.Type().String(), Value: v.Text()}
	}
	return json.Marshal(doc)
}

func decodeDocument(data []byte) (map[string]Value, error) {
	var doc map[string]storedValue
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	values := make(map[string]Value, len(doc))
	for k, sv := range doc {
		t, err := ParseDataType(sv.Type)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		v, err := ParseValue(t, sv.Value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		values[k] = v
	}
	return values, nil
}

// MemoryItems is an ItemStore kept in process memory. Saving nil data
// removes the item, as with gdata.
type MemoryItems struct {
	items map[string][]byte
}

func NewMemoryItems() *MemoryItems {
	return &MemoryItems{items: make(map[string][]byte)}
}

func (m *MemoryItems) SaveItem(itemKey string, data []byte) error {
	if data == nil {
		delete(m.items, itemKey)
		return nil
	}
	m.items[itemKey] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryItems) LoadItem(itemKey string) ([]byte, error) {
	return m.items[itemKey], nil
}
