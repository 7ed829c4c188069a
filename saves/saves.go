// Package saves keeps game save slots for the Load Game panel.
package saves

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/logger"
	"github.com/comereal/gamejamtoolkit/prefs"
)

var ErrNotFound = errors.New("save slot not found")

// Slot is one saved game.
type Slot struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Scene   int               `json:"scene"`
	SavedAt time.Time         `json:"savedAt"`
	Data    map[string]string `json:"data,omitempty"`
}

// Manager stores every slot as one JSON item.
type Manager struct {
	items   prefs.ItemStore
	itemKey string
	log     logger.Logger
	now     func() time.Time
}

// NewManager uses config.Settings.SavesItemKey when itemKey is empty.
func NewManager(items prefs.ItemStore, itemKey string, log logger.Logger) *Manager {
	if itemKey == "" {
		itemKey = config.Settings.SavesItemKey
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{items: items, itemKey: itemKey, log: log, now: time.Now}
}

// Create stores a new slot and returns it.
func (m *Manager) Create(name string, scene int, data map[string]string) (Slot, error) {
	slots, err := m.read()
	if err != nil {
		return Slot{}, err
	}
	slot := Slot{
		ID:      uuid.NewString(),
		Name:    name,
		Scene:   scene,
		SavedAt: m.now().UTC(),
		Data:    data,
	}
	slots = append(slots, slot)
	if err := m.write(slots); err != nil {
		return Slot{}, err
	}
	m.log.Debugf("Created save slot %s (%s)", slot.ID, name)
	return slot, nil
}

// List returns every slot, newest first.
func (m *Manager) List() ([]Slot, error) {
	slots, err := m.read()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].SavedAt.After(slots[j].SavedAt) })
	return slots, nil
}

// Load returns the slot with the given id.
func (m *Manager) Load(id string) (Slot, error) {
	slots, err := m.read()
	if err != nil {
		return Slot{}, err
	}
	for _, s := range slots {
		if s.ID == id {
			return s, nil
		}
	}
	return Slot{}, fmt.Errorf("%s: %w", id, ErrNotFound)
}

// Delete removes the slot with the given id. Removing the last slot clears
// the item.
func (m *Manager) Delete(id string) error {
	slots, err := m.read()
	if err != nil {
		return err
	}
	for i, s := range slots {
		if s.ID != id {
			continue
		}
		slots = append(slots[:i], slots[i+1:]...)
		if len(slots) == 0 {
			// Save empty/nil data to clear the item
			if err := m.items.SaveItem(m.itemKey, nil); err != nil {
				return fmt.Errorf("clear %s: %w", m.itemKey, err)
			}
			return nil
		}
		return m.write(slots)
	}
	return fmt.Errorf("%s: %w", id, ErrNotFound)
}

// HasSaveGame reports whether at least one slot exists. Read failures count
// as no save.
func (m *Manager) HasSaveGame() bool {
	slots, err := m.read()
	if err != nil {
		m.log.Warnf("Could not load save slots: %v", err)
		return false
	}
	return len(slots) > 0
}

func (m *Manager) read() ([]Slot, error) {
	data, err := m.items.LoadItem(m.itemKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", m.itemKey, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var slots []Slot
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("parse %s: %w", m.itemKey, err)
	}
	return slots, nil
}

func (m *Manager) write(slots []Slot) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("serialize save slots: %w", err)
	}
	if err := m.items.SaveItem(m.itemKey, data); err != nil {
		return fmt.Errorf("save %s: %w", m.itemKey, err)
	}
	return nil
}
