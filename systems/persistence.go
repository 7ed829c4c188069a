package systems

import (
	"fmt"
	"io"
	"strings"

	"github.com/comereal/gamejamtoolkit/components"
	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/logger"
	"github.com/comereal/gamejamtoolkit/prefs"
	"github.com/comereal/gamejamtoolkit/saves"
	"github.com/yohamta/donburi/ecs"
)

// Persistence groups the preference store and the save slots.
type Persistence struct {
	Prefs prefs.Store
	Saves *saves.Manager
}

// OpenPersistence opens the configured preference backend. Save slots go
// to the same place: the sqlite database, the gdata directory or memory.
func OpenPersistence(cfg *config.Config) (*Persistence, error) {
	store, err := prefs.Open(cfg.Store, cfg.AppName)
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}

	var items prefs.ItemStore
	if is, ok := store.(prefs.ItemStore); ok {
		items = is
	} else if strings.EqualFold(cfg.Store.Backend, "memory") {
		items = prefs.NewMemoryItems()
	} else {
		m, err := prefs.OpenGdataItems(cfg.AppName)
		if err != nil {
			return nil, err
		}
		items = m
	}
	return &Persistence{
		Prefs: store,
		Saves: saves.NewManager(items, config.Settings.SavesItemKey, logger.New("saves")),
	}, nil
}

// Close flushes pending preferences and releases the store.
func (p *Persistence) Close() error {
	err := p.Prefs.Save()
	if c, ok := p.Prefs.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// InitPersistence attaches the save slots to the world.
func InitPersistence(e *ecs.ECS, p *Persistence) {
	GetOrCreateLoadMenu(e).Saves = p.Saves
	RefreshMainMenu(e)
}

// RefreshSaveSlots reloads the slot list shown by the load panel.
func RefreshSaveSlots(e *ecs.ECS) {
	lm := GetOrCreateLoadMenu(e)
	if lm.Saves == nil {
		lm.Slots = nil
		return
	}
	slots, err := lm.Saves.List()
	if err != nil {
		menuLog.Warnf("Could not load save slots: %v", err)
		slots = nil
	}
	lm.Slots = slots
}

// storedVolume reads a 0..1 volume preference. Int values are percentages.
func storedVolume(store prefs.Store, key string) (float64, bool) {
	v, ok := prefs.Lookup(store, key)
	if !ok {
		return 0, false
	}
	switch v.Type() {
	case prefs.Float:
		return v.Float(), true
	case prefs.Int:
		return float64(v.Int()) / 100, true
	default:
		return 0, false
	}
}

// GetOrCreateLoadMenu returns the singleton LoadMenu component
func GetOrCreateLoadMenu(e *ecs.ECS) *components.LoadMenuData {
	if _, ok := components.LoadMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LoadMenu))
		components.LoadMenu.SetValue(ent, components.LoadMenuData{})
	}

	ent, _ := components.LoadMenu.First(e.World)
	return components.LoadMenu.Get(ent)
}
