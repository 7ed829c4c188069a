package systems

import (
	"fmt"

	"github.com/comereal/gamejamtoolkit/components"
	"github.com/comereal/gamejamtoolkit/controls"
	"github.com/comereal/gamejamtoolkit/logger"
	"github.com/comereal/gamejamtoolkit/panel"
	"github.com/comereal/gamejamtoolkit/prefs"
	"github.com/comereal/gamejamtoolkit/settings"
	"github.com/yohamta/donburi/ecs"
)

// InstallSettings builds def against store and attaches the resulting
// registry and panel to the world. The panel's Back button navigates back.
func InstallSettings(e *ecs.ECS, store prefs.Store, def panel.SettingsDefinition) (*panel.SettingsPanel, error) {
	reg := settings.New(store, logger.New("settings"))
	p, err := def.Build(reg, menuLog)
	if err != nil {
		return nil, fmt.Errorf("install settings: %w", err)
	}
	for _, c := range p.Controls {
		// Settings panels only carry back buttons
		if b, ok := c.Widget.(*controls.ButtonWidget); ok {
			b.OnClick(func() { BackButton(e) })
		}
	}

	s := GetOrCreateSettingsMenu(e)
	s.Registry = reg
	s.Panel = p
	ApplyAudioSettings(e)
	return p, nil
}

// IsSettingsOpen returns true if the settings panel is showing
func IsSettingsOpen(e *ecs.ECS) bool {
	return IsPanelVisible(e, components.PanelSettings)
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))
		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}
