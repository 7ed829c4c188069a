package components

import (
	"github.com/comereal/gamejamtoolkit/panel"
	"github.com/comereal/gamejamtoolkit/settings"
	"github.com/yohamta/donburi"
)

// SettingsMenuData stores the live settings panel and its registry
type SettingsMenuData struct {
	Registry *settings.Registry
	Panel    *panel.SettingsPanel
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
