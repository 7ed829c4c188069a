package config

// SettingsMenuConfig contains settings panel defaults
type SettingsMenuConfig struct {
	AppName            string
	PrefsItemKey       string // gdata item holding the preference document
	SavesItemKey       string
	DefaultKey         string
	DefaultDisplayText string
	DefaultTitle       string
	ToggleOff          int
	ToggleOn           int
}

// Settings is the global settings panel configuration
var Settings SettingsMenuConfig

func init() {
	Settings = SettingsMenuConfig{
		AppName:            "gamejamtoolkit",
		PrefsItemKey:       "playerprefs",
		SavesItemKey:       "saves",
		DefaultKey:         "defaultKey",
		DefaultDisplayText: "Setting",
		DefaultTitle:       "Settings",
		ToggleOff:          0,
		ToggleOn:           1,
	}
}
