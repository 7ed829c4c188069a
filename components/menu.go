package components

import (
	"github.com/comereal/gamejamtoolkit/panel"
	"github.com/comereal/gamejamtoolkit/saves"
	"github.com/yohamta/donburi"
)

// PanelID names one of the menu panels
type PanelID int

const (
	PanelMainMenu PanelID = iota
	PanelCredits
	PanelSettings
	PanelLoadGame
)

func (p PanelID) String() string {
	switch p {
	case PanelMainMenu:
		return "MainMenu"
	case PanelCredits:
		return "Credits"
	case PanelSettings:
		return "Settings"
	case PanelLoadGame:
		return "LoadGame"
	default:
		return "Unknown"
	}
}

// PanelData is attached to one entity per menu panel
type PanelData struct {
	ID      PanelID
	Visible bool
}

var Panel = donburi.NewComponentType[PanelData]()

// MenuData stores the current state of the main menu
type MenuData struct {
	Definition     panel.MainMenuDefinition
	VisibleButtons []panel.ButtonDefinition // LoadGame hidden without a save
	SelectedIndex  int
	HasSaveGame    bool

	SceneRequested bool // set by Play/New Game, cleared by TakeSceneRequest
	Scene          int
	QuitRequested  bool
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()

// LoadMenuData backs the Load Game panel
type LoadMenuData struct {
	Saves *saves.Manager
	Slots []saves.Slot
}

var LoadMenu = donburi.NewComponentType[LoadMenuData]()
