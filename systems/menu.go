package systems

import (
	"github.com/comereal/gamejamtoolkit/components"
	"github.com/comereal/gamejamtoolkit/logger"
	"github.com/comereal/gamejamtoolkit/panel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var menuLog = logger.New("menu")

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(sceneIndex int)
}

// NewUpdateMenus advances credits and audio by one tick and hands pending
// scene and quit requests to the caller.
func NewUpdateMenus(sceneChanger SceneChanger, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		tps := ebiten.TPS()
		if tps <= 0 {
			tps = ebiten.DefaultTPS
		}
		dt := 1 / float64(tps)
		UpdateCreditsScroll(e, dt)
		UpdateAudio(e, dt)

		if scene, ok := TakeSceneRequest(e); ok && sceneChanger != nil {
			FadeOutMusic(e)
			sceneChanger.ChangeScene(scene)
		}
		if GetOrCreateMenu(e).QuitRequested && quit != nil {
			quit()
		}
	}
}

// CreatePanels spawns one entity per panel. With no ids all four panels
// are created; the main menu starts visible.
func CreatePanels(e *ecs.ECS, ids ...components.PanelID) {
	if len(ids) == 0 {
		ids = []components.PanelID{
			components.PanelMainMenu,
			components.PanelCredits,
			components.PanelSettings,
			components.PanelLoadGame,
		}
	}
	for _, id := range ids {
		if _, ok := findPanel(e, id); ok {
			continue
		}
		ent := e.World.Entry(e.World.Create(components.Panel))
		components.Panel.SetValue(ent, components.PanelData{ID: id, Visible: id == components.PanelMainMenu})
	}
}

func findPanel(e *ecs.ECS, id components.PanelID) (*components.PanelData, bool) {
	var found *components.PanelData
	components.Panel.Each(e.World, func(entry *donburi.Entry) {
		if p := components.Panel.Get(entry); p.ID == id && found == nil {
			found = p
		}
	})
	return found, found != nil
}

// showPanel makes target the only visible panel. Missing panels are skipped.
func showPanel(e *ecs.ECS, target components.PanelID) {
	components.Panel.Each(e.World, func(entry *donburi.Entry) {
		p := components.Panel.Get(entry)
		p.Visible = p.ID == target
	})
}

// IsPanelVisible reports whether the panel exists and is shown.
func IsPanelVisible(e *ecs.ECS, id components.PanelID) bool {
	p, ok := findPanel(e, id)
	return ok && p.Visible
}

// VisiblePanel returns the shown panel, if any.
func VisiblePanel(e *ecs.ECS) (components.PanelID, bool) {
	for _, id := range []components.PanelID{
		components.PanelMainMenu,
		components.PanelCredits,
		components.PanelSettings,
		components.PanelLoadGame,
	} {
		if IsPanelVisible(e, id) {
			return id, true
		}
	}
	return 0, false
}

// OpenSettings loads stored values into the settings controls and shows
// the settings panel.
func OpenSettings(e *ecs.ECS) {
	if s := GetOrCreateSettingsMenu(e); s.Registry != nil {
		s.Registry.ApplyDefaultsToControls()
	}
	showPanel(e, components.PanelSettings)
}

// OpenCredits shows the credits panel and restarts the scroll.
func OpenCredits(e *ecs.ECS) {
	ResetCredits(e)
	showPanel(e, components.PanelCredits)
}

// OpenLoadMenu refreshes the save slot list and shows the load panel.
func OpenLoadMenu(e *ecs.ECS) {
	RefreshSaveSlots(e)
	showPanel(e, components.PanelLoadGame)
}

// BackButton returns to the main menu, saving settings when leaving the
// settings panel.
func BackButton(e *ecs.ECS) {
	if IsPanelVisible(e, components.PanelSettings) {
		if s := GetOrCreateSettingsMenu(e); s.Registry != nil {
			if err := s.Registry.SaveAll(); err != nil {
				menuLog.Warnf("Could not save settings: %v", err)
			}
			ApplyAudioSettings(e)
		}
	}
	showPanel(e, components.PanelMainMenu)
}

// Play requests a change to the given scene.
func Play(e *ecs.ECS, sceneIndex int) {
	menu := GetOrCreateMenu(e)
	menu.SceneRequested = true
	menu.Scene = sceneIndex
}

// QuitGame requests the application to exit.
func QuitGame(e *ecs.ECS) {
	GetOrCreateMenu(e).QuitRequested = true
}

// TakeSceneRequest returns and clears a pending scene request.
func TakeSceneRequest(e *ecs.ECS) (int, bool) {
	menu := GetOrCreateMenu(e)
	if !menu.SceneRequested {
		return 0, false
	}
	menu.SceneRequested = false
	return menu.Scene, true
}

// PressMainMenuButton runs the action behind a main-menu button.
func PressMainMenuButton(e *ecs.ECS, b panel.ButtonDefinition) {
	PlaySFX(e, SoundMenuSelect)
	switch b.Type {
	case panel.ButtonPlay, panel.ButtonNewGame:
		Play(e, b.Scene)
	case panel.ButtonSettings:
		OpenSettings(e)
	case panel.ButtonCredits:
		OpenCredits(e)
	case panel.ButtonLoadGame:
		OpenLoadMenu(e)
	case panel.ButtonQuit:
		QuitGame(e)
	}
}

// SetMainMenu installs the main menu definition and recomputes the
// visible buttons.
func SetMainMenu(e *ecs.ECS, def panel.MainMenuDefinition) {
	def.Normalize()
	menu := GetOrCreateMenu(e)
	menu.Definition = def
	RefreshMainMenu(e)
}

// RefreshMainMenu hides Load Game while there is no save to load.
func RefreshMainMenu(e *ecs.ECS) {
	menu := GetOrCreateMenu(e)
	menu.HasSaveGame = false
	if lm := GetOrCreateLoadMenu(e); lm.Saves != nil {
		menu.HasSaveGame = lm.Saves.HasSaveGame()
	}

	menu.VisibleButtons = menu.VisibleButtons[:0]
	for _, b := range menu.Definition.Buttons {
		if b.Type == panel.ButtonLoadGame && !menu.HasSaveGame {
			continue
		}
		menu.VisibleButtons = append(menu.VisibleButtons, b)
	}
	if menu.SelectedIndex >= len(menu.VisibleButtons) {
		menu.SelectedIndex = 0
	}
}

// NavigateMenu moves the main-menu selection by delta with wrap-around.
func NavigateMenu(e *ecs.ECS, delta int) {
	menu := GetOrCreateMenu(e)
	n := len(menu.VisibleButtons)
	if n == 0 {
		return
	}
	PlaySFX(e, SoundMenuNavigate)
	menu.SelectedIndex = ((menu.SelectedIndex+delta)%n + n) % n
}

// SelectMenuButton presses the selected main-menu button.
func SelectMenuButton(e *ecs.ECS) {
	menu := GetOrCreateMenu(e)
	if menu.SelectedIndex < len(menu.VisibleButtons) {
		PressMainMenuButton(e, menu.VisibleButtons[menu.SelectedIndex])
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
