package systems

import (
	"github.com/comereal/gamejamtoolkit/components"
	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/panel"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SetCredits installs the credits definition and resets the scroll.
func SetCredits(e *ecs.ECS, def panel.CreditsDefinition) {
	def.Normalize()
	GetOrCreateCredits(e).Definition = def
	ResetCredits(e)
}

// ResetCredits rewinds the scroll to the start delay.
func ResetCredits(e *ecs.ECS) {
	c := GetOrCreateCredits(e)
	c.Offset = 0
	c.Scrolling = false
	c.Finished = false
	c.ShowBack = false
	c.StartDelay = gween.New(0, 1, float32(config.Credits.StartDelay), ease.Linear)
	c.BackDelay = gween.New(0, 1, float32(config.Credits.BackButtonDelay), ease.Linear)
}

// UpdateCreditsScroll advances the credits by dt seconds while the credits
// panel is showing. The offset grows at the scroll speed once the start
// delay has run; past the scroll end scrolling stops and the back button
// shows after its own delay.
func UpdateCreditsScroll(e *ecs.ECS, dt float64) {
	if !IsPanelVisible(e, components.PanelCredits) {
		return
	}
	c := GetOrCreateCredits(e)
	if c.StartDelay == nil {
		ResetCredits(e)
	}

	switch {
	case c.Finished:
		if !c.ShowBack {
			if _, done := c.BackDelay.Update(float32(dt)); done {
				c.ShowBack = true
			}
		}
	case !c.Scrolling:
		if _, done := c.StartDelay.Update(float32(dt)); done {
			c.Scrolling = true
		}
	default:
		c.Offset += c.Definition.ScrollSpeed * dt
		if c.Offset > c.Definition.ScrollEnd {
			c.Scrolling = false
			c.Finished = true
		}
	}
}

// GetOrCreateCredits returns the singleton Credits component
func GetOrCreateCredits(e *ecs.ECS) *components.CreditsData {
	if _, ok := components.Credits.First(e.World); !ok {
		def := panel.CreditsDefinition{}
		def.Normalize()
		ent := e.World.Entry(e.World.Create(components.Credits))
		components.Credits.SetValue(ent, components.CreditsData{Definition: def})
	}

	ent, _ := components.Credits.First(e.World)
	return components.Credits.Get(ent)
}
