package components

import (
	"github.com/comereal/gamejamtoolkit/panel"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CreditsData stores the credits scroll state
type CreditsData struct {
	Definition panel.CreditsDefinition
	Offset     float64

	StartDelay *gween.Tween // runs before scrolling starts
	BackDelay  *gween.Tween // runs after scrolling ends
	Scrolling  bool
	Finished   bool
	ShowBack   bool
}

var Credits = donburi.NewComponentType[CreditsData]()
