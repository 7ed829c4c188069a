package components

import (
	"github.com/comereal/gamejamtoolkit/audio"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Manager         *audio.PooledManager
	CurrentMusicKey string
	Fade            *gween.Tween // music fade out, nil when idle
}

var Audio = donburi.NewComponentType[AudioData]()
