package systems

import (
	"github.com/comereal/gamejamtoolkit/audio"
	"github.com/comereal/gamejamtoolkit/components"
	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/logger"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Clip keys the menu systems play when present in the database.
const (
	SoundMenuNavigate = "menu_navigate"
	SoundMenuSelect   = "menu_select"
)

// NewAudioManager applies the configured volumes to db and builds a pooled
// manager around the camera source.
func NewAudioManager(cfg config.VolumeConfig, db *audio.ClipDatabase, camera audio.Source, factory audio.SourceFactory) *audio.PooledManager {
	db.SetMasterVolume(cfg.Master)
	db.SetMusicVolume(cfg.Music)
	db.SetSFXVolume(cfg.SFX)
	return audio.NewPooledManager(db, camera, factory, cfg.PoolSize, logger.New("audio"))
}

// InitAudio attaches the audio manager to the world and applies any stored
// volume settings.
func InitAudio(e *ecs.ECS, m *audio.PooledManager) {
	GetOrCreateAudio(e).Manager = m
	ApplyAudioSettings(e)
}

// ApplyAudioSettings copies the master, music and SFX volume preferences
// into the clip database when they are stored.
func ApplyAudioSettings(e *ecs.ECS) {
	a := GetOrCreateAudio(e)
	s := GetOrCreateSettingsMenu(e)
	if a.Manager == nil || s.Registry == nil {
		return
	}
	store := s.Registry.Store()
	db := a.Manager.Database()

	if v, ok := storedVolume(store, config.AudioKeys.Master); ok {
		db.SetMasterVolume(v)
	}
	if v, ok := storedVolume(store, config.AudioKeys.Music); ok {
		db.SetMusicVolume(v)
	}
	if v, ok := storedVolume(store, config.AudioKeys.SFX); ok {
		db.SetSFXVolume(v)
	}
	if a.Fade == nil {
		a.Manager.ApplyVolumes()
	}
}

// PlaySFX plays a one-shot on the camera source
func PlaySFX(e *ecs.ECS, key string) {
	if a := GetOrCreateAudio(e); a.Manager != nil {
		a.Manager.TryPlayOneShot(key)
	}
}

// PlayMusic starts looping music unless it is already playing
func PlayMusic(e *ecs.ECS, key string) {
	a := GetOrCreateAudio(e)
	if a.Manager == nil || (a.CurrentMusicKey == key && a.Fade == nil) {
		return
	}
	if a.Manager.TryPlayMusic(key, true, false) {
		a.CurrentMusicKey = key
		a.Fade = nil
		a.Manager.ApplyVolumes()
	}
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	a := GetOrCreateAudio(e)
	if a.Manager == nil || a.CurrentMusicKey == "" {
		return
	}
	start := a.Manager.Camera().Volume()
	a.Fade = gween.New(float32(start), 0, float32(config.Audio.MusicFadeDuration), ease.Linear)
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	a := GetOrCreateAudio(e)
	if a.Manager == nil {
		return
	}
	a.Manager.Camera().Stop()
	a.CurrentMusicKey = ""
	a.Fade = nil
	a.Manager.ApplyVolumes()
}

// UpdateAudio advances the fade and pooled sources by dt seconds
func UpdateAudio(e *ecs.ECS, dt float64) {
	a := GetOrCreateAudio(e)
	if a.Manager == nil {
		return
	}
	if a.Fade != nil {
		v, done := a.Fade.Update(float32(dt))
		a.Manager.Camera().SetVolume(float64(v))
		if done {
			StopMusic(e)
		}
	}
	a.Manager.Update(dt)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{})
	}
	return components.Audio.Get(entry)
}
