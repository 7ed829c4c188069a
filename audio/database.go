// Package audio keys clips by name and plays them through pluggable sources.
package audio

import (
	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/controls"
	"github.com/comereal/gamejamtoolkit/logger"
)

// Clip is decoded audio ready for playback.
type Clip struct {
	Name   string
	Length float64 // seconds
	Data   []byte  // 16-bit stereo PCM at the backend sample rate
}

// KeyedClip is one row of the database.
type KeyedClip struct {
	Key  string
	Clip *Clip
}

// ClipDatabase is an ordered list of keyed clips plus the shared volume
// levels. The lookup index is rebuilt on every change.
type ClipDatabase struct {
	clips []KeyedClip
	index map[string]*Clip
	log   logger.Logger

	master float64
	music  float64
	sfx    float64
}

// NewClipDatabase creates an empty database with the default volumes.
func NewClipDatabase(log logger.Logger) *ClipDatabase {
	if log == nil {
		log = logger.Nop()
	}
	return &ClipDatabase{
		index:  make(map[string]*Clip),
		log:    log,
		master: config.Audio.DefaultMasterVol,
		music:  config.Audio.DefaultMusicVol,
		sfx:    config.Audio.DefaultSFXVol,
	}
}

// Add appends clip under its own name unless the clip is already listed.
func (d *ClipDatabase) Add(clip *Clip) {
	if clip == nil {
		return
	}
	for _, c := range d.clips {
		if c.Clip == clip {
			return
		}
	}
	d.clips = append(d.clips, KeyedClip{Key: clip.Name, Clip: clip})
	d.Refresh()
}

// AddKeyed appends clip under key unless that exact pair is already listed.
func (d *ClipDatabase) AddKeyed(key string, clip *Clip) {
	if clip == nil {
		return
	}
	for _, c := range d.clips {
		if c.Clip == clip && c.Key == key {
			return
		}
	}
	d.clips = append(d.clips, KeyedClip{Key: key, Clip: clip})
	d.Refresh()
}

// Remove drops the first row with the given key.
func (d *ClipDatabase) Remove(key string) bool {
	for i, c := range d.clips {
		if c.Key == key {
			d.clips = append(d.clips[:i], d.clips[i+1:]...)
			d.Refresh()
			return true
		}
	}
	return false
}

// Refresh names unkeyed clips after the clip and rebuilds the index. Rows
// whose key is already taken are removed.
func (d *ClipDatabase) Refresh() {
	clear(d.index)
	kept := d.clips[:0]
	for _, c := range d.clips {
		if c.Key == "" && c.Clip != nil {
			c.Key = c.Clip.Name
		}
		if _, dup := d.index[c.Key]; dup {
			d.log.Warnf("Duplicate clip key %q found in clip list, removing", c.Key)
			continue
		}
		d.index[c.Key] = c.Clip
		kept = append(kept, c)
	}
	d.clips = kept
}

// TryGet looks up a clip by key.
func (d *ClipDatabase) TryGet(key string) (*Clip, bool) {
	c, ok := d.index[key]
	return c, ok && c != nil
}

// Clips returns a copy of the rows in order.
func (d *ClipDatabase) Clips() []KeyedClip {
	return append([]KeyedClip(nil), d.clips...)
}

// Keys returns every key in list order.
func (d *ClipDatabase) Keys() []string {
	return d.KeysWhere(func(string) bool { return true })
}

// KeysWhere returns the keys accepted by pred, in list order.
func (d *ClipDatabase) KeysWhere(pred func(string) bool) []string {
	keys := make([]string, 0, len(d.clips))
	for _, c := range d.clips {
		if pred(c.Key) {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

func (d *ClipDatabase) MasterVolume() float64 { return d.master }
func (d *ClipDatabase) MusicVolume() float64  { return d.music }
func (d *ClipDatabase) SFXVolume() float64    { return d.sfx }

func (d *ClipDatabase) SetMasterVolume(v float64) { d.master = controls.ClampFloat(v, 0, 1) }
func (d *ClipDatabase) SetMusicVolume(v float64)  { d.music = controls.ClampFloat(v, 0, 1) }
func (d *ClipDatabase) SetSFXVolume(v float64)    { d.sfx = controls.ClampFloat(v, 0, 1) }

// EffectiveMusic is the volume a source uses while playing music.
func (d *ClipDatabase) EffectiveMusic() float64 { return d.master * d.music }

// EffectiveSFX is the volume a source uses for one-shots.
func (d *ClipDatabase) EffectiveSFX() float64 { return d.master * d.sfx }
