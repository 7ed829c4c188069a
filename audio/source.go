package audio

import (
	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/controls"
)

// Source plays one clip at a time plus overlapping one-shots.
type Source interface {
	// Play starts clip at from seconds, replacing whatever was playing.
	Play(clip *Clip, loop bool, from float64) error
	PlayOneShot(clip *Clip) error
	Pause()
	Resume()
	Stop()
	SetVolume(v float64)
	Volume() float64
	SetPitch(p float64)
	Pitch() float64
	Position() float64
	IsPlaying() bool
}

// ClampPitch limits p to the supported pitch range.
func ClampPitch(p float64) float64 {
	return controls.ClampFloat(p, config.Audio.MinPitch, config.Audio.MaxPitch)
}

// scheduled is a playback waiting for its delay to run out.
type scheduled struct {
	src   Source
	clip  *Clip
	loop  bool
	start float64
	wait  float64
}

// advance counts down pending playbacks and starts the ones that are due.
func advance(pending []scheduled, dt float64) ([]scheduled, error) {
	var firstErr error
	kept := pending[:0]
	for _, p := range pending {
		p.wait -= dt
		if p.wait > 0 {
			kept = append(kept, p)
			continue
		}
		if err := p.src.Play(p.clip, p.loop, p.start); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return kept, firstErr
}

// cancel drops pending playbacks on src.
func cancel(pending []scheduled, src Source) []scheduled {
	kept := pending[:0]
	for _, p := range pending {
		if p.src != src {
			kept = append(kept, p)
		}
	}
	return kept
}
