package audio

import "github.com/comereal/gamejamtoolkit/logger"

// SimpleManager drives a single Source from a ClipDatabase.
type SimpleManager struct {
	db      *ClipDatabase
	src     Source
	log     logger.Logger
	pending []scheduled
}

func NewSimpleManager(db *ClipDatabase, src Source, log logger.Logger) *SimpleManager {
	if log == nil {
		log = logger.Nop()
	}
	return &SimpleManager{db: db, src: src, log: log}
}

func (m *SimpleManager) Database() *ClipDatabase { return m.db }
func (m *SimpleManager) Source() Source          { return m.src }

// TryPlayOneShot plays key at the SFX volume, then restores the music volume.
func (m *SimpleManager) TryPlayOneShot(key string) bool {
	clip, ok := m.db.TryGet(key)
	if !ok {
		return false
	}
	m.src.SetVolume(m.db.EffectiveSFX())
	if err := m.src.PlayOneShot(clip); err != nil {
		m.log.Warnf("Could not play %s: %v", key, err)
	}
	m.src.SetVolume(m.db.EffectiveMusic())
	return true
}

// TryPlayMusic switches to key. With resume the new clip starts where the
// old one was.
func (m *SimpleManager) TryPlayMusic(key string, loop, resume bool) bool {
	start := 0.0
	if resume {
		start = m.src.Position()
	}
	return m.TryPlayMusicAt(key, loop, start)
}

// TryPlayMusicAt switches to key starting at start seconds.
func (m *SimpleManager) TryPlayMusicAt(key string, loop bool, start float64) bool {
	clip, ok := m.db.TryGet(key)
	if !ok {
		return false
	}
	m.src.Stop()
	m.pending = cancel(m.pending, m.src)
	if err := m.src.Play(clip, loop, start); err != nil {
		m.log.Warnf("Could not play %s: %v", key, err)
	}
	return true
}

// TryPlayMusicDelayed stops the current clip and starts key after delay
// seconds of Update.
func (m *SimpleManager) TryPlayMusicDelayed(key string, loop, resume bool, delay float64) bool {
	clip, ok := m.db.TryGet(key)
	if !ok {
		return false
	}
	start := 0.0
	if resume {
		start = m.src.Position()
	}
	m.src.Stop()
	m.pending = append(cancel(m.pending, m.src), scheduled{src: m.src, clip: clip, loop: loop, start: start, wait: delay})
	return true
}

// ModifyPitch sets the source pitch, clamped.
func (m *SimpleManager) ModifyPitch(p float64) { m.src.SetPitch(ClampPitch(p)) }

// ApplyVolumes pushes the database music volume to the source.
func (m *SimpleManager) ApplyVolumes() { m.src.SetVolume(m.db.EffectiveMusic()) }

// Update advances delayed playback by dt seconds.
func (m *SimpleManager) Update(dt float64) {
	var err error
	if m.pending, err = advance(m.pending, dt); err != nil {
		m.log.Warnf("Delayed playback failed: %v", err)
	}
}
