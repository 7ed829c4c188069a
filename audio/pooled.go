package audio

import (
	"io"

	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/logger"
)

// SourceFactory creates a fresh pooled source.
type SourceFactory func() Source

// lease is a pooled source in use. It goes back to the pool once remaining
// reaches zero; looping music is kept until Release.
type lease struct {
	src       Source
	remaining float64
	looping   bool
}

// PooledManager plays non-positional audio on a camera source and
// positional audio on sources taken from a bounded pool.
type PooledManager struct {
	db      *ClipDatabase
	camera  *SimpleManager
	factory SourceFactory
	maxIdle int
	log     logger.Logger

	idle    []Source
	leases  []lease
	pending []scheduled
}

// NewPooledManager creates a manager whose pool keeps at most maxIdle
// released sources; zero means config.Audio.MaxPooledSources.
func NewPooledManager(db *ClipDatabase, camera Source, factory SourceFactory, maxIdle int, log logger.Logger) *PooledManager {
	if log == nil {
		log = logger.Nop()
	}
	if maxIdle <= 0 {
		maxIdle = config.Audio.MaxPooledSources
	}
	return &PooledManager{
		db:      db,
		camera:  NewSimpleManager(db, camera, log),
		factory: factory,
		maxIdle: maxIdle,
		log:     log,
	}
}

func (m *PooledManager) Database() *ClipDatabase { return m.db }
func (m *PooledManager) Camera() Source          { return m.camera.Source() }
func (m *PooledManager) InUse() int              { return len(m.leases) }
func (m *PooledManager) Idle() int               { return len(m.idle) }

// Camera source playback.

func (m *PooledManager) TryPlayOneShot(key string) bool { return m.camera.TryPlayOneShot(key) }

func (m *PooledManager) TryPlayMusic(key string, loop, resume bool) bool {
	return m.camera.TryPlayMusic(key, loop, resume)
}

func (m *PooledManager) TryPlayMusicAt(key string, loop bool, start float64) bool {
	return m.camera.TryPlayMusicAt(key, loop, start)
}

func (m *PooledManager) TryPlayMusicDelayed(key string, loop, resume bool, delay float64) bool {
	return m.camera.TryPlayMusicDelayed(key, loop, resume, delay)
}

func (m *PooledManager) ModifyPitch(p float64) { m.camera.ModifyPitch(p) }
func (m *PooledManager) ApplyVolumes()         { m.camera.ApplyVolumes() }

// Pooled playback.

// PlayOneShotPooled plays key on a pooled source that is released when the
// clip ends.
func (m *PooledManager) PlayOneShotPooled(key string) bool {
	clip, ok := m.db.TryGet(key)
	if !ok {
		return false
	}
	src := m.acquire()
	src.SetVolume(m.db.EffectiveSFX())
	if err := src.PlayOneShot(clip); err != nil {
		m.log.Warnf("Could not play %s: %v", key, err)
	}
	src.SetVolume(m.db.EffectiveMusic())
	m.leases = append(m.leases, lease{src: src, remaining: clip.Length})
	return true
}

// PlayMusicPooled plays key on a pooled source and returns it. Non-looping
// music is released when it ends.
func (m *PooledManager) PlayMusicPooled(key string, loop bool, start float64) (Source, bool) {
	return m.playPooled(key, loop, start, 0)
}

// PlayMusicPooledDelayed is PlayMusicPooled after delay seconds.
func (m *PooledManager) PlayMusicPooledDelayed(key string, delay float64, loop bool, start float64) (Source, bool) {
	return m.playPooled(key, loop, start, delay)
}

func (m *PooledManager) playPooled(key string, loop bool, start, delay float64) (Source, bool) {
	clip, ok := m.db.TryGet(key)
	if !ok {
		return nil, false
	}
	src := m.acquire()
	src.Stop()
	src.SetVolume(m.db.EffectiveMusic())
	if delay > 0 {
		m.pending = append(m.pending, scheduled{src: src, clip: clip, loop: loop, start: start, wait: delay})
	} else if err := src.Play(clip, loop, start); err != nil {
		m.log.Warnf("Could not play %s: %v", key, err)
	}
	m.leases = append(m.leases, lease{src: src, remaining: clip.Length + delay - start, looping: loop})
	return src, true
}

// Release returns src to the pool early. It reports whether src was leased.
func (m *PooledManager) Release(src Source) bool {
	for i, l := range m.leases {
		if l.src == src {
			m.leases = append(m.leases[:i], m.leases[i+1:]...)
			m.giveBack(src)
			return true
		}
	}
	return false
}

// Update advances delayed playback and lease timers by dt seconds.
func (m *PooledManager) Update(dt float64) {
	m.camera.Update(dt)

	var err error
	if m.pending, err = advance(m.pending, dt); err != nil {
		m.log.Warnf("Delayed playback failed: %v", err)
	}

	kept := m.leases[:0]
	var done []Source
	for _, l := range m.leases {
		if !l.looping {
			l.remaining -= dt
			if l.remaining <= 0 {
				done = append(done, l.src)
				continue
			}
		}
		kept = append(kept, l)
	}
	m.leases = kept
	for _, src := range done {
		m.giveBack(src)
	}
}

func (m *PooledManager) acquire() Source {
	if n := len(m.idle); n > 0 {
		src := m.idle[n-1]
		m.idle = m.idle[:n-1]
		return src
	}
	return m.factory()
}

func (m *PooledManager) giveBack(src Source) {
	src.Stop()
	m.pending = cancel(m.pending, src)
	if len(m.idle) < m.maxIdle {
		m.idle = append(m.idle, src)
		return
	}
	if c, ok := src.(io.Closer); ok {
		if err := c.Close(); err != nil {
			m.log.Warnf("Could not close audio source: %v", err)
		}
	}
}
