package systems

import (
	"testing"

	"github.com/comereal/gamejamtoolkit/audio"
	"github.com/comereal/gamejamtoolkit/config"
	"github.com/comereal/gamejamtoolkit/logger"
	"github.com/comereal/gamejamtoolkit/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSource struct {
	clip    *audio.Clip
	volume  float64
	playing bool
	shots   int
}

func (s *testSource) Play(c *audio.Clip, loop bool, from float64) error {
	s.clip, s.playing = c, true
	return nil
}

func (s *testSource) PlayOneShot(*audio.Clip) error {
	s.shots++
	return nil
}

func (s *testSource) Pause()              { s.playing = false }
func (s *testSource) Resume()             { s.playing = true }
func (s *testSource) SetVolume(v float64) { s.volume = v }
func (s *testSource) Volume() float64     { return s.volume }
func (s *testSource) SetPitch(float64)    {}
func (s *testSource) Pitch() float64    { return 1 }
func (s *testSource) Position() float64 { return 0 }
func (s *testSource) IsPlaying() bool   { return s.playing }

func (s *testSource) Stop() {
	s.playing = false
	s.clip = nil
}

func newAudio(t *testing.T) (*audio.PooledManager, *testSource) {
	t.Helper()
	db := audio.NewClipDatabase(logger.Nop())
	db.Add(&audio.Clip{Name: "theme", Length: 30})
	db.Add(&audio.Clip{Name: SoundMenuSelect, Length: 0.1})
	cam := &testSource{}
	return audio.NewPooledManager(db, cam, func() audio.Source { return &testSource{} }, 0, logger.Nop()), cam
}

func TestApplyAudioSettings(t *testing.T) {
	e := newWorld()
	store := prefs.NewMemoryStore()
	store.SetFloat(config.AudioKeys.Master, 0.5)
	store.SetInt(config.AudioKeys.Music, 40)
	_, err := InstallSettings(e, store, volumeSettings)
	require.NoError(t, err)

	m, cam := newAudio(t)
	InitAudio(e, m)

	db := m.Database()
	assert.Equal(t, 0.5, db.MasterVolume())
	assert.InDelta(t, 0.4, db.MusicVolume(), 1e-9)
	assert.Equal(t, config.Audio.DefaultSFXVol, db.SFXVolume())
	assert.InDelta(t, 0.2, cam.volume, 1e-9)
}

func TestMusicFadesOut(t *testing.T) {
	e := newWorld()
	m, cam := newAudio(t)
	InitAudio(e, m)

	PlayMusic(e, "theme")
	require.True(t, cam.playing)
	assert.Equal(t, "theme", GetOrCreateAudio(e).CurrentMusicKey)

	FadeOutMusic(e)
	UpdateAudio(e, config.Audio.MusicFadeDuration/2)
	assert.InDelta(t, m.Database().EffectiveMusic()/2, cam.volume, 1e-6)
	assert.True(t, cam.playing)

	UpdateAudio(e, config.Audio.MusicFadeDuration/2)
	assert.False(t, cam.playing)
	assert.Empty(t, GetOrCreateAudio(e).CurrentMusicKey)
	assert.Nil(t, GetOrCreateAudio(e).Fade)
}

func TestMenuSelectPlaysSound(t *testing.T) {
	e := newWorld()
	CreatePanels(e)
	m, cam := newAudio(t)
	InitAudio(e, m)

	OpenSettings(e)
	assert.Equal(t, 0, cam.shots)
	SelectMenuButton(e)
	assert.Equal(t, 0, cam.shots, "no buttons to select")

	PlaySFX(e, SoundMenuSelect)
	PlaySFX(e, "missing")
	assert.Equal(t, 1, cam.shots)
}

func TestNewAudioManagerUsesConfig(t *testing.T) {
	db := audio.NewClipDatabase(logger.Nop())
	db.Add(&audio.Clip{Name: "hit", Length: 1})
	cfg := config.VolumeConfig{Master: 0.9, Music: 0.3, SFX: 0.6, PoolSize: 1}
	m := NewAudioManager(cfg, db, &testSource{}, func() audio.Source { return &testSource{} })

	assert.Equal(t, 0.9, db.MasterVolume())
	assert.Equal(t, 0.3, db.MusicVolume())
	assert.Equal(t, 0.6, db.SFXVolume())

	require.True(t, m.PlayOneShotPooled("hit"))
	require.True(t, m.PlayOneShotPooled("hit"))
	m.Update(2)
	assert.Equal(t, 1, m.Idle())
}
