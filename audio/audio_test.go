package audio

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/comereal/gamejamtoolkit/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	clip     *Clip
	loop     bool
	from     float64
	oneShots []*Clip
	shotVols []float64
	volume   float64
	pitch    float64
	position float64
	playing  bool
	closed   bool
}

func (f *fakeSource) Play(c *Clip, loop bool, from float64) error {
	f.clip, f.loop, f.from, f.playing = c, loop, from, true
	f.position = from
	return nil
}

func (f *fakeSource) PlayOneShot(c *Clip) error {
	f.oneShots = append(f.oneShots, c)
	f.shotVols = append(f.shotVols, f.volume)
	return nil
}

func (f *fakeSource) Pause()              { f.playing = false }
func (f *fakeSource) Resume()             { f.playing = f.clip != nil }
func (f *fakeSource) SetVolume(v float64) { f.volume = v }
func (f *fakeSource) Volume() float64     { return f.volume }
func (f *fakeSource) SetPitch(p float64)  { f.pitch = p }
func (f *fakeSource) Pitch() float64      { return f.pitch }
func (f *fakeSource) Position() float64   { return f.position }
func (f *fakeSource) IsPlaying() bool     { return f.playing }

func (f *fakeSource) Stop() {
	f.playing = false
	f.clip = nil
}

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

func newDB(t *testing.T, clips ...*Clip) *ClipDatabase {
	t.Helper()
	db := NewClipDatabase(logger.Nop())
	for _, c := range clips {
		db.Add(c)
	}
	return db
}

func TestClipDatabaseRefresh(t *testing.T) {
	var buf bytes.Buffer
	db := NewClipDatabase(logger.NewWithWriter(&buf, "audio"))
	a := &Clip{Name: "click"}
	b := &Clip{Name: "theme"}

	db.Add(a)
	db.Add(a)
	db.AddKeyed("", b)
	db.AddKeyed("click", b)

	assert.Equal(t, []string{"click", "theme"}, db.Keys())
	got, ok := db.TryGet("click")
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Contains(t, buf.String(), "Duplicate clip key")

	assert.Equal(t, []string{"theme"}, db.KeysWhere(func(k string) bool { return strings.HasPrefix(k, "th") }))

	assert.True(t, db.Remove("click"))
	assert.False(t, db.Remove("click"))
	_, ok = db.TryGet("click")
	assert.False(t, ok)
}

func TestClipDatabaseVolumesClamp(t *testing.T) {
	db := newDB(t)
	assert.Equal(t, 1.0, db.MasterVolume())
	assert.Equal(t, 0.5, db.MusicVolume())
	assert.Equal(t, 0.5, db.SFXVolume())

	db.SetMasterVolume(2)
	db.SetMusicVolume(-1)
	db.SetSFXVolume(0.25)
	assert.Equal(t, 1.0, db.MasterVolume())
	assert.Equal(t, 0.0, db.MusicVolume())
	assert.Equal(t, 0.25, db.EffectiveSFX())
}

func TestSimpleManagerOneShotRestoresMusicVolume(t *testing.T) {
	db := newDB(t, &Clip{Name: "click", Length: 0.1})
	db.SetMasterVolume(0.8)
	db.SetSFXVolume(0.5)
	db.SetMusicVolume(0.25)
	src := &fakeSource{}
	m := NewSimpleManager(db, src, nil)

	assert.True(t, m.TryPlayOneShot("click"))
	assert.False(t, m.TryPlayOneShot("missing"))
	require.Len(t, src.oneShots, 1)
	assert.InDelta(t, 0.4, src.shotVols[0], 1e-9)
	assert.InDelta(t, 0.2, src.volume, 1e-9)
}

func TestSimpleManagerMusic(t *testing.T) {
	theme := &Clip{Name: "theme", Length: 60}
	boss := &Clip{Name: "boss", Length: 60}
	db := newDB(t, theme, boss)
	src := &fakeSource{}
	m := NewSimpleManager(db, src, nil)

	require.True(t, m.TryPlayMusic("theme", true, false))
	assert.Same(t, theme, src.clip)
	assert.True(t, src.loop)

	src.position = 12
	require.True(t, m.TryPlayMusic("boss", false, true))
	assert.Same(t, boss, src.clip)
	assert.Equal(t, 12.0, src.from)

	require.True(t, m.TryPlayMusicAt("theme", true, 3))
	assert.Equal(t, 3.0, src.from)

	assert.False(t, m.TryPlayMusic("nope", true, false))
}

func TestSimpleManagerDelayedMusic(t *testing.T) {
	theme := &Clip{Name: "theme", Length: 60}
	src := &fakeSource{}
	m := NewSimpleManager(newDB(t, theme), src, nil)

	require.True(t, m.TryPlayMusicDelayed("theme", true, false, 1))
	assert.False(t, src.playing)
	m.Update(0.5)
	assert.False(t, src.playing)
	m.Update(0.5)
	assert.True(t, src.playing)
	assert.Same(t, theme, src.clip)
}

func TestModifyPitchClamps(t *testing.T) {
	src := &fakeSource{}
	m := NewSimpleManager(newDB(t), src, nil)
	m.ModifyPitch(7)
	assert.Equal(t, 3.0, src.pitch)
	m.ModifyPitch(-9)
	assert.Equal(t, -3.0, src.pitch)
	m.ModifyPitch(1.5)
	assert.Equal(t, 1.5, src.pitch)
}

func TestPooledManagerReturnsSourcesWhenFinished(t *testing.T) {
	db := newDB(t, &Clip{Name: "hit", Length: 0.5}, &Clip{Name: "song", Length: 10})
	created := 0
	factory := func() Source {
		created++
		return &fakeSource{}
	}
	m := NewPooledManager(db, &fakeSource{}, factory, 1, nil)

	require.True(t, m.PlayOneShotPooled("hit"))
	require.True(t, m.PlayOneShotPooled("hit"))
	assert.Equal(t, 2, m.InUse())
	assert.Equal(t, 2, created)

	m.Update(0.6)
	assert.Equal(t, 0, m.InUse())
	assert.Equal(t, 1, m.Idle(), "pool keeps at most one idle source")

	src, ok := m.PlayMusicPooled("song", false, 4)
	require.True(t, ok)
	assert.Equal(t, 2, created, "idle source reused")
	m.Update(5.9)
	assert.Equal(t, 1, m.InUse())
	m.Update(0.2)
	assert.Equal(t, 0, m.InUse())
	assert.False(t, src.IsPlaying())
}

func TestPooledManagerLoopingMusicHeldUntilRelease(t *testing.T) {
	db := newDB(t, &Clip{Name: "song", Length: 1})
	m := NewPooledManager(db, &fakeSource{}, func() Source { return &fakeSource{} }, 0, nil)

	src, ok := m.PlayMusicPooled("song", true, 0)
	require.True(t, ok)
	m.Update(100)
	assert.Equal(t, 1, m.InUse())
	assert.True(t, m.Release(src))
	assert.False(t, m.Release(src))
	assert.Equal(t, 0, m.InUse())
}

func TestPooledManagerDelayedMusic(t *testing.T) {
	db := newDB(t, &Clip{Name: "song", Length: 2})
	m := NewPooledManager(db, &fakeSource{}, func() Source { return &fakeSource{} }, 0, nil)

	src, ok := m.PlayMusicPooledDelayed("song", 1, false, 0)
	require.True(t, ok)
	assert.False(t, src.IsPlaying())
	m.Update(1)
	assert.True(t, src.IsPlaying())
	m.Update(2.1)
	assert.Equal(t, 0, m.InUse())
}

func TestPooledManagerCamera(t *testing.T) {
	cam := &fakeSource{}
	db := newDB(t, &Clip{Name: "theme", Length: 3})
	m := NewPooledManager(db, cam, nil, 0, nil)

	require.True(t, m.TryPlayMusic("theme", true, false))
	assert.Same(t, cam, m.Camera())
	assert.True(t, cam.playing)
	m.ApplyVolumes()
	assert.Equal(t, db.EffectiveMusic(), cam.volume)
}

// wavFile builds a 16-bit stereo PCM WAV holding n zero frames.
func wavFile(sampleRate, frames int) []byte {
	data := frames * 4
	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(36+data))
	b.WriteString("WAVEfmt ")
	_ = binary.Write(&b, binary.LittleEndian, uint32(16))
	_ = binary.Write(&b, binary.LittleEndian, uint16(1))
	_ = binary.Write(&b, binary.LittleEndian, uint16(2))
	_ = binary.Write(&b, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&b, binary.LittleEndian, uint32(sampleRate*4))
	_ = binary.Write(&b, binary.LittleEndian, uint16(4))
	_ = binary.Write(&b, binary.LittleEndian, uint16(16))
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, uint32(data))
	b.Write(make([]byte, data))
	return b.Bytes()
}

func TestDecodeWav(t *testing.T) {
	clip, err := Decode("sfx/click.wav", wavFile(44100, 4410), 44100)
	require.NoError(t, err)
	assert.Equal(t, "click", clip.Name)
	assert.InDelta(t, 0.1, clip.Length, 1e-6)
	assert.Len(t, clip.Data, 4410*4)
}

func TestDecodeRejectsUnknownFormat(t *testing.T) {
	_, err := Decode("theme.mp3", []byte("x"), 44100)
	assert.ErrorContains(t, err, "unsupported audio format")
}

func TestScanDir(t *testing.T) {
	fsys := fstest.MapFS{
		"sfx/click.wav":  {Data: wavFile(44100, 441)},
		"sfx/broken.wav": {Data: []byte("nope")},
		"music/readme":   {Data: []byte("text")},
	}
	db := NewClipDatabase(logger.Nop())
	n, err := ScanDir(fsys, ".", 44100, db, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"click"}, db.Keys())
}
