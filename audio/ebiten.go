package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/comereal/gamejamtoolkit/logger"
)

// bytesPerSecond is the PCM rate of 16-bit stereo at sampleRate.
func bytesPerSecond(sampleRate int) int { return sampleRate * 4 }

// Decode decodes an .ogg or .wav file into a Clip at sampleRate. The clip
// name is the file name without extension.
func Decode(name string, data []byte, sampleRate int) (*Clip, error) {
	var stream io.Reader
	ext := strings.ToLower(path.Ext(name))

	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", name, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", name, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	return &Clip{
		Name:   strings.TrimSuffix(path.Base(name), path.Ext(name)),
		Length: float64(len(decoded)) / float64(bytesPerSecond(sampleRate)),
		Data:   decoded,
	}, nil
}

// EbitenBackend decodes clips and creates sources on an ebiten audio context.
type EbitenBackend struct {
	context *audio.Context
	log     logger.Logger
}

// NewEbitenBackend reuses the process audio context or creates one at
// sampleRate. Ebiten allows only one context per process.
func NewEbitenBackend(sampleRate int, log logger.Logger) *EbitenBackend {
	if log == nil {
		log = logger.Nop()
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &EbitenBackend{context: ctx, log: log}
}

// LoadFile decodes one file from fsys.
func (b *EbitenBackend) LoadFile(fsys fs.FS, name string) (*Clip, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", name, err)
	}
	return Decode(name, data, b.context.SampleRate())
}

// LoadDir decodes every .ogg and .wav file under dir into db.
func (b *EbitenBackend) LoadDir(fsys fs.FS, dir string, db *ClipDatabase) (int, error) {
	return ScanDir(fsys, dir, b.context.SampleRate(), db, b.log)
}

// ScanDir decodes every .ogg and .wav file under dir into db at
// sampleRate. Files that fail to decode are logged and skipped.
func ScanDir(fsys fs.FS, dir string, sampleRate int, db *ClipDatabase, log logger.Logger) (int, error) {
	if log == nil {
		log = logger.Nop()
	}
	loaded := 0
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(p)) {
		case ".ogg", ".wav":
		default:
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read audio file %s: %w", p, err)
		}
		clip, err := Decode(p, data, sampleRate)
		if err != nil {
			log.Warnf("Skipping %s: %v", p, err)
			return nil
		}
		db.Add(clip)
		loaded++
		return nil
	})
	return loaded, err
}

// NewSource creates a source; it satisfies SourceFactory.
func (b *EbitenBackend) NewSource() Source {
	return &PlayerSource{context: b.context, volume: 1, pitch: 1}
}

// PlayerSource is a Source backed by *audio.Player.
type PlayerSource struct {
	context *audio.Context
	player  *audio.Player
	volume  float64
	pitch   float64 // ebiten players have no pitch control
}

func (s *PlayerSource) Play(clip *Clip, loop bool, from float64) error {
	s.Stop()
	var stream io.ReadSeeker = bytes.NewReader(clip.Data)
	if loop {
		stream = audio.NewInfiniteLoop(stream, int64(len(clip.Data)))
	}
	player, err := s.context.NewPlayer(stream)
	if err != nil {
		return err
	}
	player.SetVolume(s.volume)
	if from > 0 {
		if err := player.SetPosition(time.Duration(from * float64(time.Second))); err != nil {
			_ = player.Close()
			return err
		}
	}
	player.Play()
	s.player = player
	return nil
}

// PlayOneShot plays clip on a throwaway player at the current volume.
func (s *PlayerSource) PlayOneShot(clip *Clip) error {
	player := s.context.NewPlayerFromBytes(clip.Data)
	player.SetVolume(s.volume)
	player.Play()
	return nil
}

func (s *PlayerSource) Pause() {
	if s.player != nil {
		s.player.Pause()
	}
}

func (s *PlayerSource) Resume() {
	if s.player != nil {
		s.player.Play()
	}
}

func (s *PlayerSource) Stop() {
	if s.player != nil {
		_ = s.player.Close()
		s.player = nil
	}
}

func (s *PlayerSource) SetVolume(v float64) {
	s.volume = v
	if s.player != nil {
		s.player.SetVolume(v)
	}
}

func (s *PlayerSource) Volume() float64    { return s.volume }
func (s *PlayerSource) SetPitch(p float64) { s.pitch = p }
func (s *PlayerSource) Pitch() float64     { return s.pitch }
func (s *PlayerSource) IsPlaying() bool    { return s.player != nil && s.player.IsPlaying() }

func (s *PlayerSource) Position() float64 {
	if s.player == nil {
		return 0
	}
	return s.player.Position().Seconds()
}

// Close releases the underlying player.
func (s *PlayerSource) Close() error {
	s.Stop()
	return nil
}
