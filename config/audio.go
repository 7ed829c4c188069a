package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMasterVol  float64
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration float64 // seconds for music fade out
	MaxPooledSources  int
	MinPitch          float64
	MaxPitch          float64
}

// AudioPrefKeys are the preference keys the audio systems read when present.
type AudioPrefKeys struct {
	Master string
	Music  string
	SFX    string
}

var Audio AudioConfig
var AudioKeys AudioPrefKeys

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMasterVol:  1.0,
		DefaultMusicVol:   0.5,
		DefaultSFXVol:     0.5,
		MusicFadeDuration: 1.0,
		MaxPooledSources:  10,
		MinPitch:          -3,
		MaxPitch:          3,
	}

	AudioKeys = AudioPrefKeys{
		Master: "master_volume",
		Music:  "music_volume",
		SFX:    "sfx_volume",
	}
}
