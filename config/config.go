package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. GJT_STORE__BACKEND=sqlite.
const EnvPrefix = "GJT_"

// Config is the runtime configuration loaded from a toolkit file.
type Config struct {
	AppName string        `json:"app_name"`
	Locale  string        `json:"locale"`
	Store   StoreConfig   `json:"store"`
	Logging LoggingConfig `json:"logging"`
	Audio   VolumeConfig  `json:"audio"`
	Panels  PanelsConfig  `json:"panels"`
}

// StoreConfig selects the preference store backend.
type StoreConfig struct {
	Backend string `json:"backend"` // memory, gdata or sqlite
	Path    string `json:"path"`    // sqlite database file
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// VolumeConfig overrides the audio defaults.
type VolumeConfig struct {
	Master   float64 `json:"master"`
	Music    float64 `json:"music"`
	SFX      float64 `json:"sfx"`
	PoolSize int     `json:"pool_size"`
}

// PanelsConfig points at the panel definition files.
type PanelsConfig struct {
	Settings string `json:"settings"`
	Main     string `json:"main"`
	Credits  string `json:"credits"`
}

// Default returns a configuration populated with defaults only.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// Load reads a YAML or JSON file, applies GJT_ environment overrides and
// validates the result. An empty path yields the defaults plus env overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

// SetDefaults fills every unset field.
func (c *Config) SetDefaults() {
	if c.AppName == "" {
		c.AppName = Settings.AppName
	}
	if c.Locale == "" {
		c.Locale = "en"
	}
	c.Store.SetDefaults()
	c.Logging.SetDefaults()
	c.Audio.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.Audio.Validate()
}

func (s *StoreConfig) SetDefaults() {
	if s.Backend == "" {
		s.Backend = "gdata"
	}
	if s.Backend == "sqlite" && s.Path == "" {
		s.Path = "prefs.db"
	}
}

func (s StoreConfig) Validate() error {
	switch s.Backend {
	case "memory", "gdata", "sqlite":
		return nil
	default:
		return fmt.Errorf("store.backend: unknown backend %q", s.Backend)
	}
}

func (l *LoggingConfig) SetDefaults() {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "json"
	}
}

func (l LoggingConfig) Validate() error {
	switch l.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("logging.level: invalid level %q", l.Level)
	}
	switch l.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("logging.format: invalid format %q", l.Format)
	}
}

// SetDefaults uses the config.Audio values for unset volumes. A zero volume
// can only be configured through the preference store.
func (v *VolumeConfig) SetDefaults() {
	if v.Master == 0 {
		v.Master = Audio.DefaultMasterVol
	}
	if v.Music == 0 {
		v.Music = Audio.DefaultMusicVol
	}
	if v.SFX == 0 {
		v.SFX = Audio.DefaultSFXVol
	}
	if v.PoolSize == 0 {
		v.PoolSize = Audio.MaxPooledSources
	}
}

func (v VolumeConfig) Validate() error {
	for name, vol := range map[string]float64{"master": v.Master, "music": v.Music, "sfx": v.SFX} {
		if vol < 0 || vol > 1 {
			return fmt.Errorf("audio.%s: volume %v out of range [0,1]", name, vol)
		}
	}
	if v.PoolSize < 1 {
		return fmt.Errorf("audio.pool_size: must be positive, got %d", v.PoolSize)
	}
	return nil
}
