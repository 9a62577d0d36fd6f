package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/oliverbestmann/infinite/audio"
	"github.com/oliverbestmann/infinite/ecs"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Assets  AssetsConfig  `toml:"assets" yaml:"assets"`
	Audio   audio.Config  `toml:"audio" yaml:"audio"`
	Time    TimeConfig    `toml:"time" yaml:"time"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

type AssetsConfig struct {
	BasePath string `toml:"base_path" yaml:"base_path"`
}

type TimeConfig struct {
	TimeScale     float64       `toml:"time_scale" yaml:"time_scale"`
	FixedTimestep time.Duration `toml:"fixed_timestep" yaml:"fixed_timestep"`
	MaxDelta      time.Duration `toml:"max_delta" yaml:"max_delta"`
}

// GameTime converts the time section into the configuration of ecs.GameTime.
func (t TimeConfig) GameTime() ecs.TimeConfig {
	return ecs.TimeConfig{
		TimeScale:     t.TimeScale,
		FixedTimestep: t.FixedTimestep,
		MaxDelta:      t.MaxDelta,
	}
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn, error
	Format string `toml:"format" yaml:"format"` // console or json
}

// Load reads the config file at the given path. Files ending in .yaml or .yml are
// parsed as yaml, everything else as toml. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}

	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	gameTime := ecs.DefaultTimeConfig()

	return &Config{
		Assets: AssetsConfig{
			BasePath: "assets",
		},
		Audio: audio.DefaultConfig(),
		Time: TimeConfig{
			TimeScale:     gameTime.TimeScale,
			FixedTimestep: gameTime.FixedTimestep,
			MaxDelta:      gameTime.MaxDelta,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
