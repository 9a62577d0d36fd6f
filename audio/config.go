package audio

// Config holds the volume multipliers of all audio channels, each in the range [0, 1].
type Config struct {
	MasterVolume float64 `toml:"master_volume" yaml:"master_volume"`
	MusicVolume  float64 `toml:"music_volume" yaml:"music_volume"`
	SfxVolume    float64 `toml:"sfx_volume" yaml:"sfx_volume"`
	VoiceVolume  float64 `toml:"voice_volume" yaml:"voice_volume"`
}

func DefaultConfig() Config {
	return Config{
		MasterVolume: 1.0,
		MusicVolume:  0.8,
		SfxVolume:    1.0,
		VoiceVolume:  1.0,
	}
}

func (c Config) EffectiveMusicVolume() float64 {
	return c.MasterVolume * c.MusicVolume
}

func (c Config) EffectiveSfxVolume() float64 {
	return c.MasterVolume * c.SfxVolume
}

func (c Config) EffectiveVoiceVolume() float64 {
	return c.MasterVolume * c.VoiceVolume
}
