package audio

// SoundType identifies a sound effect
type SoundType int

const (
	SoundPunch SoundType = iota
	SoundCollision
	SoundStart
	SoundFade
)

// Config holds audio configuration
type Config struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultConfig returns the default audio configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.6,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundPunch:     0.8,
			SoundCollision: 0.7,
			SoundStart:     0.5,
			SoundFade:      0.6,
		},
	}
}
