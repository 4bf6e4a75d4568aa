package audio

import (
	"github.com/lixenwraith/termpaint/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the default settings with audio disabled
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      false,
		MasterVolume: constants.AudioDefaultVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundPaint:  0.4,
			SoundFill:   0.5,
			SoundSelect: 0.3,
		},
	}
}

// SetVolume clamps v into [0, 1] and stores it as the master volume
func (c *AudioConfig) SetVolume(v float64) {
	c.MasterVolume = min(max(v, 0), 1)
}
