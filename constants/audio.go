package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer; smaller is lower latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioDefaultVolume is the master volume when none is configured
	AudioDefaultVolume = 0.6
)

// Paint Sound Timing
const (
	PaintSoundDuration = 30 * time.Millisecond
	PaintSoundAttack   = 2 * time.Millisecond
	PaintSoundRelease  = 20 * time.Millisecond
)

// Fill Sound Timing
const (
	FillSoundDuration = 220 * time.Millisecond
	FillSoundAttack   = 10 * time.Millisecond
	FillSoundRelease  = 120 * time.Millisecond
)

// Select Sound Timing
const (
	SelectSoundNoteDuration = 70 * time.Millisecond
	SelectSoundAttack       = 5 * time.Millisecond
	SelectSoundRelease      = 40 * time.Millisecond
)
