package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/termpaint/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a wave gliding linearly from freq to freqEnd over its duration
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch moves from start to end
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		freqEnd:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release tail
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePaintSound generates a short click for a paintbrush press
func CreatePaintSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(1200, constants.PaintSoundDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, constants.PaintSoundDuration, constants.PaintSoundAttack, constants.PaintSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundPaint]*cfg.MasterVolume)
}

// CreateFillSound generates a descending sweep for a bucket fill
func CreateFillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(880, 220, constants.FillSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.FillSoundDuration, constants.FillSoundAttack, constants.FillSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundFill]*cfg.MasterVolume)
}

// CreateSelectSound generates a two-tone chime for dialog selections
// Returns nil when the tone generator rejects the sample rate
func CreateSelectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E6 over A5
	low, err := generators.SineTone(rate, 880)
	if err != nil {
		return nil
	}
	high, err := generators.SineTone(rate, 1318.51)
	if err != nil {
		return nil
	}

	n1 := NewEnvelope(beep.Take(rate.N(constants.SelectSoundNoteDuration), low),
		constants.SelectSoundNoteDuration, constants.SelectSoundAttack, constants.SelectSoundRelease, rate)
	n2 := NewEnvelope(beep.Take(rate.N(constants.SelectSoundNoteDuration), high),
		constants.SelectSoundNoteDuration, constants.SelectSoundAttack, constants.SelectSoundRelease, rate)

	return newVolume(beep.Seq(n1, n2), cfg.EffectVolumes[SoundSelect]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for the given type, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPaint:
		return CreatePaintSound(cfg)
	case SoundFill:
		return CreateFillSound(cfg)
	case SoundSelect:
		return CreateSelectSound(cfg)
	default:
		return nil
	}
}
