package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/termpaint/constants"
)

// SoundManager plays short feedback cues through a single speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
	lazyInit    bool // open the speaker when first unmuted
}

// NewSoundManager creates a manager; nil cfg selects the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	mixer := &beep.Mixer{}
	mixer.Add(generators.Silence(-1))
	return &SoundManager{
		cfg:   cfg,
		mixer: mixer,
		ctrl:  &beep.Ctrl{Streamer: mixer, Paused: !cfg.Enabled},
	}
}

// SetLazyInit defers opening the speaker until audio is first enabled
func (sm *SoundManager) SetLazyInit(lazy bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.lazyInit = lazy
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initLocked()
}

func (sm *SoundManager) initLocked() error {
	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// Play queues a sound effect; ErrNotInitialized before Initialize, a no-op while muted
func (sm *SoundManager) Play(soundType SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if !sm.cfg.Enabled {
		return nil
	}

	streamer := GetSoundEffect(soundType, sm.cfg)
	if streamer == nil {
		return nil
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// ToggleMute flips the enabled flag and returns the new state
// Enabling opens the speaker on first use; if that fails audio stays disabled
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.cfg.Enabled && sm.lazyInit {
		if err := sm.initLocked(); err != nil {
			return false
		}
	}

	sm.cfg.Enabled = !sm.cfg.Enabled
	sm.setPaused(!sm.cfg.Enabled)
	return sm.cfg.Enabled
}

// Enabled reports whether cues are audible
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.cfg.Enabled
}

// setPaused updates the output gate; the speaker lock is only held once the speaker runs
func (sm *SoundManager) setPaused(paused bool) {
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.ctrl.Paused = paused
	if paused {
		// Drop queued cues; the silence track keeps the mixer alive on the speaker
		sm.mixer.Clear()
		sm.mixer.Add(generators.Silence(-1))
	}
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.setPaused(true)
	speaker.Close()
	sm.initialized = false
}
