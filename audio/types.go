package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaint  SoundType = iota // Paintbrush press tick
	SoundFill                    // Bucket fill sweep
	SoundSelect                  // Tool or color chosen in the dialog
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundPaint:
		return "paint"
	case SoundFill:
		return "fill"
	case SoundSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
)
