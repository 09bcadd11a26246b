package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const speakerBufferDuration = 100 * time.Millisecond

// SoundManager plays canvas sound cues through the system speaker
// Every method is safe to call before Initialize or after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	cache       *cueCache
	initialized bool
	muted       atomic.Bool
	played      atomic.Int64
}

// NewSoundManager creates a sound manager; cfg nil uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		cache:  newCueCache(),
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the shared mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBufferDuration)); err != nil {
		return err
	}

	sm.cache.preload(sm.config)
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues a cue, returns false if nothing was queued
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		return false
	}

	buf := sm.cache.get(st, sm.config)
	if buf == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
	sm.played.Add(1)
	return true
}

// PlayCreate plays the pill-created chime
func (sm *SoundManager) PlayCreate() bool { return sm.Play(SoundCreate) }

// PlaySplit plays the cut click
func (sm *SoundManager) PlaySplit() bool { return sm.Play(SoundSplit) }

// PlayNudge plays the rejected-split buzz
func (sm *SoundManager) PlayNudge() bool { return sm.Play(SoundNudge) }

// PlayDiscard plays the abandoned-draw blip
func (sm *SoundManager) PlayDiscard() bool { return sm.Play(SoundDiscard) }

// ToggleMute flips mute, returns true if sound is now on
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	return !muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsEnabled returns true if the speaker is open and unmuted
func (sm *SoundManager) IsEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted.Load()
}

// Played returns how many cues have been queued
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}
