package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// cueCache stores cues rendered once per configuration
type cueCache struct {
	mu    sync.RWMutex
	store [soundTypeCount]*beep.Buffer
}

func newCueCache() *cueCache {
	return &cueCache{}
}

// get returns the rendered cue, synthesizing it on first use
func (c *cueCache) get(st SoundType, cfg *AudioConfig) *beep.Buffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}

	c.mu.RLock()
	if buf := c.store[st]; buf != nil {
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if buf := c.store[st]; buf != nil {
		return buf
	}

	s := GetSoundEffect(st, cfg)
	if s == nil {
		return nil
	}
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  beep.SampleRate(cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(s)
	c.store[st] = buf
	return buf
}

// preload renders every cue so the first gesture does not pay for synthesis
func (c *cueCache) preload(cfg *AudioConfig) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		c.get(st, cfg)
	}
}
