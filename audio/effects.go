package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue timings
const (
	createNoteDuration = 90 * time.Millisecond
	createAttack       = 5 * time.Millisecond
	createRelease      = 60 * time.Millisecond

	splitDuration = 45 * time.Millisecond
	splitAttack   = 1 * time.Millisecond
	splitRelease  = 35 * time.Millisecond

	nudgeDuration = 140 * time.Millisecond
	nudgeAttack   = 10 * time.Millisecond
	nudgeRelease  = 80 * time.Millisecond

	discardDuration = 70 * time.Millisecond
	discardAttack   = 2 * time.Millisecond
	discardRelease  = 50 * time.Millisecond
)

// Cue pitches in Hz
const (
	createLowHz  = 659.25 // E5
	createHighHz = 987.77 // B5
	nudgeHz      = 110.0
	discardHz    = 220.0
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64 // [0, 1)
	total    int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of wave
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release ramps
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			gain = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume; zero or below is silent
// since effects.Volume works in log2 space
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateCreateSound is a rising two-note chime for a committed pill
func CreateCreateSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	low := NewEnvelope(NewOscillator(createLowHz, createNoteDuration, WaveSine, rate),
		createNoteDuration, createAttack, createRelease, rate)
	high := NewEnvelope(NewOscillator(createHighHz, createNoteDuration, WaveSine, rate),
		createNoteDuration, createAttack, createRelease, rate)

	return newVolume(beep.Seq(low, high), cfg.effectVolume(SoundCreate))
}

// CreateSplitSound is a short noise click for a cut
func CreateSplitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	click := NewEnvelope(NewOscillator(0, splitDuration, WaveNoise, rate),
		splitDuration, splitAttack, splitRelease, rate)

	return newVolume(click, cfg.effectVolume(SoundSplit))
}

// CreateNudgeSound is a low buzz for a rejected split
func CreateNudgeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewEnvelope(NewOscillator(nudgeHz, nudgeDuration, WaveSaw, rate),
		nudgeDuration, nudgeAttack, nudgeRelease, rate)
	over := NewEnvelope(NewOscillator(nudgeHz*2, nudgeDuration, WaveSine, rate),
		nudgeDuration, nudgeAttack, nudgeRelease, rate)

	mixed := beep.Mix(newVolume(fund, 0.6), newVolume(over, 0.3))
	return newVolume(mixed, cfg.effectVolume(SoundNudge))
}

// CreateDiscardSound is a soft square blip for an abandoned draw
func CreateDiscardSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	blip := NewEnvelope(NewOscillator(discardHz, discardDuration, WaveSquare, rate),
		discardDuration, discardAttack, discardRelease, rate)

	return newVolume(blip, cfg.effectVolume(SoundDiscard)*0.5)
}

// GetSoundEffect returns a fresh streamer for st, nil if unknown
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundCreate:
		return CreateCreateSound(cfg)
	case SoundSplit:
		return CreateSplitSound(cfg)
	case SoundNudge:
		return CreateNudgeSound(cfg)
	case SoundDiscard:
		return CreateDiscardSound(cfg)
	}
	return nil
}
