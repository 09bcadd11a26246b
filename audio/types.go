package audio

import "fmt"

// SoundType represents the canvas sound cues
type SoundType int

const (
	SoundCreate  SoundType = iota // Pill committed from a draw
	SoundSplit                    // Cut split at least one pill
	SoundNudge                    // Cut pushed a pill aside instead of splitting
	SoundDiscard                  // Draw too small, nothing created
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundCreate:  "create",
	SoundSplit:   "split",
	SoundNudge:   "nudge",
	SoundDiscard: "discard",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return fmt.Sprintf("SoundType(%d)", int(s))
}

// ParseSoundType maps a config key back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
