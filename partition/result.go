package partition

import (
	"fmt"

	"github.com/lixenwraith/pillcut/canvas"
)

// Kind is the per-pill decision taken by a cut
type Kind int

const (
	Untouched Kind = iota
	SplitVertical
	SplitHorizontal
	SplitCross
	Nudged
)

func (k Kind) String() string {
	switch k {
	case Untouched:
		return "untouched"
	case SplitVertical:
		return "split-vertical"
	case SplitHorizontal:
		return "split-horizontal"
	case SplitCross:
		return "split-cross"
	case Nudged:
		return "nudged"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Outcome records what happened to one input pill
type Outcome struct {
	Kind        Kind
	SourceID    string
	FragmentIDs []string // Empty unless Kind is a split
}

// Result is the pill set after a cut plus one outcome per input pill
type Result struct {
	Pills    []canvas.Pill
	Outcomes []Outcome
}

// Counts summarizes a cut
type Counts struct {
	Untouched int
	Split     int
	Nudged    int
	Fragments int
}

// Counts tallies outcomes by kind
func (r Result) Counts() Counts {
	var c Counts
	for _, o := range r.Outcomes {
		switch o.Kind {
		case Untouched:
			c.Untouched++
		case Nudged:
			c.Nudged++
		default:
			c.Split++
			c.Fragments += len(o.FragmentIDs)
		}
	}
	return c
}

// Changed reports whether the cut split or moved anything
func (r Result) Changed() bool {
	c := r.Counts()
	return c.Split > 0 || c.Nudged > 0
}

func (c Counts) String() string {
	return fmt.Sprintf("split=%d fragments=%d nudged=%d untouched=%d", c.Split, c.Fragments, c.Nudged, c.Untouched)
}
