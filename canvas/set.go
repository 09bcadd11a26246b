package canvas

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/pillcut/geom"
)

var (
	// ErrDuplicateID is returned when a pill's ID is already present
	ErrDuplicateID = errors.New("duplicate pill id")
	// ErrDegenerate is returned for pills without positive width and height
	ErrDegenerate = errors.New("pill has non-positive size")
)

// Set is an ordered collection of pills, unique by ID
// Order is render and hit priority: the last pill is topmost
// Set is single-writer; callers serialize access
type Set struct {
	pills []Pill
}

// NewSet creates an empty set
func NewSet() *Set {
	return &Set{pills: make([]Pill, 0, 16)}
}

// Len returns the number of pills
func (s *Set) Len() int {
	return len(s.pills)
}

// Pills returns a snapshot copy in render order
func (s *Set) Pills() []Pill {
	out := make([]Pill, len(s.pills))
	copy(out, s.pills)
	return out
}

// Each calls fn for every pill bottom to top
func (s *Set) Each(fn func(Pill)) {
	for _, p := range s.pills {
		fn(p)
	}
}

// Get returns the pill with the given ID
func (s *Set) Get(id string) (Pill, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.pills[i], true
	}
	return Pill{}, false
}

// Add appends a pill on top
func (s *Set) Add(p Pill) error {
	if err := validate(p); err != nil {
		return err
	}
	if s.indexOf(p.ID) >= 0 {
		return fmt.Errorf("add %s: %w", p.ID, ErrDuplicateID)
	}
	s.pills = append(s.pills, p)
	return nil
}

// Replace swaps in a new ordered membership
// The set is left untouched when pills violates an invariant
func (s *Set) Replace(pills []Pill) error {
	seen := make(map[string]struct{}, len(pills))
	for _, p := range pills {
		if err := validate(p); err != nil {
			return err
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("replace %s: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}
	}
	next := make([]Pill, len(pills))
	copy(next, pills)
	s.pills = next
	return nil
}

// TopAt returns the topmost pill containing pt
func (s *Set) TopAt(pt geom.Point) (Pill, bool) {
	for i := len(s.pills) - 1; i >= 0; i-- {
		if s.pills[i].Rect.Contains(pt) {
			return s.pills[i], true
		}
	}
	return Pill{}, false
}

// BringToFront moves the pill to the top of the order
func (s *Set) BringToFront(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	p := s.pills[i]
	copy(s.pills[i:], s.pills[i+1:])
	s.pills[len(s.pills)-1] = p
	return true
}

// MoveTo repositions a pill's top-left corner, clamped to the canvas origin
func (s *Set) MoveTo(id string, x, y int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.pills[i].Rect.X = max(0, x)
	s.pills[i].Rect.Y = max(0, y)
	return true
}

func (s *Set) indexOf(id string) int {
	for i := range s.pills {
		if s.pills[i].ID == id {
			return i
		}
	}
	return -1
}

func validate(p Pill) error {
	if p.Rect.Empty() {
		return fmt.Errorf("%s: %w", p, ErrDegenerate)
	}
	return nil
}
