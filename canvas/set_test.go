package canvas

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/pillcut/geom"
)

func mkPill(id string, x, y, w, h int) Pill {
	return Pill{ID: id, Rect: geom.Rect{X: x, Y: y, W: w, H: h}}
}

func ids(s *Set) []string {
	out := make([]string, 0, s.Len())
	s.Each(func(p Pill) { out = append(out, p.ID) })
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSetAddRejectsDuplicates(t *testing.T) {
	s := NewSet()
	if err := s.Add(mkPill("p1", 0, 0, 10, 10)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	err := s.Add(mkPill("p1", 50, 50, 10, 10))
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Expected ErrDuplicateID, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 pill, got %d", s.Len())
	}
}

func TestSetAddRejectsDegenerate(t *testing.T) {
	s := NewSet()
	tests := []struct {
		name string
		p    Pill
	}{
		{"Zero width", mkPill("a", 0, 0, 0, 10)},
		{"Zero height", mkPill("b", 0, 0, 10, 0)},
		{"Negative width", mkPill("c", 0, 0, -5, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Add(tt.p); !errors.Is(err, ErrDegenerate) {
				t.Errorf("Expected ErrDegenerate, got %v", err)
			}
		})
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty set, got %d pills", s.Len())
	}
}

func TestSetBringToFront(t *testing.T) {
	s := NewSet()
	for _, id := range []string{"p1", "p2", "p3"} {
		if err := s.Add(mkPill(id, 0, 0, 10, 10)); err != nil {
			t.Fatal(err)
		}
	}

	if !s.BringToFront("p1") {
		t.Fatal("Expected BringToFront to find p1")
	}
	if got := ids(s); !equalIDs(got, []string{"p2", "p3", "p1"}) {
		t.Errorf("Unexpected order %v", got)
	}
	if s.BringToFront("missing") {
		t.Error("Expected BringToFront to report missing id")
	}
}

func TestSetTopAtPrefersLast(t *testing.T) {
	s := NewSet()
	_ = s.Add(mkPill("bottom", 0, 0, 100, 100))
	_ = s.Add(mkPill("top", 50, 50, 100, 100))

	p, ok := s.TopAt(geom.Point{X: 60, Y: 60})
	if !ok || p.ID != "top" {
		t.Errorf("Expected top, got %v (%v)", p.ID, ok)
	}
	p, ok = s.TopAt(geom.Point{X: 10, Y: 10})
	if !ok || p.ID != "bottom" {
		t.Errorf("Expected bottom, got %v (%v)", p.ID, ok)
	}
	if _, ok = s.TopAt(geom.Point{X: 500, Y: 500}); ok {
		t.Error("Expected no pill at empty point")
	}
}

func TestSetMoveToClamps(t *testing.T) {
	s := NewSet()
	_ = s.Add(mkPill("p1", 10, 10, 20, 20))
	s.MoveTo("p1", -5, 30)
	p, _ := s.Get("p1")
	if p.Rect.X != 0 || p.Rect.Y != 30 {
		t.Errorf("Expected (0,30), got (%d,%d)", p.Rect.X, p.Rect.Y)
	}
	if p.Rect.W != 20 || p.Rect.H != 20 {
		t.Error("MoveTo must not resize")
	}
}

func TestSetReplaceIsAtomic(t *testing.T) {
	s := NewSet()
	_ = s.Add(mkPill("p1", 0, 0, 10, 10))

	err := s.Replace([]Pill{mkPill("p2", 0, 0, 10, 10), mkPill("p2", 5, 5, 10, 10)})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Expected ErrDuplicateID, got %v", err)
	}
	if got := ids(s); !equalIDs(got, []string{"p1"}) {
		t.Errorf("Set changed after failed replace: %v", got)
	}

	if err := s.Replace([]Pill{mkPill("p3", 0, 0, 10, 10)}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := ids(s); !equalIDs(got, []string{"p3"}) {
		t.Errorf("Unexpected order %v", got)
	}
}

func TestSetPillsIsSnapshot(t *testing.T) {
	s := NewSet()
	_ = s.Add(mkPill("p1", 0, 0, 10, 10))
	snap := s.Pills()
	snap[0].Rect.X = 99
	p, _ := s.Get("p1")
	if p.Rect.X != 0 {
		t.Error("Mutating snapshot leaked into set")
	}
}

func TestIDGenNeverRepeats(t *testing.T) {
	g := NewIDGen()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.NextID()
		if seen[id] {
			t.Fatalf("Duplicate id %s", id)
		}
		seen[id] = true
	}
	if g.NextID() != "p1001" {
		t.Error("Expected sequential p-prefixed ids")
	}
}

func TestRadiiOrDefault(t *testing.T) {
	p := mkPill("p1", 0, 0, 10, 10)
	if got := p.RadiiOr(20); got != geom.Uniform(20) {
		t.Errorf("Expected default radii, got %+v", got)
	}
	p = p.WithRadii(geom.Radii{TL: 3})
	if got := p.RadiiOr(20); got != (geom.Radii{TL: 3}) {
		t.Errorf("Expected explicit radii, got %+v", got)
	}
}

func TestRandomColorPastel(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		c := RandomColor(rng)
		_, s, l := c.Hsl()
		if s < 0.6 || s > 0.7 || l < 0.6 || l > 0.7 {
			t.Errorf("Expected ~65%% saturation/lightness, got s=%.2f l=%.2f", s, l)
		}
	}
}
