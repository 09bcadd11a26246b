package canvas

import (
	"strconv"
	"sync/atomic"
)

// IDSource mints identifiers that are never reused
type IDSource interface {
	NextID() string
}

// IDGen produces "p1", "p2", ... in mint order
// Zero value is ready to use
type IDGen struct {
	seq atomic.Int64
}

// NewIDGen creates a generator starting at p1
func NewIDGen() *IDGen {
	return &IDGen{}
}

// NextID returns the next identifier
func (g *IDGen) NextID() string {
	return "p" + strconv.FormatInt(g.seq.Add(1), 10)
}

// Minted returns how many identifiers have been handed out
func (g *IDGen) Minted() int64 {
	return g.seq.Load()
}
