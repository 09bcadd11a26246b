// Package status holds lock-free counters shared between the input bridge,
// which writes them, and the status bar, which reads them each frame
package status

import "sync/atomic"

// Well-known metric keys
const (
	KeyPills      = "canvas.pills"
	KeyCreated    = "gesture.created"
	KeyDiscarded  = "gesture.discarded"
	KeyDrags      = "gesture.drags"
	KeyCuts       = "partition.cuts"
	KeySplits     = "partition.splits"
	KeyNudges     = "partition.nudges"
	KeyFragments  = "partition.fragments"
	KeySnapshots  = "snapshot.count"
	KeyLastAction = "last.action"
)

// Registry is the metrics facade
// Writers may cache the pointers returned by Get; reads and writes are atomic
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Add increments the integer metric key by delta
func (r *Registry) Add(key string, delta int64) {
	r.Ints.Get(key).Add(delta)
}

// Int returns the integer metric key, zero if never written
func (r *Registry) Int(key string) int64 {
	return r.Ints.Get(key).Load()
}

// SetString stores the string metric key
func (r *Registry) SetString(key, val string) {
	r.Strings.Get(key).Store(val)
}

// String returns the string metric key, empty if never written
func (r *Registry) String(key string) string {
	return r.Strings.Get(key).Load()
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}
