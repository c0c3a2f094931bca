package handler

import (
	"sync/atomic"

	"github.com/philipp01105/disco/core"
)

// Stats tracks per-level outcome counters. All methods are safe for
// concurrent use.
type Stats struct {
	processed [len(core.Levels)]atomic.Uint64
	dropped   [len(core.Levels)]atomic.Uint64
	failed    [len(core.Levels)]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func statIndex(level core.Level) int {
	if !level.Valid() {
		return int(core.InfoLevel)
	}
	return int(level)
}

// IncrementProcessed counts a line written successfully
func (s *Stats) IncrementProcessed(level core.Level) {
	s.processed[statIndex(level)].Add(1)
}

// IncrementDropped counts a record that could not be rendered
func (s *Stats) IncrementDropped(level core.Level) {
	s.dropped[statIndex(level)].Add(1)
}

// IncrementFailed counts a write that returned an error
func (s *Stats) IncrementFailed(level core.Level) {
	s.failed[statIndex(level)].Add(1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	return s.processed[statIndex(level)].Load()
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	return s.dropped[statIndex(level)].Load()
}

// GetFailed returns the failed write count for a level
func (s *Stats) GetFailed(level core.Level) uint64 {
	return s.failed[statIndex(level)].Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
		s.dropped[i].Store(0)
		s.failed[i].Store(0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	Dropped        map[core.Level]uint64
	Failed         map[core.Level]uint64
	ProcessedTotal uint64
	DroppedTotal   uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed: make(map[core.Level]uint64, len(core.Levels)),
		Dropped:   make(map[core.Level]uint64, len(core.Levels)),
		Failed:    make(map[core.Level]uint64, len(core.Levels)),
	}
	for _, l := range core.Levels {
		p, d, f := s.GetProcessed(l), s.GetDropped(l), s.GetFailed(l)
		snap.Processed[l] = p
		snap.Dropped[l] = d
		snap.Failed[l] = f
		snap.ProcessedTotal += p
		snap.DroppedTotal += d
		snap.FailedTotal += f
	}
	return snap
}
