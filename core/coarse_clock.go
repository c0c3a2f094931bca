package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// coarseInterval is how often the cached clock is refreshed
const coarseInterval = 500 * time.Microsecond

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches the
// current UTC time every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and lives for the rest of the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now().UTC()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(coarseInterval)
			for range ticker.C {
				t := time.Now().UTC()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached UTC time, or the exact
// current time when StartCoarseClock has not been called.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now().UTC()
}
