package service

import "sync"

// tripLocks hands out one mutex per trip ID so writes to the same trip
// never interleave their read-modify-write cycles.
type tripLocks struct {
	mu    sync.Mutex
	locks map[string]*tripLock
}

type tripLock struct {
	mu      sync.Mutex
	waiters int
}

func newTripLocks() *tripLocks {
	return &tripLocks{locks: make(map[string]*tripLock)}
}

// lock blocks until the caller holds tripID's lock and returns its release func.
func (l *tripLocks) lock(tripID string) func() {
	l.mu.Lock()
	tl, ok := l.locks[tripID]
	if !ok {
		tl = &tripLock{}
		l.locks[tripID] = tl
	}
	tl.waiters++
	l.mu.Unlock()

	tl.mu.Lock()

	return func() {
		tl.mu.Unlock()

		l.mu.Lock()
		tl.waiters--
		if tl.waiters == 0 {
			delete(l.locks, tripID)
		}
		l.mu.Unlock()
	}
}
