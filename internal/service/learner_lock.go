package service

import "sync"

// learnerLocks serialises read-modify-write of one learner's profile inside
// this process. Entries are reference counted and dropped when unused.
type learnerLocks struct {
	mu    sync.Mutex
	locks map[string]*learnerLock
}

type learnerLock struct {
	mu   sync.Mutex
	refs int
}

func newLearnerLocks() *learnerLocks {
	return &learnerLocks{locks: make(map[string]*learnerLock)}
}

func (l *learnerLocks) lock(learnerID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[learnerID]
	if !ok {
		entry = &learnerLock{}
		l.locks[learnerID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, learnerID)
		}
		l.mu.Unlock()
	}
}

func (l *learnerLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
