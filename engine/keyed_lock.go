package engine

import "sync"

// attemptKey identifies one (student, course) ledger entry.
type attemptKey struct {
	StudentID uint
	CourseID  uint
}

// keyedMutex serializes work per attemptKey. Submissions for different keys
// proceed in parallel; two near-simultaneous submissions for the same key
// are ordered so both can never observe the same attempt count.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[attemptKey]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[attemptKey]*sync.Mutex)}
}

// lock acquires the mutex for key and returns its unlock function.
func (k *keyedMutex) lock(key attemptKey) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
