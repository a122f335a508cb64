package services

import "sync"

// matchLocks serializes scorecard mutations per match inside this process. The row lock
// taken in the transaction covers other processes.
type matchLocks struct {
	mu    sync.Mutex
	locks map[int]*matchLock
}

type matchLock struct {
	sync.Mutex
	waiters int
}

func newMatchLocks() *matchLocks {
	return &matchLocks{locks: make(map[int]*matchLock)}
}

// lock blocks until the match is free and returns the matching unlock.
func (l *matchLocks) lock(matchID int) func() {
	l.mu.Lock()
	ml, ok := l.locks[matchID]
	if !ok {
		ml = &matchLock{}
		l.locks[matchID] = ml
	}
	ml.waiters++
	l.mu.Unlock()

	ml.Lock()
	return func() {
		ml.Unlock()
		l.mu.Lock()
		ml.waiters--
		if ml.waiters == 0 {
			delete(l.locks, matchID)
		}
		l.mu.Unlock()
	}
}
