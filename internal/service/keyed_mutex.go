package service

import "sync"

// keyedMutex provides mutual exclusion per string key. The sweep locks a
// note's ID around its coordinator call so that at most one sync attempt per
// note is ever in flight, which is the invariant protecting sync state from
// lost updates under concurrent workers.
//
// Entries are reference-counted and removed when the last holder unlocks, so
// the map never grows beyond the number of currently contended keys.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedLock)}
}

// Lock blocks until the key's lock is held by the caller.
func (k *keyedMutex) Lock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
}

// Unlock releases the key's lock. Must only be called by the current holder.
func (k *keyedMutex) Unlock(key string) {
	k.mu.Lock()
	l := k.locks[key]
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	l.mu.Unlock()
}
