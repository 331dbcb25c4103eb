package httpapi

import "sync"

// keyedMutex serializes mutation intents per product key. The remote
// cart sync is a read-modify-write, so two in-flight requests for the
// same product could land out of order server-side; this is the
// server-side equivalent of the UI disabling a control while its
// request is in flight.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// lock blocks until the key is free and returns the unlock func.
func (k *keyedMutex) lock(key string) func() {
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
