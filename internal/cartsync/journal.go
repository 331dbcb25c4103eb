package cartsync

import "sync"

const defaultJournalSize = 256

// Journal keeps the recent mutation outcomes so it is auditable which
// cart changes ever reached the server. It also tracks divergence: the
// cart has drifted when an authenticated mutation fell back to the
// local branch and no sync has succeeded since. A successful sync
// replaces the local cart with the server's, which closes the window.
type Journal struct {
	mu      sync.RWMutex
	entries []Outcome
	max     int
	drifted bool
}

func NewJournal() *Journal {
	return &Journal{max: defaultJournalSize}
}

func (j *Journal) record(o Outcome, authenticated bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, o)
	if len(j.entries) > j.max {
		j.entries = j.entries[len(j.entries)-j.max:]
	}

	if o.Synced() {
		j.drifted = false
	} else if authenticated {
		j.drifted = true
	}
}

// Drifted reports whether local and remote cart state may currently
// disagree.
func (j *Journal) Drifted() bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.drifted
}

// Recent returns up to n outcomes, newest last.
func (j *Journal) Recent(n int) []Outcome {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if n <= 0 || n > len(j.entries) {
		n = len(j.entries)
	}
	out := make([]Outcome, n)
	copy(out, j.entries[len(j.entries)-n:])
	return out
}
