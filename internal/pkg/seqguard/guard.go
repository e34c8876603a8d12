// Package seqguard orders concurrent fetches of the same resource so that a
// response which started earlier can never overwrite one that started later.
package seqguard

import "sync"

// Guard hands out per-key sequence numbers and accepts a commit only when its
// sequence number is newer than anything already committed for that key.
type Guard struct {
	mu        sync.Mutex
	issued    map[string]uint64
	committed map[string]uint64
}

func New() *Guard {
	return &Guard{
		issued:    make(map[string]uint64),
		committed: make(map[string]uint64),
	}
}

// Begin reserves the next sequence number for key. Call it before the fetch starts.
func (g *Guard) Begin(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.issued[key]++
	return g.issued[key]
}

// Commit runs apply and records seq when seq is newer than the last commit for key.
// apply runs under the guard's lock. It returns false when the result is stale.
func (g *Guard) Commit(key string, seq uint64, apply func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if seq <= g.committed[key] {
		return false
	}
	g.committed[key] = seq
	if apply != nil {
		apply()
	}
	return true
}

// Invalidate rejects every fetch for key that has already begun, so that data
// fetched before a mutation is never committed after it.
func (g *Guard) Invalidate(key string, apply func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.committed[key] = g.issued[key]
	if apply != nil {
		apply()
	}
}

// Latest returns the last committed sequence number for key.
func (g *Guard) Latest(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.committed[key]
}
