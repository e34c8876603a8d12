package seqguard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard_StaleCommitIsRejected(t *testing.T) {
	g := New()

	older := g.Begin("user-1")
	newer := g.Begin("user-1")

	var applied []uint64
	assert.True(t, g.Commit("user-1", newer, func() { applied = append(applied, newer) }))
	assert.False(t, g.Commit("user-1", older, func() { applied = append(applied, older) }))

	assert.Equal(t, []uint64{newer}, applied)
	assert.Equal(t, newer, g.Latest("user-1"))
}

func TestGuard_InOrderCommitsAreAccepted(t *testing.T) {
	g := New()

	first := g.Begin("k")
	assert.True(t, g.Commit("k", first, nil))

	second := g.Begin("k")
	assert.True(t, g.Commit("k", second, nil))
	assert.Equal(t, second, g.Latest("k"))
}

func TestGuard_KeysAreIndependent(t *testing.T) {
	g := New()

	a := g.Begin("a")
	b1 := g.Begin("b")
	b2 := g.Begin("b")

	assert.True(t, g.Commit("b", b2, nil))
	assert.True(t, g.Commit("a", a, nil))
	assert.False(t, g.Commit("b", b1, nil))
}

func TestGuard_InvalidateRejectsInFlight(t *testing.T) {
	g := New()

	inFlight := g.Begin("k")
	invalidated := false
	g.Invalidate("k", func() { invalidated = true })

	assert.True(t, invalidated)
	assert.False(t, g.Commit("k", inFlight, nil))

	next := g.Begin("k")
	assert.True(t, g.Commit("k", next, nil))
}

func TestGuard_ConcurrentCommitsKeepNewest(t *testing.T) {
	g := New()

	seqs := make([]uint64, 50)
	for i := range seqs {
		seqs[i] = g.Begin("k")
	}

	var wg sync.WaitGroup
	for i := len(seqs) - 1; i >= 0; i-- {
		wg.Add(1)
		go func(seq uint64) {
			defer wg.Done()
			g.Commit("k", seq, nil)
		}(seqs[i])
	}
	wg.Wait()

	assert.Equal(t, seqs[len(seqs)-1], g.Latest("k"))
}
