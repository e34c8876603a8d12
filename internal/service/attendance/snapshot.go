package attendance

import (
	"sync"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/pkg/seqguard"
)

type snapshot struct {
	records   []attendance.Record
	fetchedAt time.Time
}

type activeSession struct {
	sess     auth.Session
	lastSeen time.Time
}

// snapshotStore keeps the last committed attendance list per console user.
// Commits go through a sequence guard so an older fetch never replaces a
// newer one.
type snapshotStore struct {
	guard *seqguard.Guard

	mu        sync.RWMutex
	snapshots map[string]snapshot
	active    map[string]activeSession
}

func newSnapshotStore() *snapshotStore {
	return &snapshotStore{
		guard:     seqguard.New(),
		snapshots: make(map[string]snapshot),
		active:    make(map[string]activeSession),
	}
}

func (s *snapshotStore) begin(userID string) uint64 {
	return s.guard.Begin(userID)
}

// commit stores records fetched under seq. It reports false when a newer
// fetch was committed first or the snapshot was invalidated meanwhile.
func (s *snapshotStore) commit(userID string, seq uint64, records []attendance.Record, at time.Time) bool {
	return s.guard.Commit(userID, seq, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.snapshots[userID] = snapshot{records: records, fetchedAt: at}
	})
}

func (s *snapshotStore) get(userID string) (snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[userID]
	return snap, ok
}

// invalidate drops every snapshot and discards fetches already in flight.
// Attendance lists are shared, so a mutation by one user makes all of them stale.
func (s *snapshotStore) invalidate() {
	s.mu.RLock()
	users := make([]string, 0, len(s.snapshots)+len(s.active))
	for userID := range s.snapshots {
		users = append(users, userID)
	}
	for userID := range s.active {
		users = append(users, userID)
	}
	s.mu.RUnlock()

	for _, userID := range users {
		s.guard.Invalidate(userID, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.snapshots, userID)
		})
	}
}

func (s *snapshotStore) touch(sess auth.Session, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[sess.UserID] = activeSession{sess: sess, lastSeen: at}
}

// activeSince returns sessions seen after cutoff whose upstream token is still
// valid at now, and forgets the rest.
func (s *snapshotStore) activeSince(cutoff, now time.Time) []auth.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []auth.Session
	for userID, a := range s.active {
		if a.lastSeen.Before(cutoff) || a.sess.Expired(now) {
			delete(s.active, userID)
			delete(s.snapshots, userID)
			continue
		}
		out = append(out, a.sess)
	}
	return out
}

func (s *snapshotStore) forget(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, userID)
	delete(s.snapshots, userID)
}
