package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/attendance"
	"github.com/gymrepublic/gym-console/internal/domain/auth"
	"github.com/gymrepublic/gym-console/internal/domain/notification"
	"github.com/gymrepublic/gym-console/internal/pkg/metrics"
)

type Options struct {
	Thresholds Thresholds
	// Location is the gym's local time zone used to stamp clock actions.
	Location *time.Location
	// ActiveWindow is how long a session keeps being refreshed after its last query.
	ActiveWindow time.Duration
	Now          func() time.Time
}

type AttendanceServiceImpl struct {
	reader     attendance.Reader
	gateway    attendance.Gateway
	notifier   notification.Notifier
	metrics    *metrics.Metrics
	classifier *Classifier
	store      *snapshotStore

	location     *time.Location
	activeWindow time.Duration
	now          func() time.Time

	inflightMu sync.Mutex
	inflight   map[string]struct{}
}

func NewAttendanceService(
	reader attendance.Reader,
	gateway attendance.Gateway,
	notifier notification.Notifier,
	m *metrics.Metrics,
	opts Options,
) *AttendanceServiceImpl {
	if opts.Thresholds == (Thresholds{}) {
		opts.Thresholds = DefaultThresholds()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.ActiveWindow <= 0 {
		opts.ActiveWindow = 15 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AttendanceServiceImpl{
		reader:       reader,
		gateway:      gateway,
		notifier:     notifier,
		metrics:      m,
		classifier:   NewClassifier(opts.Thresholds),
		store:        newSnapshotStore(),
		location:     opts.Location,
		activeWindow: opts.ActiveWindow,
		now:          opts.Now,
		inflight:     make(map[string]struct{}),
	}
}

// Classifier exposes the classifier used for queries.
func (s *AttendanceServiceImpl) Classifier() *Classifier {
	return s.classifier
}

// Query implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Query(ctx context.Context, sess auth.Session, filter attendance.Filter) (attendance.Result, error) {
	records, err := s.load(ctx, sess)
	if err != nil {
		return attendance.Result{}, err
	}

	filtered, warnings := FilterRecords(records, filter)
	for _, w := range warnings {
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityWarning, w)
	}

	summary := s.classifier.Summarize(filtered)
	s.metrics.SummaryComputed()

	return attendance.Result{
		Records:  s.classifier.ClassifyAll(filtered),
		Summary:  summary,
		Warnings: warnings,
	}, nil
}

// Refresh implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Refresh(ctx context.Context, sess auth.Session) error {
	_, err := s.fetch(ctx, sess)
	return err
}

// RefreshActive refetches the snapshot of every session queried recently.
func (s *AttendanceServiceImpl) RefreshActive(ctx context.Context) error {
	now := s.now()
	sessions := s.store.activeSince(now.Add(-s.activeWindow), now)
	for _, sess := range sessions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.fetch(ctx, sess); err != nil {
			slog.Warn("attendance refresh failed", "user_id", sess.UserID, "error", err)
		}
	}
	return nil
}

// Forget stops refreshing sess and drops its snapshot.
func (s *AttendanceServiceImpl) Forget(sess auth.Session) {
	s.store.forget(sess.UserID)
}

// load returns the freshest committed snapshot for the session, fetching a new one.
func (s *AttendanceServiceImpl) load(ctx context.Context, sess auth.Session) ([]attendance.Record, error) {
	s.store.touch(sess, s.now())

	records, err := s.fetch(ctx, sess)
	if err != nil {
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to load attendance records")
		return nil, err
	}
	return records, nil
}

// fetch reads the attendance list and commits it. When a newer fetch already
// committed, its snapshot is returned instead. When the snapshot was
// invalidated while this fetch was in flight, the list is fetched once more.
func (s *AttendanceServiceImpl) fetch(ctx context.Context, sess auth.Session) ([]attendance.Record, error) {
	for attempt := 0; attempt < 2; attempt++ {
		seq := s.store.begin(sess.UserID)
		records, err := s.reader.ListAttendance(ctx, sess)
		if err != nil {
			return nil, fmt.Errorf("list attendance: %w", err)
		}
		if s.store.commit(sess.UserID, seq, records, s.now()) {
			return records, nil
		}

		s.metrics.StaleSnapshotDiscarded()
		slog.Debug("discarded stale attendance snapshot", "user_id", sess.UserID, "seq", seq)
		if snap, ok := s.store.get(sess.UserID); ok {
			return snap.records, nil
		}
	}
	return nil, attendance.ErrSnapshotChanged
}

// Clock implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Clock(ctx context.Context, sess auth.Session, req attendance.ClockRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	clockType := attendance.ClockType(req.ClockType)
	release, err := s.acquire("clock:" + req.StaffID + ":" + req.ClockType)
	if err != nil {
		return err
	}
	defer release()

	cmd := attendance.ClockCommand{
		StaffID: req.StaffID,
		Type:    clockType,
		At:      s.now().In(s.location),
	}
	if err := s.gateway.Clock(ctx, sess, cmd); err != nil {
		slog.Error("clock action failed", "staff_id", req.StaffID, "clock_type", req.ClockType, "error", err)
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, fmt.Sprintf("Clock %s failed", clockType))
		return err
	}

	s.store.invalidate()
	s.notifier.Notify(ctx, sess.UserID, notification.SeveritySuccess, fmt.Sprintf("Clock %s successful", clockType))
	return nil
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, sess auth.Session, req attendance.MarkRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	release, err := s.acquire("mark:" + req.StaffID + ":" + req.Date)
	if err != nil {
		return err
	}
	defer release()

	date, _ := time.Parse("2006-01-02", req.Date)
	cmd := attendance.MarkCommand{
		StaffID: req.StaffID,
		Date:    date,
		Status:  attendance.ParseStatus(req.Status),
	}
	if err := s.gateway.Mark(ctx, sess, cmd); err != nil {
		slog.Error("mark attendance failed", "staff_id", req.StaffID, "date", req.Date, "error", err)
		s.notifier.Notify(ctx, sess.UserID, notification.SeverityError, "Failed to record attendance")
		return err
	}

	s.store.invalidate()
	s.notifier.Notify(ctx, sess.UserID, notification.SeveritySuccess, fmt.Sprintf("Marked %s for %s", cmd.Status, attendance.FormatDate(date)))
	return nil
}

// acquire rejects a second submission of the same action while the first is outstanding.
func (s *AttendanceServiceImpl) acquire(key string) (func(), error) {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()

	if _, busy := s.inflight[key]; busy {
		return nil, attendance.ErrActionInProgress
	}
	s.inflight[key] = struct{}{}
	return func() {
		s.inflightMu.Lock()
		defer s.inflightMu.Unlock()
		delete(s.inflight, key)
	}, nil
}
