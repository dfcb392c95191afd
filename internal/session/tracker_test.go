package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

type memStore struct {
	err      error
	sessions []ReadingSession
	calls    int
}

func (m *memStore) AppendSession(sess *ReadingSession) error {
	m.calls++

	if m.err != nil {
		return m.err
	}

	for i := range m.sessions {
		if m.sessions[i].ID == sess.ID {
			m.sessions[i] = *sess
			return nil
		}
	}

	m.sessions = append(m.sessions, *sess)

	return nil
}

func (m *memStore) ListSessions() ([]ReadingSession, error) {
	return m.sessions, m.err
}

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestTrackerStartEnd(t *testing.T) {
	store := &memStore{}
	c := &clock{t: time.Date(2026, time.October, 14, 20, 0, 0, 0, time.Local)}

	var ended []*ReadingSession

	tracker := NewTracker(store, WithClock(c.now), OnEnd(
		func(_ context.Context, sess *ReadingSession) {
			ended = append(ended, sess)
		},
	))

	sess, err := tracker.Start(context.Background(), "Moby Dick")
	if err != nil {
		t.Fatal(err)
	}

	if !sess.IsOpen() || sess.Duration != 0 {
		t.Fatalf("expected an open session with zero duration, got %+v", sess)
	}

	if len(store.sessions) != 1 {
		t.Fatalf("expected open session to be persisted on start")
	}

	tracker.TurnPage(3)
	c.advance(25 * time.Minute)

	sess, err = tracker.End(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if sess.Duration != 25*time.Minute {
		t.Errorf("expected 25m duration, got %s", sess.Duration)
	}

	if sess.PagesRead != 3 {
		t.Errorf("expected 3 pages read, got %d", sess.PagesRead)
	}

	if tracker.Current() != nil {
		t.Error("expected tracker to be idle after end")
	}

	if len(store.sessions) != 1 || store.sessions[0].EndTime == nil {
		t.Errorf("expected the stored session to be finalized, got %+v", store.sessions)
	}

	if len(ended) != 1 || ended[0] != sess {
		t.Errorf("expected end hook to run once with the finalized session")
	}
}

func TestTrackerEndWhileIdle(t *testing.T) {
	store := &memStore{}
	hookRan := false

	tracker := NewTracker(store, OnEnd(func(context.Context, *ReadingSession) {
		hookRan = true
	}))

	sess, err := tracker.End(context.Background())
	if sess != nil || err != nil {
		t.Fatalf("expected no-op, got %v, %v", sess, err)
	}

	if store.calls != 0 || hookRan {
		t.Error("expected no persistence and no hooks while idle")
	}
}

func TestTrackerDoubleStart(t *testing.T) {
	store := &memStore{}
	tracker := NewTracker(store)

	first, _ := tracker.Start(context.Background(), "A")
	second, _ := tracker.Start(context.Background(), "B")

	if tracker.Current() != second {
		t.Fatal("expected the second session to be current")
	}

	if len(store.sessions) != 2 || !store.sessions[0].IsOpen() ||
		store.sessions[0].ID != first.ID {
		t.Errorf("expected the first session to remain open in the store")
	}
}

func TestTrackerEndPersistFailure(t *testing.T) {
	errDisk := errors.New("disk full")
	store := &memStore{}
	hookRan := false

	tracker := NewTracker(store, OnEnd(func(context.Context, *ReadingSession) {
		hookRan = true
	}))

	_, err := tracker.Start(context.Background(), "A")
	if err != nil {
		t.Fatal(err)
	}

	store.err = errDisk

	sess, err := tracker.End(context.Background())
	if !errors.Is(err, errDisk) {
		t.Fatalf("expected persistence error, got %v", err)
	}

	if sess == nil || sess.EndTime == nil {
		t.Error("expected the session to be finalized in memory")
	}

	if tracker.Current() != nil {
		t.Error("expected tracker to be idle after a failed end")
	}

	if !hookRan {
		t.Error("expected end hooks to run after a failed save")
	}
}
