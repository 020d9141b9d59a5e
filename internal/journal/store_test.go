package journal

import (
	"errors"
	"testing"
)

func newTestStore(t *testing.T) *DBService {
	t.Helper()
	svc, err := NewDBService(":memory:")
	if err != nil {
		t.Fatalf("NewDBService(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

func mustSession(t *testing.T, svc *DBService, id, screen string, started int64) {
	t.Helper()
	if err := svc.CreateSession(&Session{SessionID: id, Screen: screen, StartedAt: started}); err != nil {
		t.Fatalf("CreateSession(%s) failed: %v", id, err)
	}
}

// TestNewDBService verifies the embedded migrations apply to a fresh database.
func TestNewDBService(t *testing.T) {
	svc := newTestStore(t)

	var n int
	if err := svc.db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n); err != nil {
		t.Fatalf("reading schema_migrations: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 schema_migrations row, got %d", n)
	}
}

// TestMigrateIsIdempotent verifies a second migration run is a no-op.
func TestMigrateIsIdempotent(t *testing.T) {
	svc := newTestStore(t)
	if err := svc.migrate(); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc := newTestStore(t)
	mustSession(t, svc, "s-1", "example", 100)

	got, err := svc.GetSession("s-1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.Screen != "example" || got.StartedAt != 100 || got.EndedAt != nil {
		t.Errorf("unexpected session %+v", got)
	}

	if err := svc.EndSession("s-1", 250); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}
	got, err = svc.GetSession("s-1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.EndedAt == nil || *got.EndedAt != 250 {
		t.Errorf("expected ended_at=250, got %v", got.EndedAt)
	}
}

func TestUnknownSession(t *testing.T) {
	svc := newTestStore(t)

	if _, err := svc.GetSession("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetSession: expected ErrSessionNotFound, got %v", err)
	}
	if err := svc.EndSession("nope", 1); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("EndSession: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.SessionStats("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("SessionStats: expected ErrSessionNotFound, got %v", err)
	}
}

func TestBatchInsertUpdatesAndEdits(t *testing.T) {
	svc := newTestStore(t)
	mustSession(t, svc, "s-1", "example", 100)

	updates := []*Update{
		{SessionID: "s-1", Seq: 1, At: 110, RequestedAnimated: true, RowCount: 3, Inserts: 3, Acquired: 3,
			Registered: []string{"button:component.Button", "spacer:component.Spacer"},
			Edits: []Edit{
				{Op: "insert", From: -1, To: 0, Identifier: "spacer:component.Spacer"},
				{Op: "insert", From: -1, To: 1, Identifier: "button:component.Button"},
				{Op: "insert", From: -1, To: 2, Identifier: "spacer:component.Spacer"},
			}},
		{SessionID: "s-1", Seq: 2, At: 120, RequestedAnimated: true, Animated: true, RowCount: 3, Moves: 1,
			ElapsedMicros: 40,
			Edits:         []Edit{{Op: "move", From: 2, To: 1, Identifier: "spacer:component.Spacer"}}},
	}
	if err := svc.BatchInsertUpdates(updates); err != nil {
		t.Fatalf("BatchInsertUpdates failed: %v", err)
	}

	got, err := svc.ListUpdates("s-1")
	if err != nil {
		t.Fatalf("ListUpdates failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(got))
	}
	if got[0].Seq != 1 || got[1].Seq != 2 {
		t.Errorf("updates out of order: %d, %d", got[0].Seq, got[1].Seq)
	}
	if len(got[0].Registered) != 2 || got[0].Registered[0] != "button:component.Button" {
		t.Errorf("registered identifiers not round-tripped: %v", got[0].Registered)
	}
	if !got[1].Animated || got[1].Moves != 1 || got[1].ElapsedMicros != 40 {
		t.Errorf("unexpected second update %+v", got[1])
	}

	edits, err := svc.ListEdits("s-1", 1)
	if err != nil {
		t.Fatalf("ListEdits failed: %v", err)
	}
	if len(edits) != 3 {
		t.Fatalf("expected 3 edits, got %d", len(edits))
	}
	if edits[1].Op != "insert" || edits[1].To != 1 || edits[1].From != -1 {
		t.Errorf("unexpected edit %+v", edits[1])
	}
}

// TestBatchInsertSkipsDuplicates verifies a replayed batch does not fail
// or double count.
func TestBatchInsertSkipsDuplicates(t *testing.T) {
	svc := newTestStore(t)
	mustSession(t, svc, "s-1", "example", 100)

	u := &Update{SessionID: "s-1", Seq: 1, At: 110, Inserts: 1,
		Edits: []Edit{{Op: "insert", From: -1, To: 0, Identifier: "x"}}}
	for i := 0; i < 2; i++ {
		if err := svc.BatchInsertUpdates([]*Update{u}); err != nil {
			t.Fatalf("BatchInsertUpdates #%d failed: %v", i, err)
		}
	}

	stats, err := svc.SessionStats("s-1")
	if err != nil {
		t.Fatalf("SessionStats failed: %v", err)
	}
	if stats.Updates != 1 || stats.Inserts != 1 {
		t.Errorf("expected one update with one insert, got %+v", stats)
	}
}

// TestBatchInsertRequiresSession verifies the foreign key to sessions.
func TestBatchInsertRequiresSession(t *testing.T) {
	svc := newTestStore(t)
	err := svc.BatchInsertUpdates([]*Update{{SessionID: "ghost", Seq: 1}})
	if err == nil {
		t.Fatal("expected a foreign key error for an unknown session")
	}
}

func TestSessionStats(t *testing.T) {
	svc := newTestStore(t)
	mustSession(t, svc, "s-1", "example", 100)

	empty, err := svc.SessionStats("s-1")
	if err != nil {
		t.Fatalf("SessionStats on empty session failed: %v", err)
	}
	if empty.Updates != 0 || empty.LastRowCount != 0 {
		t.Errorf("expected zero stats, got %+v", empty)
	}

	err = svc.BatchInsertUpdates([]*Update{
		{SessionID: "s-1", Seq: 1, RowCount: 4, Inserts: 4, Acquired: 4, ElapsedMicros: 30},
		{SessionID: "s-1", Seq: 2, Animated: true, RowCount: 5, Inserts: 2, Deletes: 1, Reloads: 1,
			Acquired: 1, Reconfigured: 1, ElapsedMicros: 70},
	})
	if err != nil {
		t.Fatalf("BatchInsertUpdates failed: %v", err)
	}

	stats, err := svc.SessionStats("s-1")
	if err != nil {
		t.Fatalf("SessionStats failed: %v", err)
	}
	if stats.Updates != 2 {
		t.Errorf("expected 2 updates, got %d", stats.Updates)
	}
	if stats.AnimatedUpdates != 1 {
		t.Errorf("expected 1 animated update, got %d", stats.AnimatedUpdates)
	}
	if stats.Inserts != 6 || stats.Deletes != 1 || stats.Reloads != 1 {
		t.Errorf("unexpected edit totals %+v", stats)
	}
	if stats.Acquired != 5 || stats.Reconfigured != 1 {
		t.Errorf("unexpected container totals %+v", stats)
	}
	if stats.LastRowCount != 5 {
		t.Errorf("expected last row count 5, got %d", stats.LastRowCount)
	}
	if stats.TotalElapsedUs != 100 || stats.MaxElapsedUs != 70 {
		t.Errorf("unexpected timings total=%d max=%d", stats.TotalElapsedUs, stats.MaxElapsedUs)
	}
}

func TestListSessionsFilter(t *testing.T) {
	svc := newTestStore(t)
	mustSession(t, svc, "a", "example", 100)
	mustSession(t, svc, "b", "document", 200)
	mustSession(t, svc, "c", "example", 300)

	all, err := svc.ListSessions(SessionFilter{})
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(all) != 3 || all[0].SessionID != "c" || all[2].SessionID != "a" {
		t.Errorf("expected newest first [c b a], got %v", ids(all))
	}

	screen := "example"
	filtered, err := svc.ListSessions(SessionFilter{Screen: &screen})
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("expected 2 example sessions, got %v", ids(filtered))
	}

	page, err := svc.ListSessions(SessionFilter{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(page) != 1 || page[0].SessionID != "b" {
		t.Errorf("expected page [b], got %v", ids(page))
	}
}

func ids(sessions []*Session) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.SessionID
	}
	return out
}
