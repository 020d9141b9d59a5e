// Package journal records what a diffable list did over the life of a
// screen: one row per applied update, one row per edit of its changeset.
//
// The store is SQLite in WAL mode with schema migrations embedded in the
// binary. Recording happens off the UI goroutine through Recorder, which
// batches updates and commits them on size or time, and Summarize turns a
// session back into numbers a person can read.
package journal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Mr-Dark-debug/rowkit/pkg/jsonutil"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrSessionNotFound is returned when a session id has no row.
var ErrSessionNotFound = errors.New("journal: session not found")

// Store defines the persistence of update journals.
type Store interface {
	// CreateSession opens a new session record.
	CreateSession(s *Session) error
	// EndSession stamps the end time of a session.
	EndSession(sessionID string, endedAt int64) error

	// BatchInsertUpdates inserts updates and their edits in one transaction.
	BatchInsertUpdates(updates []*Update) error

	// GetSession returns one session or ErrSessionNotFound.
	GetSession(sessionID string) (*Session, error)
	// ListSessions returns sessions matching the filter, newest first.
	ListSessions(filter SessionFilter) ([]*Session, error)
	// ListUpdates returns the updates of a session ordered by seq.
	ListUpdates(sessionID string) ([]*Update, error)
	// ListEdits returns the edits of one update in apply order.
	ListEdits(sessionID string, seq int64) ([]Edit, error)
	// SessionStats aggregates the updates of a session.
	SessionStats(sessionID string) (*SessionStats, error)

	// Close shuts the database down.
	Close() error
}

// ============================================================
// Records
// ============================================================

// Session is one run of a screen.
type Session struct {
	SessionID string `json:"session_id"`
	Screen    string `json:"screen"`
	StartedAt int64  `json:"started_at"`
	EndedAt   *int64 `json:"ended_at,omitempty"`
}

// Update is one applied list update.
type Update struct {
	SessionID         string   `json:"session_id"`
	Seq               int64    `json:"seq"`
	At                int64    `json:"at"`
	RequestedAnimated bool     `json:"requested_animated"`
	Animated          bool     `json:"animated"`
	RowCount          int      `json:"row_count"`
	Inserts           int      `json:"inserts"`
	Deletes           int      `json:"deletes"`
	Moves             int      `json:"moves"`
	Reloads           int      `json:"reloads"`
	Acquired          int      `json:"acquired"`
	Reconfigured      int      `json:"reconfigured"`
	Released          int      `json:"released"`
	Registered        []string `json:"registered,omitempty"`
	ElapsedMicros     int64    `json:"elapsed_us"`

	Edits []Edit `json:"edits,omitempty"`
}

// EditCount is the number of structural edits in the update.
func (u *Update) EditCount() int {
	return u.Inserts + u.Deletes + u.Moves
}

// Edit is one operation of an update's changeset.
type Edit struct {
	Op         string `json:"op"`
	From       int    `json:"from"`
	To         int    `json:"to"`
	Identifier string `json:"identifier"`
}

// SessionFilter narrows ListSessions.
type SessionFilter struct {
	Screen *string
	Limit  int
	Offset int
}

// SessionStats is the aggregate of a session's updates.
type SessionStats struct {
	SessionID       string `json:"session_id"`
	Updates         int    `json:"updates"`
	AnimatedUpdates int    `json:"animated_updates"`
	Inserts         int    `json:"inserts"`
	Deletes         int    `json:"deletes"`
	Moves           int    `json:"moves"`
	Reloads         int    `json:"reloads"`
	Acquired        int    `json:"acquired"`
	Reconfigured    int    `json:"reconfigured"`
	Released        int    `json:"released"`
	LastRowCount    int    `json:"last_row_count"`
	TotalElapsedUs  int64  `json:"total_elapsed_us"`
	MaxElapsedUs    int64  `json:"max_elapsed_us"`
}

// ============================================================
// DBService
// ============================================================

// DBService is the SQLite implementation of Store.
type DBService struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex

	stmtInsertSession *sql.Stmt
	stmtEndSession    *sql.Stmt
	stmtInsertUpdate  *sql.Stmt
	stmtInsertEdit    *sql.Stmt
}

// NewDBService opens (or creates) the journal at path and migrates it to
// the latest schema. ":memory:" gives a private in-memory journal.
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening journal at %s: %w", path, err)
	}

	// One connection: SQLite has a single writer and ":memory:" is per connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{db: db, path: path}

	if err := svc.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating journal: %w", err)
	}
	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}
	return svc, nil
}

// migrate applies the embedded up migrations. The migrate instance is not
// closed because closing its sqlite3 driver closes the shared *sql.DB.
func (s *DBService) migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("reading embedded migrations: %w", err)
	}
	driver, err := sqlite3.WithInstance(s.db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtInsertSession, err = s.db.Prepare(`
		INSERT INTO sessions (session_id, screen, started_at, ended_at)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertSession: %w", err)
	}

	s.stmtEndSession, err = s.db.Prepare(`UPDATE sessions SET ended_at = ? WHERE session_id = ?`)
	if err != nil {
		return fmt.Errorf("preparing EndSession: %w", err)
	}

	s.stmtInsertUpdate, err = s.db.Prepare(`
		INSERT INTO updates (session_id, seq, at, requested_animated, animated, row_count,
			inserts, deletes, moves, reloads, acquired, reconfigured, released,
			registered, elapsed_us)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id, seq) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertUpdate: %w", err)
	}

	s.stmtInsertEdit, err = s.db.Prepare(`
		INSERT INTO edits (session_id, seq, idx, op, from_index, to_index, identifier)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id, seq, idx) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertEdit: %w", err)
	}

	return nil
}

// CreateSession inserts a session record.
func (s *DBService) CreateSession(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.stmtInsertSession.Exec(sess.SessionID, sess.Screen, sess.StartedAt, sess.EndedAt); err != nil {
		return fmt.Errorf("inserting session %s: %w", sess.SessionID, err)
	}
	return nil
}

// EndSession sets ended_at. It returns ErrSessionNotFound for an unknown id.
func (s *DBService) EndSession(sessionID string, endedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.stmtEndSession.Exec(endedAt, sessionID)
	if err != nil {
		return fmt.Errorf("ending session %s: %w", sessionID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("ending session %s: %w", sessionID, ErrSessionNotFound)
	}
	return nil
}

// BatchInsertUpdates writes updates with their edits in a single
// transaction. A (session, seq) pair already stored is skipped.
func (s *DBService) BatchInsertUpdates(updates []*Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning update batch: %w", err)
	}
	defer tx.Rollback()

	updStmt := tx.Stmt(s.stmtInsertUpdate)
	editStmt := tx.Stmt(s.stmtInsertEdit)
	for _, u := range updates {
		registered, err := jsonutil.EncodeStrings(u.Registered)
		if err != nil {
			return fmt.Errorf("encoding registered identifiers: %w", err)
		}

		_, err = updStmt.Exec(
			u.SessionID, u.Seq, u.At, u.RequestedAnimated, u.Animated, u.RowCount,
			u.Inserts, u.Deletes, u.Moves, u.Reloads,
			u.Acquired, u.Reconfigured, u.Released,
			registered, u.ElapsedMicros,
		)
		if err != nil {
			return fmt.Errorf("inserting update %s/%d: %w", u.SessionID, u.Seq, err)
		}

		for i, e := range u.Edits {
			if _, err := editStmt.Exec(u.SessionID, u.Seq, i, e.Op, e.From, e.To, e.Identifier); err != nil {
				return fmt.Errorf("inserting edit %d of update %s/%d: %w", i, u.SessionID, u.Seq, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing update batch: %w", err)
	}
	return nil
}

// GetSession looks a session up by id.
func (s *DBService) GetSession(sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := &Session{}
	err := s.db.QueryRow(`
		SELECT session_id, screen, started_at, ended_at FROM sessions WHERE session_id = ?
	`, sessionID).Scan(&sess.SessionID, &sess.Screen, &sess.StartedAt, &sess.EndedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying session %s: %w", sessionID, err)
	}
	return sess, nil
}

// ListSessions returns sessions ordered by started_at descending.
func (s *DBService) ListSessions(filter SessionFilter) ([]*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT session_id, screen, started_at, ended_at FROM sessions WHERE 1=1`
	args := make([]any, 0)

	if filter.Screen != nil {
		query += ` AND screen = ?`
		args = append(args, *filter.Screen)
	}

	query += ` ORDER BY started_at DESC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	} else {
		query += ` LIMIT 100`
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		sess := &Session{}
		if err := rows.Scan(&sess.SessionID, &sess.Screen, &sess.StartedAt, &sess.EndedAt); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// ListUpdates returns every update of a session, ordered by seq. Edits are
// not loaded; use ListEdits for one update.
func (s *DBService) ListUpdates(sessionID string) ([]*Update, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT session_id, seq, at, requested_animated, animated, row_count,
			inserts, deletes, moves, reloads, acquired, reconfigured, released,
			registered, elapsed_us
		FROM updates
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying updates for %s: %w", sessionID, err)
	}
	defer rows.Close()

	return scanUpdates(rows)
}

// ListEdits returns the edits of one update ordered by their apply index.
func (s *DBService) ListEdits(sessionID string, seq int64) ([]Edit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT op, from_index, to_index, identifier
		FROM edits
		WHERE session_id = ? AND seq = ?
		ORDER BY idx
	`, sessionID, seq)
	if err != nil {
		return nil, fmt.Errorf("querying edits for %s/%d: %w", sessionID, seq, err)
	}
	defer rows.Close()

	var edits []Edit
	for rows.Next() {
		var e Edit
		if err := rows.Scan(&e.Op, &e.From, &e.To, &e.Identifier); err != nil {
			return nil, fmt.Errorf("scanning edit row: %w", err)
		}
		edits = append(edits, e)
	}
	return edits, rows.Err()
}

// SessionStats aggregates a session. It returns ErrSessionNotFound when the
// session does not exist; a session without updates yields zero counts.
func (s *DBService) SessionStats(sessionID string) (*SessionStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions WHERE session_id = ?`, sessionID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("looking up session %s: %w", sessionID, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}

	stats := &SessionStats{SessionID: sessionID}
	err = s.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(animated), 0),
			COALESCE(SUM(inserts), 0),
			COALESCE(SUM(deletes), 0),
			COALESCE(SUM(moves), 0),
			COALESCE(SUM(reloads), 0),
			COALESCE(SUM(acquired), 0),
			COALESCE(SUM(reconfigured), 0),
			COALESCE(SUM(released), 0),
			COALESCE(SUM(elapsed_us), 0),
			COALESCE(MAX(elapsed_us), 0)
		FROM updates
		WHERE session_id = ?
	`, sessionID).Scan(
		&stats.Updates, &stats.AnimatedUpdates,
		&stats.Inserts, &stats.Deletes, &stats.Moves, &stats.Reloads,
		&stats.Acquired, &stats.Reconfigured, &stats.Released,
		&stats.TotalElapsedUs, &stats.MaxElapsedUs,
	)
	if err != nil {
		return nil, fmt.Errorf("querying stats for %s: %w", sessionID, err)
	}

	if stats.Updates > 0 {
		err = s.db.QueryRow(`
			SELECT row_count FROM updates WHERE session_id = ? ORDER BY seq DESC LIMIT 1
		`, sessionID).Scan(&stats.LastRowCount)
		if err != nil {
			return nil, fmt.Errorf("querying last row count for %s: %w", sessionID, err)
		}
	}
	return stats, nil
}

// Close closes the prepared statements and the database.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []*sql.Stmt{
		s.stmtInsertSession, s.stmtEndSession, s.stmtInsertUpdate, s.stmtInsertEdit,
	} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}

// ============================================================
// Scan Helpers
// ============================================================

func scanUpdates(rows *sql.Rows) ([]*Update, error) {
	var updates []*Update
	for rows.Next() {
		u := &Update{}
		var registered *string
		if err := rows.Scan(
			&u.SessionID, &u.Seq, &u.At, &u.RequestedAnimated, &u.Animated, &u.RowCount,
			&u.Inserts, &u.Deletes, &u.Moves, &u.Reloads,
			&u.Acquired, &u.Reconfigured, &u.Released,
			&registered, &u.ElapsedMicros,
		); err != nil {
			return nil, fmt.Errorf("scanning update row: %w", err)
		}
		reg, err := jsonutil.DecodeStrings(registered)
		if err != nil {
			return nil, fmt.Errorf("decoding registered identifiers of %s/%d: %w", u.SessionID, u.Seq, err)
		}
		u.Registered = reg
		updates = append(updates, u)
	}
	return updates, rows.Err()
}
