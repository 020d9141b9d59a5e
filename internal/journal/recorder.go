package journal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Mr-Dark-debug/rowkit/pkg/table"
)

// Config holds the batching parameters of a Recorder.
type Config struct {
	// BatchSize is the number of updates buffered before a flush.
	BatchSize int `json:"batch_size"`
	// FlushInterval is the longest an update waits in the buffer.
	FlushInterval time.Duration `json:"flush_interval"`
}

// DefaultConfig returns the batching used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		BatchSize:     64,
		FlushInterval: 500 * time.Millisecond,
	}
}

// RecorderMetrics counts what a Recorder has done.
type RecorderMetrics struct {
	UpdatesRecorded  int64 `json:"updates_recorded"`
	DirectWrites     int64 `json:"direct_writes"`
	BatchesCommitted int64 `json:"batches_committed"`
	ErrorCount       int64 `json:"error_count"`
}

// Recorder is a table.Observer that journals every applied update.
//
// DidApply runs on the UI goroutine and never blocks on the database: the
// update is handed to a buffered channel and written by a flush goroutine,
// which commits every BatchSize updates or every FlushInterval. If the
// buffer is full the update is written directly so nothing is lost.
type Recorder struct {
	config  Config
	store   Store
	session Session
	logger  *slog.Logger
	metrics RecorderMetrics

	updates chan *Update

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
	cancel  context.CancelFunc
}

// NewRecorder creates a recorder for a new session of the named screen.
// A nil logger discards.
func NewRecorder(store Store, screen string, config Config, logger *slog.Logger) *Recorder {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultConfig().BatchSize
	}
	if config.FlushInterval <= 0 {
		config.FlushInterval = DefaultConfig().FlushInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{
		config:  config,
		store:   store,
		session: Session{SessionID: uuid.NewString(), Screen: screen},
		logger:  logger,
		updates: make(chan *Update, config.BatchSize*2),
	}
}

// SessionID is the id under which updates are recorded.
func (r *Recorder) SessionID() string {
	return r.session.SessionID
}

// Start opens the session and starts the flush goroutine.
func (r *Recorder) Start(ctx context.Context) error {
	r.session.StartedAt = time.Now().UnixNano()
	if err := r.store.CreateSession(&r.session); err != nil {
		return fmt.Errorf("starting journal session: %w", err)
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go r.flushLoop(ctx)

	r.logger.Info("journal session started", "session", r.session.SessionID, "screen", r.session.Screen)
	return nil
}

// Stop flushes what is buffered, waits for the flush goroutine and stamps
// the session end. Calling Stop twice is a no-op.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	close(r.updates)
	r.mu.Unlock()

	r.wg.Wait()
	if r.cancel != nil {
		r.cancel()
	}

	// Anything sent after a context cancellation ended the loop.
	var rest []*Update
	for u := range r.updates {
		rest = append(rest, u)
	}
	if len(rest) > 0 {
		if err := r.store.BatchInsertUpdates(rest); err != nil {
			atomic.AddInt64(&r.metrics.ErrorCount, 1)
			return fmt.Errorf("flushing journal tail: %w", err)
		}
		atomic.AddInt64(&r.metrics.BatchesCommitted, 1)
	}

	if err := r.store.EndSession(r.session.SessionID, time.Now().UnixNano()); err != nil {
		return fmt.Errorf("ending journal session: %w", err)
	}
	r.logger.Info("journal session ended", "session", r.session.SessionID,
		"updates", atomic.LoadInt64(&r.metrics.UpdatesRecorded))
	return nil
}

// Metrics returns a snapshot of the counters.
func (r *Recorder) Metrics() RecorderMetrics {
	return RecorderMetrics{
		UpdatesRecorded:  atomic.LoadInt64(&r.metrics.UpdatesRecorded),
		DirectWrites:     atomic.LoadInt64(&r.metrics.DirectWrites),
		BatchesCommitted: atomic.LoadInt64(&r.metrics.BatchesCommitted),
		ErrorCount:       atomic.LoadInt64(&r.metrics.ErrorCount),
	}
}

// DidApply implements table.Observer.
func (r *Recorder) DidApply(rep table.Report) {
	u := FromReport(r.session.SessionID, rep)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.stopped {
		select {
		case r.updates <- u:
			atomic.AddInt64(&r.metrics.UpdatesRecorded, 1)
			return
		default:
		}
	}

	// Buffer full or recorder stopped: write through.
	if err := r.store.BatchInsertUpdates([]*Update{u}); err != nil {
		r.logger.Error("direct journal write", "session", u.SessionID, "seq", u.Seq, "err", err)
		atomic.AddInt64(&r.metrics.ErrorCount, 1)
		return
	}
	atomic.AddInt64(&r.metrics.UpdatesRecorded, 1)
	atomic.AddInt64(&r.metrics.DirectWrites, 1)
}

// flushLoop commits buffered updates when BatchSize accumulate or
// FlushInterval elapses, and once more when the channel closes.
func (r *Recorder) flushLoop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.config.FlushInterval)
	defer ticker.Stop()

	buf := make([]*Update, 0, r.config.BatchSize)
	flush := func() {
		if len(buf) == 0 {
			return
		}
		if err := r.store.BatchInsertUpdates(buf); err != nil {
			r.logger.Error("flushing journal batch", "size", len(buf), "err", err)
			atomic.AddInt64(&r.metrics.ErrorCount, 1)
		} else {
			atomic.AddInt64(&r.metrics.BatchesCommitted, 1)
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
			// Drain without blocking; Stop still closes the channel later.
			for {
				select {
				case u, ok := <-r.updates:
					if !ok {
						flush()
						return
					}
					buf = append(buf, u)
				default:
					flush()
					return
				}
			}

		case u, ok := <-r.updates:
			if !ok {
				flush()
				return
			}
			buf = append(buf, u)
			if len(buf) >= r.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

// FromReport converts a controller report into a journal record.
func FromReport(sessionID string, rep table.Report) *Update {
	cs := rep.Changes
	u := &Update{
		SessionID:         sessionID,
		Seq:               int64(rep.Seq),
		At:                rep.At.UnixNano(),
		RequestedAnimated: rep.Requested,
		Animated:          rep.Animated,
		RowCount:          rep.Rows,
		Inserts:           len(cs.Inserts),
		Deletes:           len(cs.Deletes),
		Moves:             len(cs.Moves),
		Reloads:           len(cs.Reloads),
		Acquired:          rep.Acquired,
		Reconfigured:      rep.Reconfigured,
		Released:          rep.Released,
		Registered:        append([]string(nil), rep.Registered...),
		ElapsedMicros:     rep.Elapsed.Microseconds(),
	}
	for _, e := range cs.Edits() {
		u.Edits = append(u.Edits, Edit{
			Op:         e.Op.String(),
			From:       e.From,
			To:         e.To,
			Identifier: e.Identifier,
		})
	}
	return u
}
