package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/rowkit/pkg/component"
	"github.com/Mr-Dark-debug/rowkit/pkg/rows"
	"github.com/Mr-Dark-debug/rowkit/pkg/style"
	"github.com/Mr-Dark-debug/rowkit/pkg/table"
)

func label(text string) rows.RowModel {
	return rows.LabelListCell(component.NewLabelList(style.Plain(text))).MakeRowModel()
}

func TestRecorderJournalsControllerUpdates(t *testing.T) {
	store := newTestStore(t)
	rec := NewRecorder(store, "example", Config{BatchSize: 2, FlushInterval: time.Hour}, nil)
	require.NoError(t, rec.Start(context.Background()))

	ctrl := table.New(table.WithObserver(rec))
	a, b, c := label("A"), label("B"), label("C")
	ctrl.UpdateRows([]rows.RowModel{a, b, c})
	ctrl.UpdateRows([]rows.RowModel{a, c, b})
	ctrl.Update([]rows.RowModel{a, c}, false)

	require.NoError(t, rec.Stop())

	updates, err := store.ListUpdates(rec.SessionID())
	require.NoError(t, err)
	require.Len(t, updates, 3)

	first := updates[0]
	assert.Equal(t, int64(1), first.Seq)
	assert.Equal(t, 3, first.Inserts)
	assert.False(t, first.Animated, "first population is never animated")
	assert.True(t, first.RequestedAnimated)
	assert.NotEmpty(t, first.Registered)

	assert.Equal(t, 1, updates[1].Moves)
	assert.True(t, updates[1].Animated)
	assert.Equal(t, 1, updates[2].Deletes)
	assert.False(t, updates[2].RequestedAnimated)

	edits, err := store.ListEdits(rec.SessionID(), updates[1].Seq)
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, Edit{Op: "move", From: 2, To: 1, Identifier: c.CellIdentifier()}, edits[0])

	sess, err := store.GetSession(rec.SessionID())
	require.NoError(t, err)
	assert.NotNil(t, sess.EndedAt)

	m := rec.Metrics()
	assert.Equal(t, int64(3), m.UpdatesRecorded)
	assert.Zero(t, m.ErrorCount)
	assert.GreaterOrEqual(t, m.BatchesCommitted, int64(1))
}

func TestRecorderFlushesOnInterval(t *testing.T) {
	store := newTestStore(t)
	rec := NewRecorder(store, "example", Config{BatchSize: 100, FlushInterval: 10 * time.Millisecond}, nil)
	require.NoError(t, rec.Start(context.Background()))
	t.Cleanup(func() { rec.Stop() })

	ctrl := table.New(table.WithObserver(rec))
	ctrl.UpdateRows([]rows.RowModel{label("A")})

	require.Eventually(t, func() bool {
		updates, err := store.ListUpdates(rec.SessionID())
		return err == nil && len(updates) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestRecorderWritesThroughAfterStop(t *testing.T) {
	store := newTestStore(t)
	rec := NewRecorder(store, "example", DefaultConfig(), nil)
	require.NoError(t, rec.Start(context.Background()))
	require.NoError(t, rec.Stop())
	require.NoError(t, rec.Stop())

	rec.DidApply(table.Report{Seq: 7, At: time.Now(), Rows: 1})

	updates, err := store.ListUpdates(rec.SessionID())
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, int64(7), updates[0].Seq)
	assert.Equal(t, int64(1), rec.Metrics().DirectWrites)
}

func TestRecorderStopAfterCancelKeepsTail(t *testing.T) {
	store := newTestStore(t)
	rec := NewRecorder(store, "example", Config{BatchSize: 100, FlushInterval: time.Hour}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, rec.Start(ctx))
	cancel()

	rec.DidApply(table.Report{Seq: 1, At: time.Now()})
	rec.DidApply(table.Report{Seq: 2, At: time.Now()})
	require.NoError(t, rec.Stop())

	updates, err := store.ListUpdates(rec.SessionID())
	require.NoError(t, err)
	assert.Len(t, updates, 2)
}

func TestFromReport(t *testing.T) {
	a, b := label("A"), label("B")
	cs := table.Diff([]rows.RowModel{a}, []rows.RowModel{b, a})
	at := time.Unix(1700000000, 0)

	u := FromReport("s", table.Report{
		Seq: 4, At: at, Requested: true, Animated: true, Rows: 2, Changes: cs,
		Acquired: 1, Elapsed: 1500 * time.Microsecond,
	})

	assert.Equal(t, "s", u.SessionID)
	assert.Equal(t, int64(4), u.Seq)
	assert.Equal(t, at.UnixNano(), u.At)
	assert.Equal(t, 1, u.Inserts)
	assert.Equal(t, 1, u.EditCount())
	assert.Equal(t, int64(1500), u.ElapsedMicros)
	require.Len(t, u.Edits, 1)
	assert.Equal(t, "insert", u.Edits[0].Op)
	assert.Equal(t, 0, u.Edits[0].To)
}
