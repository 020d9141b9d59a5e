package journal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func churn(seq int64, edits int) *Update {
	return &Update{SessionID: "s-1", Seq: seq, At: seq * 1000, RowCount: 10, Inserts: edits}
}

func TestDetectHotspots(t *testing.T) {
	// One outlier among n updates has z = sqrt(n-1).
	updates := []*Update{churn(1, 1), churn(2, 1), churn(3, 1), churn(4, 1),
		churn(5, 1), churn(6, 1), churn(7, 1), churn(8, 40)}

	hotspots := DetectHotspots(updates)
	require.Len(t, hotspots, 1)
	assert.Equal(t, int64(8), hotspots[0].Seq)
	assert.Equal(t, 40, hotspots[0].Edits)
	assert.Equal(t, "medium", hotspots[0].Severity)
	assert.InDelta(t, 2.65, hotspots[0].ZScore, 0.01)
}

func TestDetectHotspotsNeedsSpread(t *testing.T) {
	assert.Nil(t, DetectHotspots([]*Update{churn(1, 5), churn(2, 50)}))
	assert.Nil(t, DetectHotspots([]*Update{churn(1, 5), churn(2, 5), churn(3, 5)}))
}

func TestSummarize(t *testing.T) {
	svc := newTestStore(t)
	mustSession(t, svc, "s-1", "example", 100)
	require.NoError(t, svc.BatchInsertUpdates([]*Update{
		{SessionID: "s-1", Seq: 1, RowCount: 3, Inserts: 3, Acquired: 3},
		{SessionID: "s-1", Seq: 2, Animated: true, RowCount: 3, Inserts: 1, Deletes: 1, Reloads: 1, Reconfigured: 1},
	}))

	report, err := Summarize(svc, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "example", report.Session.Screen)
	assert.Equal(t, 2, report.Stats.Updates)
	assert.InDelta(t, 0.25, report.ReuseRatio, 1e-9)
	assert.InDelta(t, 0.5, report.AnimatedRatio, 1e-9)
	assert.Empty(t, report.Hotspots)

	md := FormatReport(report)
	assert.Contains(t, md, "# rowkit session report")
	assert.Contains(t, md, "`s-1`")
	assert.Contains(t, md, "| Updates | 2 |")
	assert.Contains(t, md, "| Reloads | 1 |")
	assert.NotContains(t, md, "## Churn hotspots")
}

func TestSummarizeWarnsWithoutInPlaceUpdates(t *testing.T) {
	svc := newTestStore(t)
	mustSession(t, svc, "s-1", "example", 100)
	require.NoError(t, svc.BatchInsertUpdates([]*Update{
		{SessionID: "s-1", Seq: 1, RowCount: 2, Inserts: 2, Acquired: 2},
	}))

	report, err := Summarize(svc, "s-1")
	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, FormatReport(report), "## Warnings")
}

func TestSummarizeUnknownSession(t *testing.T) {
	svc := newTestStore(t)
	_, err := Summarize(svc, "missing")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}
