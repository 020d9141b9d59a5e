package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/rowkit/internal/config"
	"github.com/Mr-Dark-debug/rowkit/internal/example"
	"github.com/Mr-Dark-debug/rowkit/internal/journal"
	"github.com/Mr-Dark-debug/rowkit/pkg/rows"
	"github.com/Mr-Dark-debug/rowkit/pkg/table"
)

func screenConfig() config.ScreenConfig {
	return config.ScreenConfig{
		Animated:        true,
		AnimationMs:     100,
		InsetHorizontal: 2,
		InsetVertical:   1,
		Layout:          config.LayoutConstrained,
	}
}

func TestNewScreenRegistersObservers(t *testing.T) {
	var reports []table.Report
	host := example.NewExampleScreen(example.NewExampleViewModel())
	scr := NewScreen(host, screenConfig(), nil, table.ObserverFunc(func(r table.Report) {
		reports = append(reports, r)
	}))

	scr.Init()
	require.Len(t, reports, 1)
	assert.Equal(t, 13, reports[0].Rows)
	assert.False(t, reports[0].Animated, "first population")

	scr.UpdateView()
	require.Len(t, reports, 2)
	assert.True(t, reports[1].Requested)
}

func TestNewScreenLayout(t *testing.T) {
	host := example.NewExampleScreen(example.NewExampleViewModel())

	constrained := NewScreen(host, screenConfig(), nil)
	constrained.Init()
	constrained.SetSize(40, 0)

	cfg := screenConfig()
	cfg.Layout = config.LayoutUnconstrained
	unconstrained := NewScreen(host, cfg, nil)
	unconstrained.Init()
	unconstrained.SetSize(40, 0)

	assert.NotEqual(t, constrained.View(), unconstrained.View())
}

const doc = `
title: Demo
rows:
  - spacer: 1
  - button: {title: Go, action: go}
    card: all
`

func TestDocumentHost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	var fired []string
	host, d, err := DocumentHost(path, func(name string) { fired = append(fired, name) })
	require.NoError(t, err)
	assert.Equal(t, "Demo", d.Title)

	scr := NewScreen(host, screenConfig(), nil)
	scr.Init()
	require.Equal(t, 2, scr.Controller().Len())
	require.Equal(t, rows.KindButton, scr.Controller().Row(1).Kind())

	assert.True(t, scr.Tap(1))
	assert.Equal(t, []string{"go"}, fired)
}

func TestDocumentHostErrors(t *testing.T) {
	_, _, err := DocumentHost(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestOpenJournalRecordsSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")
	j, err := OpenJournal(t.Context(), config.JournalConfig{
		Enabled:       true,
		Path:          path,
		BatchSize:     8,
		FlushInterval: 50 * time.Millisecond,
	}, "example", nil)
	require.NoError(t, err)

	host := example.NewExampleScreen(example.NewExampleViewModel())
	scr := NewScreen(host, screenConfig(), nil, j.Recorder)
	scr.Init()
	scr.UpdateView()
	sessionID := j.Recorder.SessionID()
	require.NoError(t, j.Close())

	store, err := journal.NewDBService(path)
	require.NoError(t, err)
	defer store.Close()

	stats, err := store.SessionStats(sessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Updates)
	assert.Equal(t, 13, stats.LastRowCount)

	sess, err := store.GetSession(sessionID)
	require.NoError(t, err)
	assert.Equal(t, "example", sess.Screen)
	assert.NotNil(t, sess.EndedAt)
}
