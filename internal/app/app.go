// Package app wires configuration, logging and the update journal around a
// host screen. Both binaries build their screens through it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Mr-Dark-debug/rowkit/internal/config"
	"github.com/Mr-Dark-debug/rowkit/internal/document"
	"github.com/Mr-Dark-debug/rowkit/internal/journal"
	"github.com/Mr-Dark-debug/rowkit/pkg/rows"
	"github.com/Mr-Dark-debug/rowkit/pkg/screen"
	"github.com/Mr-Dark-debug/rowkit/pkg/style"
	"github.com/Mr-Dark-debug/rowkit/pkg/table"
)

// NewScreen builds a screen over host configured by cfg. The observers are
// registered on the screen's list controller.
func NewScreen(host screen.Host, cfg config.ScreenConfig, logger *slog.Logger, observers ...table.Observer) *screen.Screen {
	opts := []table.Option{
		table.WithLogger(logger),
		table.WithAnimationDuration(cfg.AnimationDuration()),
	}
	for _, o := range observers {
		opts = append(opts, table.WithObserver(o))
	}

	layout := screen.ConstrainedToSuperview
	if cfg.Layout == config.LayoutUnconstrained {
		layout = screen.Unconstrained
	}

	return screen.New(host,
		screen.WithController(table.New(opts...)),
		screen.WithInsets(style.Insets(cfg.InsetVertical, cfg.InsetHorizontal, cfg.InsetVertical, cfg.InsetHorizontal)),
		screen.WithLayoutMode(layout),
		screen.WithAnimated(cfg.Animated),
	)
}

// DocumentHost loads the document at path and returns a host serving its
// rows. Every action the document names calls onAction with its name.
func DocumentHost(path string, onAction func(name string)) (screen.Host, *document.Document, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, nil, err
	}

	actions := make(map[string]func())
	for _, name := range doc.Actions() {
		actions[name] = func() {
			if onAction != nil {
				onAction(name)
			}
		}
	}

	body, err := doc.Rows(actions)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return screen.HostFunc(func() []rows.RowModel { return body }), doc, nil
}

// ────────────────────────────────────────────────────────────
// Journal
// ────────────────────────────────────────────────────────────

// Journal is an open journal store with a running recording session.
type Journal struct {
	Store    *journal.DBService
	Recorder *journal.Recorder
}

// OpenJournal opens the store at cfg.Path, creating its directory, and
// starts recording a session for the named screen.
func OpenJournal(ctx context.Context, cfg config.JournalConfig, screenName string, logger *slog.Logger) (*Journal, error) {
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	store, err := journal.NewDBService(cfg.Path)
	if err != nil {
		return nil, err
	}

	rec := journal.NewRecorder(store, screenName, journal.Config{
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
	}, logger)
	if err := rec.Start(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return &Journal{Store: store, Recorder: rec}, nil
}

// Close stops the recorder, which flushes what is buffered, then closes
// the store.
func (j *Journal) Close() error {
	return errors.Join(j.Recorder.Stop(), j.Store.Close())
}
