// rowkit-demo shows an interactive rowkit screen in the terminal.
//
// Usage:
//
//	rowkit-demo [flags]
//
// Flags:
//
//	--config     Path to config file (default: $ROWKIT_CONFIG or ~/.config/rowkit/config.yaml)
//	--doc        Show a YAML screen document instead of the built-in example
//	--journal    Record every list update to the journal
//	--inspector  Open the inspector panel at start
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Mr-Dark-debug/rowkit/internal/app"
	"github.com/Mr-Dark-debug/rowkit/internal/config"
	"github.com/Mr-Dark-debug/rowkit/internal/example"
	"github.com/Mr-Dark-debug/rowkit/internal/logger"
	"github.com/Mr-Dark-debug/rowkit/internal/tui"
	"github.com/Mr-Dark-debug/rowkit/pkg/screen"
	"github.com/Mr-Dark-debug/rowkit/pkg/table"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	docPath := flag.String("doc", "", "YAML screen document to show instead of the example")
	record := flag.Bool("journal", false, "Record list updates to the journal")
	inspector := flag.Bool("inspector", false, "Open the inspector panel")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *record {
		cfg.Journal.Enabled = true
	}

	if err := logger.Init(logger.Options{
		Enabled: cfg.Log.Enabled,
		Dir:     cfg.Log.Dir,
		Level:   logger.ParseLevel(cfg.Log.Level),
	}); err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logger.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Host
	var (
		host   screen.Host
		title  = "Example"
		filter tui.Filter
		vm     *example.ExampleViewModel
	)
	if *docPath != "" {
		h, doc, err := app.DocumentHost(*docPath, func(name string) {
			logger.Info("document action", "action", name)
		})
		if err != nil {
			log.Fatalf("Failed to load document: %v", err)
		}
		host = h
		if doc.Title != "" {
			title = doc.Title
		} else {
			title = *docPath
		}
	} else {
		vm = example.NewExampleViewModel()
		host = example.NewExampleScreen(vm)
		filter = vm
	}

	// Observers
	activity := tui.NewActivity(0)
	observers := []table.Observer{activity}

	var journal *app.Journal
	if cfg.Journal.Enabled {
		journal, err = app.OpenJournal(ctx, cfg.Journal, title, logger.L)
		if err != nil {
			log.Fatalf("Failed to open journal at %s: %v", cfg.Journal.Path, err)
		}
		observers = append(observers, journal.Recorder)
		logger.Info("recording", "session", journal.Recorder.SessionID(), "path", cfg.Journal.Path)
	}

	scr := app.NewScreen(host, cfg.Screen, logger.L, observers...)
	if vm != nil {
		vm.OnChange(func() { scr.UpdateView() })
	}

	opts := []tui.Option{tui.WithActivity(activity), tui.WithInspector(*inspector)}
	if filter != nil {
		opts = append(opts, tui.WithFilter(filter))
	}
	model := tui.NewModel(title, scr, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := p.Run()

	if journal != nil {
		if err := journal.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing journal: %v\n", err)
		} else {
			fmt.Printf("Recorded session %s\n", journal.Recorder.SessionID())
		}
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", runErr)
		logger.Close()
		os.Exit(1)
	}
}
