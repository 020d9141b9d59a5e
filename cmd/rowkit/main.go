// rowkit is the command-line companion of the rowkit list toolkit.
//
// Usage:
//
//	rowkit <command> [flags]
//
// Commands:
//
//	render    Print one frame of the example screen or a YAML document
//	sessions  List recorded journal sessions
//	updates   List the updates of a session
//	report    Summarize a session
//	version   Print version information
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/Mr-Dark-debug/rowkit/internal/app"
	"github.com/Mr-Dark-debug/rowkit/internal/config"
	"github.com/Mr-Dark-debug/rowkit/internal/example"
	"github.com/Mr-Dark-debug/rowkit/internal/journal"
	"github.com/Mr-Dark-debug/rowkit/internal/logger"
	"github.com/Mr-Dark-debug/rowkit/pkg/jsonutil"
	"github.com/Mr-Dark-debug/rowkit/pkg/screen"
	"github.com/Mr-Dark-debug/rowkit/pkg/timeutil"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const fallbackWidth = 80

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "render":
		cmdRender()
	case "sessions":
		cmdSessions()
	case "updates":
		cmdUpdates()
	case "report":
		cmdReport()
	case "version":
		fmt.Printf("rowkit v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`rowkit: diffable row lists for the terminal

Usage:
  rowkit <command> [flags]

Commands:
  render     Print one frame of the example screen or a YAML document
  sessions   List recorded journal sessions
  updates    List the updates of a session
  report     Summarize a session as markdown or JSON
  version    Print version information

Run 'rowkit <command> --help' for details on each command.`)
}

// loadConfig loads the config and starts the logger from it.
func loadConfig(path string) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(logger.Options{
		Enabled: cfg.Log.Enabled,
		Dir:     cfg.Log.Dir,
		Level:   logger.ParseLevel(cfg.Log.Level),
	}); err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	return cfg
}

func openStore(path string) *journal.DBService {
	if _, err := os.Stat(path); err != nil {
		log.Fatalf("No journal at %s; record one with: rowkit-demo --journal", path)
	}
	store, err := journal.NewDBService(path)
	if err != nil {
		log.Fatalf("Failed to open journal: %v", err)
	}
	return store
}

func writeJSON(v any) {
	if err := jsonutil.WriteIndented(os.Stdout, v); err != nil {
		log.Fatalf("Failed to write JSON: %v", err)
	}
}

// ────────────────────────────────────────────────────────────
// render
// ────────────────────────────────────────────────────────────

// cmdRender prints the whole list once, at the terminal width unless
// --width is given.
func cmdRender() {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	docPath := fs.String("doc", "", "YAML screen document to render instead of the example")
	width := fs.Int("width", 0, "Render width in columns (default: terminal width)")
	secondary := fs.Bool("secondary", false, "Render the example in its secondary state")
	query := fs.String("filter", "", "Filter the example entries")
	fs.Parse(os.Args[2:])

	cfg := loadConfig(*configPath)
	defer logger.Close()

	var host screen.Host
	if *docPath != "" {
		h, _, err := app.DocumentHost(*docPath, nil)
		if err != nil {
			log.Fatalf("Failed to load document: %v", err)
		}
		host = h
	} else {
		vm := example.NewExampleViewModel()
		if *secondary {
			vm.OnFirstButtonTap()
		}
		vm.SetQuery(*query)
		host = example.NewExampleScreen(vm)
	}

	w := *width
	if w <= 0 {
		w = terminalWidth()
	}

	scr := app.NewScreen(host, cfg.Screen, logger.L)
	scr.Init()
	scr.SetSize(w, 0)
	fmt.Println(scr.View())
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// ────────────────────────────────────────────────────────────
// sessions / updates / report
// ────────────────────────────────────────────────────────────

// cmdSessions lists recorded sessions, newest first.
func cmdSessions() {
	fs := flag.NewFlagSet("sessions", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	dbPath := fs.String("db", "", "Path to journal database (default: journal.path from config)")
	screenName := fs.String("screen", "", "Only sessions of this screen")
	limit := fs.Int("limit", 20, "Maximum results")
	format := fs.String("format", "text", "Output format: text, json")
	fs.Parse(os.Args[2:])

	cfg := loadConfig(*configPath)
	defer logger.Close()
	store := openStore(pick(*dbPath, cfg.Journal.Path))
	defer store.Close()

	filter := journal.SessionFilter{Limit: *limit}
	if *screenName != "" {
		filter.Screen = screenName
	}
	sessions, err := store.ListSessions(filter)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}

	switch *format {
	case "json":
		writeJSON(sessions)
	case "text":
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded.")
			return
		}
		now := time.Now()
		for _, s := range sessions {
			var ended int64
			if s.EndedAt != nil {
				ended = *s.EndedAt
			}
			fmt.Printf("%s  %-16s  %-14s  %s\n",
				s.SessionID, s.Screen,
				timeutil.RelativeTime(s.StartedAt, now),
				timeutil.FormatSpan(s.StartedAt, ended, now))
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *format)
		os.Exit(1)
	}
}

// cmdUpdates lists every update of a session with its edits.
func cmdUpdates() {
	fs := flag.NewFlagSet("updates", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	dbPath := fs.String("db", "", "Path to journal database (default: journal.path from config)")
	sessionID := fs.String("session", "", "Session ID (required)")
	edits := fs.Bool("edits", false, "Include the edits of each update")
	format := fs.String("format", "text", "Output format: text, json")
	fs.Parse(os.Args[2:])

	if *sessionID == "" {
		fmt.Fprintln(os.Stderr, "Error: --session is required")
		fs.Usage()
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	defer logger.Close()
	store := openStore(pick(*dbPath, cfg.Journal.Path))
	defer store.Close()

	updates, err := store.ListUpdates(*sessionID)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}
	if *edits {
		for _, u := range updates {
			if u.Edits, err = store.ListEdits(u.SessionID, u.Seq); err != nil {
				log.Fatalf("Query failed: %v", err)
			}
		}
	}

	switch *format {
	case "json":
		writeJSON(updates)
	case "text":
		for _, u := range updates {
			anim := " "
			if u.Animated {
				anim = "*"
			}
			fmt.Printf("%4d %s %s  rows %-4d -%d +%d ~%d reload %d  containers +%d ~%d -%d  %s\n",
				u.Seq, anim, timeutil.FormatTimestamp(u.At), u.RowCount,
				u.Deletes, u.Inserts, u.Moves, u.Reloads,
				u.Acquired, u.Reconfigured, u.Released,
				timeutil.FormatMicros(u.ElapsedMicros))
			for _, e := range u.Edits {
				fmt.Printf("       %-6s %3d -> %-3d %s\n", e.Op, e.From, e.To, e.Identifier)
			}
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *format)
		os.Exit(1)
	}
}

// cmdReport summarizes a session.
func cmdReport() {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	dbPath := fs.String("db", "", "Path to journal database (default: journal.path from config)")
	sessionID := fs.String("session", "", "Session ID (required)")
	format := fs.String("format", "markdown", "Output format: markdown, json")
	fs.Parse(os.Args[2:])

	if *sessionID == "" {
		fmt.Fprintln(os.Stderr, "Error: --session is required")
		fs.Usage()
		os.Exit(1)
	}

	cfg := loadConfig(*configPath)
	defer logger.Close()
	store := openStore(pick(*dbPath, cfg.Journal.Path))
	defer store.Close()

	report, err := journal.Summarize(store, *sessionID)
	if err != nil {
		log.Fatalf("Report failed: %v", err)
	}

	switch *format {
	case "json":
		writeJSON(report)
	case "markdown":
		fmt.Print(journal.FormatReport(report))
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *format)
		os.Exit(1)
	}
}

func pick(flagValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	return fallback
}
