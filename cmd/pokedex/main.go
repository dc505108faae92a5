package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pokedex"
	"github.com/fwojciec/pokedex/detail"
	pokehttp "github.com/fwojciec/pokedex/http"
	"github.com/fwojciec/pokedex/levenshtein"
	pokeslog "github.com/fwojciec/pokedex/slog"
	"github.com/fwojciec/pokedex/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Stdin feeds the interactive browse loop.
	Stdin io.Reader

	// SQLite database used by the snapshot store.
	DB *sqlite.DB

	// API overrides the HTTP client, for end-to-end testing.
	API pokedex.API

	// Snapshots overrides the SQLite snapshot store, for end-to-end testing.
	Snapshots pokedex.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pokedex"),
		kong.Description("Browse, search and filter Pokémon from the PokéAPI"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pokedex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	deps.Logger = logger

	// Wire the remote API
	api := m.API
	if api == nil {
		api = pokehttp.NewClient(
			pokehttp.WithBaseURL(cli.APIURL),
			pokehttp.WithTimeout(cli.Timeout),
			pokehttp.WithRetryMax(cli.Retries),
		)
	}
	var indexer pokedex.Indexer = levenshtein.NewIndexer(levenshtein.DefaultThreshold)
	if cli.Debug {
		api = pokeslog.NewLoggingAPI(api, logger)
		indexer = pokeslog.NewLoggingIndexer(indexer, logger)
	}
	deps.API = api
	deps.Indexer = indexer
	deps.Aggregator = detail.NewAggregator(api, logger)

	// Wire the snapshot store
	deps.Snapshots = m.Snapshots
	if deps.Snapshots == nil {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set POKEDEX_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Snapshots = sqlite.NewSnapshotService(m.DB)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("POKEDEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pokedex.db"
	}
	return filepath.Join(home, ".pokedex", "pokedex.db")
}
