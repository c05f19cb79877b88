package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/leengari/pagedb/internal/config"
	"github.com/leengari/pagedb/internal/engine"
	"github.com/leengari/pagedb/internal/logging"
	"github.com/leengari/pagedb/internal/repl"
	"github.com/leengari/pagedb/internal/storage/codec"
	"github.com/leengari/pagedb/internal/storage/table"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 after .exit, .quit or end of input,
// 1 on startup or input failures, 2 on bad flags.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pagedb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to YAML config file")
	prompt := fs.String("prompt", "", "Override the shell prompt")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	if *prompt != "" {
		cfg.Shell.Prompt = *prompt
	}

	logger, closeFn, err := logging.SetupLogger(cfg.Logging, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "failed to set up logging: %v\n", err)
		return 1
	}
	defer closeFn()

	slog.SetDefault(logger)

	tbl := table.New(cfg.Table.MaxPages)
	slog.Info("table ready",
		"row_size", codec.RowSize,
		"rows_per_page", codec.RowsPerPage,
		"max_pages", tbl.MaxPages(),
		"max_rows", tbl.MaxRows(),
		"max_memory", humanize.IBytes(uint64(tbl.MaxPages())*codec.PageSize),
	)

	eng := engine.New(tbl)
	eng.AddObserver(engine.NewLoggingObserver(logger))

	// Rows live only in memory; report what is being dropped.
	defer func() {
		stats := tbl.Stats()
		slog.Info("shutting down",
			"rows", stats.Rows,
			"pages_allocated", stats.PagesAllocated,
			"memory", humanize.IBytes(stats.BytesAllocated),
		)
	}()

	if err := repl.New(eng, stdin, stdout, cfg.Shell.Prompt).Run(); err != nil {
		slog.Error("shell stopped", "error", err)
		return 1
	}
	return 0
}
