package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"staffplan/internal/cli"
	"staffplan/internal/config"
	"staffplan/internal/report"
	"staffplan/internal/storage"
	"staffplan/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Disable color when output is not a terminal.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		os.Setenv("NO_COLOR", "1")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.StoragePath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	kv, err := storage.OpenSQLiteKV(cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer kv.Close()

	docs := storage.NewDocumentStore(kv, logger)
	snaps := storage.NewSnapshotStore(kv, logger)
	ws := store.Load(docs, cfg.FiscalYear)

	app := &cli.App{
		Workspace:  ws,
		Documents:  docs,
		Snapshots:  snaps,
		Reports:    report.NewService(ws, cfg.FiscalStartMonth),
		StartMonth: cfg.FiscalStartMonth,
	}

	return cli.NewRootCmd(app).Execute()
}
