package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"svw.info/elevator/internal/config"
	"svw.info/elevator/internal/hint"
	"svw.info/elevator/internal/infrastructure/storage"
	"svw.info/elevator/internal/ports"
	"svw.info/elevator/internal/solver"
	"svw.info/elevator/internal/usecase"
)

// app bundles what every command needs.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	uc     *usecase.Service
	close  func() error
}

// newApp loads configuration and wires providers → use cases.
func newApp(logOut io.Writer) (*app, error) {
	v, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		v.Set(config.KeyLogLevel, logLevel)
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger := config.NewLogger(cfg.LogLevel, logOut)

	closeFn := func() error { return nil }
	var st ports.Storage
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := storage.OpenSQLite(cfg.PersistPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		st, closeFn = db, db.Close
	default:
		if err := os.MkdirAll(cfg.PersistPath, 0o755); err != nil {
			return nil, err
		}
		st = storage.NewFS(cfg.PersistPath)
	}

	s := solver.NewBFS(logger)
	uc := usecase.NewService(s, hint.NewNext(s), st, logger)
	return &app{cfg: cfg, logger: logger, uc: uc, close: closeFn}, nil
}

// readPuzzle reads the named file, or stdin for "" and "-".
func readPuzzle(in io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
