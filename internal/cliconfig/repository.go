package cliconfig

import (
	"context"
	"fmt"
	"os"

	"github.com/bft-labs/bowltrack/internal/adapters/bolt"
	"github.com/bft-labs/bowltrack/internal/adapters/fs"
	"github.com/bft-labs/bowltrack/internal/adapters/fswatch"
	"github.com/bft-labs/bowltrack/internal/adapters/sqlite"
	"github.com/bft-labs/bowltrack/internal/ports"
)

// OpenRepository opens the session repository selected by cfg.Store.
// cfg must have been validated.
func OpenRepository(ctx context.Context, cfg Config) (ports.SessionRepository, error) {
	switch cfg.Store {
	case StoreFile:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return fs.NewSessionFileRepository(cfg.DataDir), nil
	case StoreSQLite:
		store, err := sqlite.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case StoreBolt:
		store, err := bolt.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}

// ChangeNotifier watches the files behind cfg's repository.
func ChangeNotifier(cfg Config, logger ports.Logger) ports.ChangeNotifier {
	if cfg.Store == StoreFile {
		return fswatch.New(logger, fswatch.DefaultDebounce, fswatch.DirTarget(cfg.DataDir))
	}
	return fswatch.New(logger, fswatch.DefaultDebounce, fswatch.FileTarget(cfg.DBPath))
}
