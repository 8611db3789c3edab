package main

import (
	"codeberg.org/miketth/keymapd/pkg/config"
	"codeberg.org/miketth/keymapd/pkg/firmware"
	"codeberg.org/miketth/keymapd/pkg/settings/json"
	"codeberg.org/miketth/keymapd/pkg/settings/memory"
	"codeberg.org/miketth/keymapd/pkg/settings/sqlite"
	"context"
	"fmt"
	"go.uber.org/zap"
	"os"
	"path/filepath"
)

type settingsStore struct {
	firmware.SettingsStore

	// looper, if set, runs alongside the daemon and closes the store itself
	// when ctx is done. Otherwise close must be called.
	looper func(ctx context.Context) error
	close  func() error
}

func openStore(cfg config.StoreConfig, log *zap.SugaredLogger) (*settingsStore, error) {
	if cfg.Backend != config.BackendMemory {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	switch cfg.Backend {
	case config.BackendMemory:
		return &settingsStore{
			SettingsStore: memory.NewSettingsStore(),
			close:         func() error { return nil },
		}, nil

	case config.BackendJSON:
		store, err := json.NewSettingsStore(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open json store: %w", err)
		}
		return &settingsStore{
			SettingsStore: store,
			looper:        store.SaveLooper,
			close:         store.Close,
		}, nil

	case config.BackendSQLite:
		store, err := sqlite.NewSettingsStore(cfg.Path, log)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return &settingsStore{
			SettingsStore: store,
			close:         store.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
