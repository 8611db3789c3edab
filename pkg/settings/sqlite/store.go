package sqlite

import (
	"codeberg.org/miketth/keymapd/pkg/settings"
	"codeberg.org/miketth/keymapd/pkg/settings/sqlite/migrations"
	"context"
	"database/sql"
	"errors"
	"fmt"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type SettingsStore struct {
	db      *sql.DB
	querier *Queries
}

func NewSettingsStore(filename string, log *zap.SugaredLogger) (*SettingsStore, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// in-memory databases are per connection
	db.SetMaxOpenConns(1)

	if _, err := migrations.Migrate(db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SettingsStore{
		db:      db,
		querier: New(db),
	}, nil
}

func (s *SettingsStore) Close() error {
	return s.db.Close()
}

func (s *SettingsStore) IsEnabled(keyboard string) (bool, error) {
	_, err := s.querier.GetSettings(context.Background(), keyboard)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("sqlite select: %w", err)
	}
	return true, nil
}

func (s *SettingsStore) Init(keyboard string) error {
	return s.Write(keyboard, settings.Defaults())
}

func (s *SettingsStore) Read(keyboard string) (settings.Settings, error) {
	row, err := s.querier.GetSettings(context.Background(), keyboard)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return settings.Settings{}, fmt.Errorf("read %q: %w", keyboard, settings.ErrNotInitialized)
	case err != nil:
		return settings.Settings{}, fmt.Errorf("sqlite select: %w", err)
	}

	return settings.Settings{
		DefaultLayer: uint8(row.DefaultLayer),
		Keymap: settings.KeymapConfig{
			NKRO:       row.Nkro,
			SwapAltGui: row.SwapAltGui,
		},
		Audio: row.Audio,
	}, nil
}

func (s *SettingsStore) Write(keyboard string, stored settings.Settings) error {
	if err := s.querier.UpsertSettings(context.Background(), UpsertSettingsParams{
		Keyboard:     keyboard,
		DefaultLayer: int64(stored.DefaultLayer),
		Nkro:         stored.Keymap.NKRO,
		SwapAltGui:   stored.Keymap.SwapAltGui,
		Audio:        stored.Audio,
	}); err != nil {
		return fmt.Errorf("sqlite upsert: %w", err)
	}

	return nil
}
