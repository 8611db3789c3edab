package json

import (
	"codeberg.org/miketth/keymapd/pkg/settings"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

type SettingsStore struct {
	settings map[string]settings.Settings
	file     *os.File
	lock     sync.Mutex
	dirty    bool
}

func NewSettingsStore(filename string) (*SettingsStore, error) {
	fileExists := true
	info, err := os.Stat(filename)
	if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		fileExists = false
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	store := &SettingsStore{
		settings: make(map[string]settings.Settings),
		file:     file,
		dirty:    true,
	}

	if fileExists {
		err = store.load()
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("load: %w", err)
		}

		store.dirty = false
	}

	return store, nil
}

func (s *SettingsStore) Close() error {
	return s.file.Close()
}

func (s *SettingsStore) load() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	_, err := s.file.Seek(0, 0)
	if err != nil {
		return fmt.Errorf("seek to start of file: %w", err)
	}

	dec := json.NewDecoder(s.file)
	err = dec.Decode(&s.settings)
	if err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	return nil
}

// Save writes pending changes to disk.
func (s *SettingsStore) Save() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.dirty {
		return nil
	}

	_, err := s.file.Seek(0, 0)
	if err != nil {
		return fmt.Errorf("seek to start of file: %w", err)
	}

	err = s.file.Truncate(0)
	if err != nil {
		return fmt.Errorf("truncate file: %w", err)
	}

	enc := json.NewEncoder(s.file)
	enc.SetIndent("", "  ")
	err = enc.Encode(s.settings)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	s.dirty = false

	return nil
}

// SaveLooper periodically flushes changes until ctx is done, then saves one
// last time and closes the file.
func (s *SettingsStore) SaveLooper(ctx context.Context) error {
	defer s.file.Close()

	for {
		select {
		case <-ctx.Done():
			err := s.Save()
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}

			return ctx.Err()
		case <-time.After(time.Minute):
			err := s.Save()
			if err != nil {
				return fmt.Errorf("save: %w", err)
			}
		}
	}
}

func (s *SettingsStore) IsEnabled(keyboard string) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, ok := s.settings[keyboard]
	return ok, nil
}

func (s *SettingsStore) Init(keyboard string) error {
	return s.Write(keyboard, settings.Defaults())
}

func (s *SettingsStore) Read(keyboard string) (settings.Settings, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	stored, ok := s.settings[keyboard]
	if !ok {
		return settings.Settings{}, fmt.Errorf("read %q: %w", keyboard, settings.ErrNotInitialized)
	}
	return stored, nil
}

func (s *SettingsStore) Write(keyboard string, stored settings.Settings) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.settings[keyboard] = stored
	s.dirty = true
	return nil
}
