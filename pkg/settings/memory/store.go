package memory

import (
	"codeberg.org/miketth/keymapd/pkg/settings"
	"fmt"
	"sync"
)

type SettingsStore struct {
	settings map[string]settings.Settings
	lock     sync.Mutex
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		settings: make(map[string]settings.Settings),
	}
}

func (s *SettingsStore) IsEnabled(keyboard string) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, ok := s.settings[keyboard]
	return ok, nil
}

func (s *SettingsStore) Init(keyboard string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.settings[keyboard] = settings.Defaults()
	return nil
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
	return nil
}
