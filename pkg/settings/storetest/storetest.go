// Package storetest holds the behaviour every settings backend must share.
package storetest

import (
	"codeberg.org/miketth/keymapd/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type Store interface {
	IsEnabled(keyboard string) (bool, error)
	Init(keyboard string) error
	Read(keyboard string) (settings.Settings, error)
	Write(keyboard string, s settings.Settings) error
}

// Run exercises a fresh store returned by newStore.
func Run(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("uninitialized", func(t *testing.T) {
		store := newStore(t)

		enabled, err := store.IsEnabled("planck")
		require.NoError(t, err)
		assert.False(t, enabled)

		_, err = store.Read("planck")
		assert.ErrorIs(t, err, settings.ErrNotInitialized)
	})

	t.Run("init writes defaults", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Init("planck"))

		enabled, err := store.IsEnabled("planck")
		require.NoError(t, err)
		assert.True(t, enabled)

		got, err := store.Read("planck")
		require.NoError(t, err)
		assert.Equal(t, settings.Defaults(), got)
	})

	t.Run("write then read", func(t *testing.T) {
		store := newStore(t)
		want := settings.Settings{
			DefaultLayer: 2,
			Keymap:       settings.KeymapConfig{NKRO: true, SwapAltGui: true},
			Audio:        false,
		}
		require.NoError(t, store.Write("planck", want))

		got, err := store.Read("planck")
		require.NoError(t, err)
		assert.Equal(t, want, got)

		enabled, err := store.IsEnabled("unicorne")
		require.NoError(t, err)
		assert.False(t, enabled, "keyboards are stored separately")
	})

	t.Run("init resets", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Write("planck", settings.Settings{DefaultLayer: 1, Keymap: settings.KeymapConfig{NKRO: true}}))
		require.NoError(t, store.Init("planck"))

		got, err := store.Read("planck")
		require.NoError(t, err)
		assert.Equal(t, settings.Defaults(), got)
	})
}
