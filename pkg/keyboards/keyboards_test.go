package keyboards

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEveryKeymapIsValid(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			kb, err := Lookup(name)
			require.NoError(t, err)

			km := kb.Keymap()
			assert.Equal(t, name, km.Name)
			assert.NoError(t, km.Validate(kb.Valid))
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("ergodox")
	assert.ErrorIs(t, err, ErrUnknownKeyboard)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"planck", "unicorne"}, Names())
}
