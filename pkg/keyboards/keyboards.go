// Package keyboards lists the keyboards keymapd knows about.
package keyboards

import (
	"codeberg.org/miketth/keymapd/pkg/firmware"
	"codeberg.org/miketth/keymapd/pkg/keyboards/planck"
	"codeberg.org/miketth/keymapd/pkg/keyboards/unicorne"
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownKeyboard = errors.New("unknown keyboard")

var registry = map[string]func() firmware.Keyboard{
	unicorne.Name: func() firmware.Keyboard { return unicorne.New() },
	planck.Name:   func() firmware.Keyboard { return planck.New() },
}

// Lookup returns a fresh instance of the named keyboard.
func Lookup(name string) (firmware.Keyboard, error) {
	newKeyboard, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyboard, name)
	}
	return newKeyboard(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
