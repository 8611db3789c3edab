package keymap

import (
	"fmt"
	"strings"
)

// LayerState is a bitset of enabled layers. Higher layers win.
type LayerState uint32

func (s LayerState) On(layer uint8) bool {
	return s&(1<<layer) != 0
}

func (s LayerState) With(layer uint8) LayerState {
	return s | 1<<layer
}

func (s LayerState) Without(layer uint8) LayerState {
	return s &^ (1 << layer)
}

// Highest returns the highest enabled layer, or zero for an empty set.
func (s LayerState) Highest() uint8 {
	for layer := 31; layer > 0; layer-- {
		if s.On(uint8(layer)) {
			return uint8(layer)
		}
	}
	return 0
}

func (s LayerState) String() string {
	var on []string
	for layer := uint8(0); layer < 32; layer++ {
		if s.On(layer) {
			on = append(on, fmt.Sprint(layer))
		}
	}
	return "{" + strings.Join(on, ",") + "}"
}

// UpdateTriLayer enables layer c when both a and b are enabled and disables it
// otherwise. All other bits are left as they are.
func UpdateTriLayer(state LayerState, a, b, c uint8) LayerState {
	if state.On(a) && state.On(b) {
		return state.With(c)
	}
	return state.Without(c)
}
