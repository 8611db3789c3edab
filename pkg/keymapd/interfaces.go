package keymapd

import (
	"codeberg.org/miketth/keymapd/pkg/firmware"
	"codeberg.org/miketth/keymapd/pkg/keycode"
)

type EventListener interface {
	ReadLine() (string, error)
}

// Engine applies parsed events. *firmware.Runtime implements it.
type Engine interface {
	Process(rec firmware.Record) error
	ProcessCombo(keys []keycode.Keycode, pressed bool) error
	DipSwitchUpdate(index int, active bool) error
	EncoderUpdate(index int, clockwise bool) error
}

var _ Engine = (*firmware.Runtime)(nil)
