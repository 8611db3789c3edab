package uinput

import (
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"errors"
	"fmt"
	"github.com/holoplot/go-evdev"
	"syscall"
	"time"
)

var ErrUnmapped = errors.New("keycode has no evdev equivalent")

type device interface {
	WriteOne(event *evdev.InputEvent) error
	Close() error
}

// Keyboard reports keys through a uinput virtual device.
type Keyboard struct {
	dev device
}

// NewKeyboard creates the virtual device. It needs write access to /dev/uinput.
func NewKeyboard(name string) (*Keyboard, error) {
	dev, err := evdev.CreateDevice(name, evdev.InputID{
		BusType: 0x03,
		Vendor:  0x4b4d,
		Product: 0x0001,
		Version: 1,
	}, capabilities())
	if err != nil {
		return nil, fmt.Errorf("create uinput device: %w", err)
	}

	return &Keyboard{dev: dev}, nil
}

func (k *Keyboard) Close() error {
	return k.dev.Close()
}

func (k *Keyboard) Press(kc keycode.Keycode) error {
	return k.key(kc, 1)
}

func (k *Keyboard) Release(kc keycode.Keycode) error {
	return k.key(kc, 0)
}

func (k *Keyboard) Wheel(delta int) error {
	return k.write(evdev.EV_REL, evdev.REL_WHEEL, int32(delta))
}

func (k *Keyboard) key(kc keycode.Keycode, value int32) error {
	code, ok := EvdevCode(kc)
	if !ok {
		return fmt.Errorf("%s: %w", kc, ErrUnmapped)
	}
	return k.write(evdev.EV_KEY, code, value)
}

func (k *Keyboard) write(typ evdev.EvType, code evdev.EvCode, value int32) error {
	now := syscall.NsecToTimeval(time.Now().UnixNano())

	if err := k.dev.WriteOne(&evdev.InputEvent{Time: now, Type: typ, Code: code, Value: value}); err != nil {
		return fmt.Errorf("write %s: %w", evdev.CodeName(typ, code), err)
	}
	if err := k.dev.WriteOne(&evdev.InputEvent{Time: now, Type: evdev.EV_SYN, Code: evdev.SYN_REPORT}); err != nil {
		return fmt.Errorf("write sync: %w", err)
	}

	return nil
}
