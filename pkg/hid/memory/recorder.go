package memory

import (
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"fmt"
	"sync"
)

type Kind int

const (
	Press Kind = iota
	Release
	Wheel
)

type Event struct {
	Kind  Kind
	Code  keycode.Keycode
	Delta int
}

func (e Event) String() string {
	switch e.Kind {
	case Press:
		return "+" + e.Code.String()
	case Release:
		return "-" + e.Code.String()
	}
	return fmt.Sprintf("wheel(%d)", e.Delta)
}

// Recorder keeps every report in order instead of sending it anywhere.
type Recorder struct {
	lock   sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Press(kc keycode.Keycode) error {
	r.add(Event{Kind: Press, Code: kc})
	return nil
}

func (r *Recorder) Release(kc keycode.Keycode) error {
	r.add(Event{Kind: Release, Code: kc})
	return nil
}

func (r *Recorder) Wheel(delta int) error {
	r.add(Event{Kind: Wheel, Delta: delta})
	return nil
}

func (r *Recorder) add(e Event) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.events = append(r.events, e)
}

func (r *Recorder) Events() []Event {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Event(nil), r.events...)
}

// Strings returns the events in their short form, e.g. "+KC_LSFT".
func (r *Recorder) Strings() []string {
	events := r.Events()
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.String())
	}
	return out
}

func (r *Recorder) Reset() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.events = nil
}
