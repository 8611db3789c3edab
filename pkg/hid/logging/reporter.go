// Package logging is an output that only logs reports, for running without
// access to /dev/uinput.
package logging

import (
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"go.uber.org/zap"
)

type Reporter struct {
	log *zap.SugaredLogger
}

func NewReporter(log *zap.SugaredLogger) *Reporter {
	return &Reporter{log: log}
}

func (r *Reporter) Press(kc keycode.Keycode) error {
	r.log.Infow("press", "keycode", kc)
	return nil
}

func (r *Reporter) Release(kc keycode.Keycode) error {
	r.log.Infow("release", "keycode", kc)
	return nil
}

func (r *Reporter) Wheel(delta int) error {
	r.log.Infow("wheel", "delta", delta)
	return nil
}

func (r *Reporter) Close() error {
	return nil
}
