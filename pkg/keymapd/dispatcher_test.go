package keymapd

import (
	"codeberg.org/miketth/keymapd/pkg/firmware"
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"codeberg.org/miketth/keymapd/pkg/keymap"
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
	"io"
	"testing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeListener struct {
	lines chan string
}

func newFakeListener(lines ...string) *fakeListener {
	l := &fakeListener{lines: make(chan string, len(lines))}
	for _, line := range lines {
		l.lines <- line
	}
	return l
}

func (l *fakeListener) ReadLine() (string, error) {
	line, ok := <-l.lines
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

type call struct {
	kind    string
	rec     firmware.Record
	keys    []keycode.Keycode
	index   int
	enabled bool
}

type fakeEngine struct {
	calls []call
	err   error
}

func (e *fakeEngine) Process(rec firmware.Record) error {
	e.calls = append(e.calls, call{kind: "key", rec: rec})
	return e.err
}

func (e *fakeEngine) ProcessCombo(keys []keycode.Keycode, pressed bool) error {
	e.calls = append(e.calls, call{kind: "combo", keys: keys, enabled: pressed})
	return e.err
}

func (e *fakeEngine) DipSwitchUpdate(index int, active bool) error {
	e.calls = append(e.calls, call{kind: "dip", index: index, enabled: active})
	return e.err
}

func (e *fakeEngine) EncoderUpdate(index int, clockwise bool) error {
	e.calls = append(e.calls, call{kind: "encoder", index: index, enabled: clockwise})
	return e.err
}

func TestProcessLine(t *testing.T) {
	tests := []struct {
		line string
		want call
	}{
		{"key>>2,3,1", call{kind: "key", rec: firmware.Record{Pos: keymap.Position{Row: 2, Col: 3}, Pressed: true}}},
		{"key>>7,5,0,2", call{kind: "key", rec: firmware.Record{Pos: keymap.Position{Row: 7, Col: 5}, TapCount: 2}}},
		{"key>>0,0,true,1", call{kind: "key", rec: firmware.Record{Pressed: true, TapCount: 1}}},
		{"combo>>1,KC_J,KC_K", call{kind: "combo", keys: []keycode.Keycode{keycode.KC_J, keycode.KC_K}, enabled: true}},
		{"combo>>0,j,0x321A", call{kind: "combo", keys: []keycode.Keycode{keycode.KC_J, keycode.RSftT(keycode.KC_W)}}},
		{"dip>>0,1", call{kind: "dip", enabled: true}},
		{"encoder>>1,0", call{kind: "encoder", index: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			engine := &fakeEngine{}
			d := NewDispatcher(nil, engine, zaptest.NewLogger(t).Sugar())

			require.NoError(t, d.processLine(tc.line))
			require.Len(t, engine.calls, 1)
			assert.Equal(t, tc.want, engine.calls[0])
		})
	}
}

func TestProcessLineRejectsMalformed(t *testing.T) {
	for _, line := range []string{
		"garbage",
		"key>>",
		"key>>1,2",
		"key>>8,0,1",
		"key>>0,6,1",
		"key>>0,0,maybe",
		"key>>0,0,1,300",
		"key>>-1,0,1",
		"combo>>1,KC_J",
		"combo>>yes,KC_J,KC_K",
		"combo>>1,KC_J,KC_NOPE",
		"dip>>0",
		"encoder>>x,1",
	} {
		t.Run(line, func(t *testing.T) {
			engine := &fakeEngine{}
			d := NewDispatcher(nil, engine, zaptest.NewLogger(t).Sugar())

			assert.ErrorIs(t, d.processLine(line), ErrInvalidLine)
			assert.Empty(t, engine.calls)
		})
	}
}

func TestProcessLineIgnoresUnknownEvents(t *testing.T) {
	engine := &fakeEngine{}
	d := NewDispatcher(nil, engine, zaptest.NewLogger(t).Sugar())

	assert.NoError(t, d.processLine("led>>1"))
	assert.Empty(t, engine.calls)
}

func TestProcessLinesUntilEOF(t *testing.T) {
	listener := newFakeListener("key>>0,0,1", "nonsense", "key>>0,0,0")
	close(listener.lines)
	engine := &fakeEngine{}
	d := NewDispatcher(listener, engine, zaptest.NewLogger(t).Sugar())

	err := d.ProcessLines(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Len(t, engine.calls, 2)
}

func TestProcessLinesSkipsUnknownCombos(t *testing.T) {
	listener := newFakeListener("combo>>1,KC_A,KC_B", "key>>0,0,1")
	close(listener.lines)
	engine := &fakeEngine{}
	d := NewDispatcher(listener, &comboMissEngine{engine}, zaptest.NewLogger(t).Sugar())

	err := d.ProcessLines(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Len(t, engine.calls, 2)
}

type comboMissEngine struct {
	*fakeEngine
}

func (e *comboMissEngine) ProcessCombo(keys []keycode.Keycode, pressed bool) error {
	_ = e.fakeEngine.ProcessCombo(keys, pressed)
	return firmware.ErrNoCombo
}

func TestProcessLinesStopsOnEngineError(t *testing.T) {
	listener := newFakeListener("key>>0,0,1")
	defer close(listener.lines)
	engine := &fakeEngine{err: errors.New("device gone")}
	d := NewDispatcher(listener, engine, zaptest.NewLogger(t).Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := d.ProcessLines(ctx)
	assert.ErrorIs(t, err, engine.err)
}

func TestProcessLinesStopsOnCancel(t *testing.T) {
	listener := newFakeListener()
	defer close(listener.lines)
	d := NewDispatcher(listener, &fakeEngine{}, zaptest.NewLogger(t).Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, d.ProcessLines(ctx), context.Canceled)
}
