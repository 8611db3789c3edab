package unicorne

import (
	"codeberg.org/miketth/keymapd/pkg/firmware"
	hidmem "codeberg.org/miketth/keymapd/pkg/hid/memory"
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"codeberg.org/miketth/keymapd/pkg/keymap"
	settingsmem "codeberg.org/miketth/keymapd/pkg/settings/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"testing"
)

type board struct {
	kb    *Keyboard
	out   *hidmem.Recorder
	store *settingsmem.SettingsStore
	rt    *firmware.Runtime
}

func boot(t *testing.T) *board {
	t.Helper()

	b := &board{
		kb:    New(),
		out:   hidmem.NewRecorder(),
		store: settingsmem.NewSettingsStore(),
	}
	b.rt = firmware.New(Name, b.kb, b.out, b.store, zaptest.NewLogger(t).Sugar())
	require.NoError(t, b.rt.Boot())
	return b
}

// find returns the first position of kc on layer.
func (b *board) find(t *testing.T, layer uint8, kc keycode.Keycode) keymap.Position {
	t.Helper()

	l := b.kb.Keymap().Layers[layer]
	for row := uint8(0); row < keymap.MatrixRows; row++ {
		for col := uint8(0); col < keymap.MatrixCols; col++ {
			if l[row][col] == kc {
				return keymap.Position{Row: row, Col: col}
			}
		}
	}
	t.Fatalf("%s not on layer %d", kc, layer)
	return keymap.Position{}
}

func (b *board) event(t *testing.T, pos keymap.Position, pressed bool, taps uint8) {
	t.Helper()
	require.NoError(t, b.rt.Process(firmware.Record{Pos: pos, Pressed: pressed, TapCount: taps}))
}

func TestKeymapIsValid(t *testing.T) {
	kb := New()
	assert.NoError(t, kb.Keymap().Validate(kb.Valid))
	assert.Len(t, kb.Keymap().Layers, len(layerNames))
}

func TestThumbKeys(t *testing.T) {
	l := New().Keymap().Layers[Dvorak]

	assert.Equal(t, keycode.MO(Nav), l.At(keymap.Position{Row: 3, Col: 3}))
	assert.Equal(t, keycode.MO(Sym), l.At(keymap.Position{Row: 3, Col: 4}))
	assert.Equal(t, keycode.KC_ENT, l.At(keymap.Position{Row: 3, Col: 5}))
	assert.Equal(t, keycode.KC_SPC, l.At(keymap.Position{Row: 7, Col: 5}))
	assert.Equal(t, keycode.MO(Num), l.At(keymap.Position{Row: 7, Col: 4}))
	assert.Equal(t, keycode.KC_RALT, l.At(keymap.Position{Row: 7, Col: 3}))
}

func TestAdjustFollowsSymAndNum(t *testing.T) {
	kb := New()

	for _, tc := range []struct {
		sym, num bool
	}{
		{false, false}, {true, false}, {false, true}, {true, true},
	} {
		var state keymap.LayerState
		if tc.sym {
			state = state.With(Sym)
		}
		if tc.num {
			state = state.With(Num)
		}
		got := kb.LayerStateSet(state.With(Adjust))
		assert.Equal(t, tc.sym && tc.num, got.On(Adjust), "sym=%v num=%v", tc.sym, tc.num)
		assert.Equal(t, tc.sym, got.On(Sym))
		assert.Equal(t, tc.num, got.On(Num))
	}
}

func TestHoldingSymAndNumReachesAdjust(t *testing.T) {
	b := boot(t)
	sym := b.find(t, Dvorak, SYM)
	num := b.find(t, Dvorak, NUM)

	b.event(t, sym, true, 0)
	b.event(t, num, true, 0)
	assert.True(t, b.rt.LayerState().On(Adjust))

	b.event(t, num, false, 0)
	assert.False(t, b.rt.LayerState().On(Adjust))
	b.event(t, sym, false, 0)
	assert.Equal(t, keymap.LayerState(0), b.rt.LayerState())
}

func TestSymbolModTaps(t *testing.T) {
	for _, tc := range []struct {
		kc   keycode.Keycode
		tap  []string
		hold []string
	}{
		{BR_TILD, []string{"+KC_LSFT", "+KC_GRV", "-KC_GRV", "-KC_LSFT"}, []string{"+KC_LGUI", "-KC_LGUI"}},
		{BR_DQUO, []string{"+KC_LSFT", "+KC_QUOT", "-KC_QUOT", "-KC_LSFT"}, []string{"+KC_LSFT", "-KC_LSFT"}},
	} {
		t.Run(tc.kc.String(), func(t *testing.T) {
			b := boot(t)
			sym := b.find(t, Dvorak, SYM)
			key := b.find(t, Sym, tc.kc)
			b.event(t, sym, true, 0)

			b.event(t, key, true, 1)
			b.event(t, key, false, 1)
			assert.Equal(t, tc.tap, b.out.Strings())

			b.out.Reset()
			b.event(t, key, true, 0)
			b.event(t, key, false, 0)
			assert.Equal(t, tc.hold, b.out.Strings())
		})
	}
}

func TestSymbolModTapHookResult(t *testing.T) {
	b := boot(t)

	cont, err := b.kb.ProcessRecord(b.rt, BR_TILD, firmware.Record{Pressed: true, TapCount: 1})
	require.NoError(t, err)
	assert.False(t, cont)

	b.out.Reset()
	cont, err = b.kb.ProcessRecord(b.rt, BR_TILD, firmware.Record{Pressed: true})
	require.NoError(t, err)
	assert.True(t, cont)
	assert.Empty(t, b.out.Strings())
}

func TestClipboardMacros(t *testing.T) {
	for kc, letter := range map[keycode.Keycode]string{
		MA_WI_COPY: "KC_C",
		MA_WI_CUT:  "KC_X",
		MA_WI_PSTE: "KC_V",
	} {
		t.Run(kc.String(), func(t *testing.T) {
			b := boot(t)
			nav := b.find(t, Dvorak, NAV)
			key := b.find(t, Nav, kc)

			b.event(t, nav, true, 0)
			b.event(t, key, true, 0)
			b.event(t, key, false, 0)
			b.event(t, nav, false, 0)

			assert.Equal(t, []string{"+KC_LCTL", "+" + letter, "-" + letter, "-KC_LCTL"}, b.out.Strings())
		})
	}
}

func TestDefaultLayerKeys(t *testing.T) {
	b := boot(t)

	cont, err := b.kb.ProcessRecord(b.rt, QWERTY, firmware.Record{Pressed: true})
	require.NoError(t, err)
	assert.False(t, cont)
	assert.Equal(t, Qwerty, b.rt.DefaultLayer())

	cont, err = b.kb.ProcessRecord(b.rt, QWERTY, firmware.Record{})
	require.NoError(t, err)
	assert.False(t, cont)

	stored, err := b.store.Read(Name)
	require.NoError(t, err)
	assert.Equal(t, Qwerty, stored.DefaultLayer)

	cont, err = b.kb.ProcessRecord(b.rt, DVORAK, firmware.Record{Pressed: true})
	require.NoError(t, err)
	assert.False(t, cont)
	assert.Equal(t, Dvorak, b.rt.DefaultLayer())
}

func TestOtherKeysContinue(t *testing.T) {
	b := boot(t)

	for _, kc := range []keycode.Keycode{keycode.KC_A, BR_J, SYM, BR_QUOT} {
		cont, err := b.kb.ProcessRecord(b.rt, kc, firmware.Record{Pressed: true, TapCount: 1})
		require.NoError(t, err)
		assert.True(t, cont, kc.String())
	}
	assert.Empty(t, b.out.Strings())
}

func TestCombos(t *testing.T) {
	b := boot(t)

	require.NoError(t, b.rt.ProcessCombo([]keycode.Keycode{keycode.KC_J, keycode.KC_K}, true))
	require.NoError(t, b.rt.ProcessCombo([]keycode.Keycode{keycode.KC_J, keycode.KC_K}, false))
	assert.Equal(t, []string{"+KC_ESC", "-KC_ESC"}, b.out.Strings())
	assert.False(t, b.rt.CapsWord())

	b.out.Reset()
	require.NoError(t, b.rt.ProcessCombo([]keycode.Keycode{BR_J, BR_W}, true))
	assert.True(t, b.rt.CapsWord())
	require.NoError(t, b.rt.ProcessCombo([]keycode.Keycode{BR_J, BR_W}, false))
	assert.Empty(t, b.out.Strings())
}

func TestCustomKeycodesAreValid(t *testing.T) {
	kb := New()
	for _, kc := range []keycode.Keycode{QWERTY, DVORAK, MT_TILD, MT_DQUO, MA_WI_COPY, MA_WI_CUT, MA_WI_PSTE, BR_TILD, BR_DQUO} {
		assert.True(t, kb.Valid(kc), kc.String())
	}
	assert.False(t, kb.Valid(MA_WI_PSTE+1))
}
