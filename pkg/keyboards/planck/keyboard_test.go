package planck

import (
	"codeberg.org/miketth/keymapd/pkg/audio"
	"codeberg.org/miketth/keymapd/pkg/firmware"
	hidmem "codeberg.org/miketth/keymapd/pkg/hid/memory"
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"codeberg.org/miketth/keymapd/pkg/keymap"
	"codeberg.org/miketth/keymapd/pkg/settings"
	settingsmem "codeberg.org/miketth/keymapd/pkg/settings/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"testing"
)

type board struct {
	kb     *Keyboard
	out    *hidmem.Recorder
	store  *settingsmem.SettingsStore
	player *audio.LogPlayer
	rt     *firmware.Runtime
}

func boot(t *testing.T, caps firmware.Capabilities) *board {
	t.Helper()

	log := zaptest.NewLogger(t).Sugar()
	b := &board{
		kb:     New(),
		out:    hidmem.NewRecorder(),
		store:  settingsmem.NewSettingsStore(),
		player: audio.NewLogPlayer(log),
	}
	b.rt = firmware.New(Name, b.kb, b.out, b.store, log,
		firmware.WithPlayer(b.player),
		firmware.WithCapabilities(caps),
	)
	require.NoError(t, b.rt.Boot())
	return b
}

// at converts a visual grid coordinate to its matrix position.
func at(row, col int) keymap.Position {
	return keymap.PlanckGrid[row*12+col]
}

func (b *board) event(t *testing.T, pos keymap.Position, pressed bool, taps uint8) {
	t.Helper()
	require.NoError(t, b.rt.Process(firmware.Record{Pos: pos, Pressed: pressed, TapCount: taps}))
}

func (b *board) tap(t *testing.T, pos keymap.Position) {
	t.Helper()
	b.event(t, pos, true, 0)
	b.event(t, pos, false, 0)
}

var (
	lowerKey = at(3, 4)
	raiseKey = at(3, 7)
	backlit  = at(3, 0)
)

func TestKeymapIsValid(t *testing.T) {
	kb := New()
	assert.NoError(t, kb.Keymap().Validate(kb.Valid))
	assert.Len(t, kb.Keymap().Layers, len(layerNames))
}

func TestGridPositions(t *testing.T) {
	km := New().Keymap()

	assert.Equal(t, keycode.KC_ESC, km.Layers[Dvorak].At(at(0, 0)))
	assert.Equal(t, keycode.KC_F, km.Layers[Dvorak].At(at(0, 6)))
	assert.Equal(t, keycode.KC_RGHT, km.Layers[Dvorak].At(at(3, 11)))
	assert.Equal(t, LOWER, km.Layers[Dvorak].At(lowerKey))
	assert.Equal(t, RAISE, km.Layers[Dvorak].At(raiseKey))
	assert.Equal(t, PLOVER, km.Layers[Adjust].At(at(1, 10)))
	assert.Equal(t, EXT_PLV, km.Layers[Plover].At(at(3, 0)))
}

func TestAdjustFollowsLowerAndRaise(t *testing.T) {
	kb := New()

	for _, tc := range []struct {
		lower, raise bool
	}{
		{false, false}, {true, false}, {false, true}, {true, true},
	} {
		var state keymap.LayerState
		if tc.lower {
			state = state.With(Lower)
		}
		if tc.raise {
			state = state.With(Raise)
		}
		got := kb.LayerStateSet(state)
		assert.Equal(t, tc.lower && tc.raise, got.On(Adjust), "lower=%v raise=%v", tc.lower, tc.raise)
		assert.Equal(t, state, got.Without(Adjust))
	}
}

func TestDefaultLayerKeys(t *testing.T) {
	for kc, layer := range map[keycode.Keycode]uint8{
		QWERTY:  Qwerty,
		COLEMAK: Colemak,
		DVORAK:  Dvorak,
	} {
		t.Run(kc.String(), func(t *testing.T) {
			b := boot(t, firmware.Capabilities{})
			if layer == Dvorak {
				require.NoError(t, b.rt.SetSinglePersistentDefaultLayer(Colemak))
			}

			cont, err := b.kb.ProcessRecord(b.rt, kc, firmware.Record{Pressed: true})
			require.NoError(t, err)
			assert.False(t, cont)

			cont, err = b.kb.ProcessRecord(b.rt, kc, firmware.Record{})
			require.NoError(t, err)
			assert.False(t, cont)

			assert.Equal(t, layer, b.rt.DefaultLayer())
			stored, err := b.store.Read(Name)
			require.NoError(t, err)
			assert.Equal(t, layer, stored.DefaultLayer)
		})
	}
}

func TestSwitchToQwertyFromAdjust(t *testing.T) {
	b := boot(t, firmware.Capabilities{})

	b.event(t, lowerKey, true, 0)
	b.event(t, raiseKey, true, 0)
	b.tap(t, at(1, 7))
	b.event(t, raiseKey, false, 0)
	b.event(t, lowerKey, false, 0)

	assert.Equal(t, Qwerty, b.rt.DefaultLayer())
	assert.Empty(t, b.out.Strings())

	b.tap(t, at(0, 1))
	assert.Equal(t, []string{"+KC_Q", "-KC_Q"}, b.out.Strings())
}

func TestBacklitHoldsRightShift(t *testing.T) {
	b := boot(t, firmware.Capabilities{})

	b.event(t, backlit, true, 0)
	b.tap(t, at(1, 1))
	b.event(t, backlit, false, 0)

	assert.Equal(t, []string{"+KC_RSFT", "+KC_A", "-KC_A", "-KC_RSFT"}, b.out.Strings())
}

func TestSymbolModTaps(t *testing.T) {
	b := boot(t, firmware.Capabilities{})

	b.event(t, lowerKey, true, 0)
	b.event(t, at(2, 1), true, 1)
	b.event(t, at(2, 1), false, 1)
	b.event(t, at(2, 3), true, 1)
	b.event(t, at(2, 3), false, 1)

	assert.Equal(t, []string{
		"+KC_LSFT", "+KC_GRV", "-KC_GRV", "-KC_LSFT",
		"+KC_LSFT", "+KC_QUOT", "-KC_QUOT", "-KC_LSFT",
	}, b.out.Strings())

	b.out.Reset()
	b.event(t, at(2, 1), true, 0)
	b.event(t, at(2, 1), false, 0)
	assert.Equal(t, []string{"+KC_LGUI", "-KC_LGUI"}, b.out.Strings())
}

func TestClipboardMacros(t *testing.T) {
	b := boot(t, firmware.Capabilities{})
	nav := at(3, 3)

	b.event(t, nav, true, 0)
	b.tap(t, at(0, 3))
	b.event(t, nav, false, 0)

	assert.Equal(t, []string{"+KC_LCTL", "+KC_C", "-KC_C", "-KC_LCTL"}, b.out.Strings())
}

func TestEnterAndExitPlover(t *testing.T) {
	b := boot(t, firmware.Capabilities{Audio: true})

	b.event(t, lowerKey, true, 0)
	b.event(t, raiseKey, true, 0)
	require.True(t, b.rt.LayerState().On(Adjust))

	b.tap(t, at(1, 10))
	assert.True(t, b.rt.LayerState().On(Plover))
	assert.False(t, b.rt.LayerState().On(Lower))
	assert.False(t, b.rt.LayerState().On(Raise))
	assert.False(t, b.rt.LayerState().On(Adjust))
	assert.Equal(t, []string{audio.PloverSound.Name}, b.player.Played())

	stored, err := b.store.Read(Name)
	require.NoError(t, err)
	assert.True(t, stored.Keymap.NKRO)

	// Releasing the layer keys while in steno mode must not disturb it.
	b.event(t, raiseKey, false, 0)
	b.event(t, lowerKey, false, 0)
	assert.True(t, b.rt.LayerState().On(Plover))

	b.out.Reset()
	b.tap(t, at(1, 1))
	assert.Equal(t, []string{"+KC_Q", "-KC_Q"}, b.out.Strings())

	b.tap(t, at(3, 0))
	assert.False(t, b.rt.LayerState().On(Plover))
	assert.Equal(t, []string{audio.PloverSound.Name, audio.PloverGoodbyeSound.Name}, b.player.Played())
}

func TestEnterPloverKeepsOtherSettings(t *testing.T) {
	b := boot(t, firmware.Capabilities{})

	stored := settings.Defaults()
	stored.DefaultLayer = Colemak
	stored.Keymap.SwapAltGui = true
	require.NoError(t, b.store.Write(Name, stored))

	cont, err := b.kb.ProcessRecord(b.rt, PLOVER, firmware.Record{Pressed: true})
	require.NoError(t, err)
	assert.False(t, cont)

	got, err := b.store.Read(Name)
	require.NoError(t, err)
	assert.True(t, got.Keymap.NKRO)
	assert.True(t, got.Keymap.SwapAltGui)
	assert.Empty(t, b.player.Played())
}

func TestDipSwitch(t *testing.T) {
	b := boot(t, firmware.Capabilities{Audio: true})

	require.NoError(t, b.rt.DipSwitchUpdate(0, true))
	assert.True(t, b.rt.LayerState().On(Adjust))
	assert.Empty(t, b.player.Played())

	// The tri-layer policy must not undo the switch.
	b.tap(t, lowerKey)
	assert.True(t, b.rt.LayerState().On(Adjust))

	require.NoError(t, b.rt.DipSwitchUpdate(0, false))
	assert.False(t, b.rt.LayerState().On(Adjust))
	assert.Equal(t, []string{audio.PloverGoodbyeSound.Name}, b.player.Played())

	require.NoError(t, b.rt.DipSwitchUpdate(0, true))
	assert.True(t, b.rt.LayerState().On(Adjust))
	assert.Equal(t, []string{audio.PloverGoodbyeSound.Name, audio.PloverSound.Name}, b.player.Played())

	require.NoError(t, b.rt.DipSwitchUpdate(1, false))
	assert.True(t, b.rt.LayerState().On(Adjust))
}

func TestEnterPloverWithDipSwitchOn(t *testing.T) {
	b := boot(t, firmware.Capabilities{})
	require.NoError(t, b.rt.DipSwitchUpdate(0, true))
	require.True(t, b.rt.LayerState().On(Adjust))

	b.tap(t, at(1, 10))
	assert.True(t, b.rt.LayerState().On(Plover))
	assert.False(t, b.rt.LayerState().On(Adjust))

	b.out.Reset()
	b.tap(t, at(1, 1))
	assert.Equal(t, []string{"+KC_Q", "-KC_Q"}, b.out.Strings())

	stored, err := b.store.Read(Name)
	require.NoError(t, err)
	assert.True(t, stored.Keymap.NKRO)
}

func TestDipSwitchWithoutAudio(t *testing.T) {
	b := boot(t, firmware.Capabilities{})

	require.NoError(t, b.rt.DipSwitchUpdate(0, true))
	require.NoError(t, b.rt.DipSwitchUpdate(0, false))
	require.NoError(t, b.rt.DipSwitchUpdate(0, true))

	assert.True(t, b.rt.LayerState().On(Adjust))
	assert.Empty(t, b.player.Played())
}

func TestEncoder(t *testing.T) {
	b := boot(t, firmware.Capabilities{Encoders: true})

	require.NoError(t, b.rt.EncoderUpdate(0, true))
	require.NoError(t, b.rt.EncoderUpdate(0, false))

	b.event(t, raiseKey, true, 0)
	require.NoError(t, b.rt.EncoderUpdate(0, true))
	require.NoError(t, b.rt.EncoderUpdate(0, false))
	b.event(t, raiseKey, false, 0)

	assert.Equal(t, []string{
		"wheel(-1)", "wheel(1)",
		"+KC_VOLU", "-KC_VOLU", "+KC_VOLD", "-KC_VOLD",
	}, b.out.Strings())
}

func TestCombos(t *testing.T) {
	b := boot(t, firmware.Capabilities{})

	require.NoError(t, b.rt.ProcessCombo([]keycode.Keycode{keycode.KC_K, keycode.KC_J}, true))
	require.NoError(t, b.rt.ProcessCombo([]keycode.Keycode{keycode.KC_K, keycode.KC_J}, false))
	assert.Equal(t, []string{"+KC_ESC", "-KC_ESC"}, b.out.Strings())

	b.out.Reset()
	require.NoError(t, b.rt.ProcessCombo([]keycode.Keycode{BR_W, BR_J}, true))
	assert.True(t, b.rt.CapsWord())
	assert.Empty(t, b.out.Strings())
}
