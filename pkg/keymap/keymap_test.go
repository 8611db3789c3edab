package keymap

import (
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestUpdateTriLayer(t *testing.T) {
	const lower, raise, adjust = 3, 4, 6

	cases := []struct {
		name  string
		state LayerState
		want  bool
	}{
		{"neither", 0, false},
		{"lower only", LayerState(0).With(lower), false},
		{"raise only", LayerState(0).With(raise), false},
		{"both", LayerState(0).With(lower).With(raise), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := UpdateTriLayer(tc.state, lower, raise, adjust)
			assert.Equal(t, tc.want, got.On(adjust))
			assert.Equal(t, tc.state.Without(adjust), got.Without(adjust), "other layers must not change")

			// a stale adjust bit is cleared too
			stale := UpdateTriLayer(tc.state.With(adjust), lower, raise, adjust)
			assert.Equal(t, tc.want, stale.On(adjust))
		})
	}
}

func TestLayerStateString(t *testing.T) {
	assert.Equal(t, "{}", LayerState(0).String())
	assert.Equal(t, "{0,3}", LayerState(0).With(0).With(3).String())
	assert.Equal(t, uint8(3), LayerState(0).With(0).With(3).Highest())
}

func TestLayoutsCoverDistinctPositions(t *testing.T) {
	for name, layout := range map[string]Layout{"split": Split3x6x3, "planck": PlanckGrid} {
		seen := make(map[Position]bool)
		for _, pos := range layout {
			assert.Truef(t, pos.valid(), "%s: %s outside matrix", name, pos)
			assert.Falsef(t, seen[pos], "%s: %s used twice", name, pos)
			seen[pos] = true
		}
	}

	assert.Len(t, Split3x6x3, 42)
	assert.Len(t, PlanckGrid, 48)
}

func TestBuildPanicsOnWrongKeyCount(t *testing.T) {
	assert.Panics(t, func() { PlanckGrid.Build(keycode.KC_A) })
}

func testKeymap() *Keymap {
	keys := func(kc keycode.Keycode) []keycode.Keycode {
		out := make([]keycode.Keycode, len(PlanckGrid))
		for i := range out {
			out[i] = kc
		}
		return out
	}

	base := PlanckGrid.Build(keys(keycode.KC_A)...)
	base[0][0] = keycode.KC_ESC
	overlay := PlanckGrid.Build(keys(keycode.KC_TRNS)...)
	overlay[0][1] = keycode.KC_1

	return &Keymap{
		Name:       "test",
		LayerNames: []string{"base", "overlay"},
		Layers:     []Layer{base, overlay},
		Combos: []Combo{
			{Keys: []keycode.Keycode{keycode.KC_J, keycode.KC_K}, Output: keycode.KC_ESC},
		},
	}
}

func TestResolveFallsThroughTransparent(t *testing.T) {
	km := testKeymap()
	def := LayerState(0).With(0)
	state := LayerState(0).With(1)

	assert.Equal(t, keycode.KC_ESC, km.Resolve(state, def, Position{0, 0}))
	assert.Equal(t, keycode.KC_1, km.Resolve(state, def, Position{0, 1}))
	assert.Equal(t, keycode.KC_A, km.Resolve(0, def, Position{0, 1}))
	assert.Equal(t, keycode.KC_NO, km.Resolve(0, 0, Position{0, 1}))
	assert.Equal(t, keycode.KC_NO, km.Resolve(state, def, Position{9, 9}))
}

func TestFindCombo(t *testing.T) {
	km := testKeymap()

	assert.Equal(t, 0, km.FindCombo([]keycode.Keycode{keycode.KC_K, keycode.KC_J}))
	assert.Equal(t, -1, km.FindCombo([]keycode.Keycode{keycode.KC_J}))
	assert.Equal(t, -1, km.FindCombo([]keycode.Keycode{keycode.KC_J, keycode.KC_J}))
}

func TestValidateReportsEveryProblem(t *testing.T) {
	km := testKeymap()
	require.NoError(t, km.Validate(keycode.Valid))

	km.Layers[1][2][2] = 0x0046
	km.Layers[1][2][3] = keycode.MO(9)
	km.Combos = append(km.Combos, Combo{Keys: []keycode.Keycode{keycode.KC_A}})

	err := km.Validate(keycode.Valid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid keycode 0x0046")
	assert.Contains(t, err.Error(), "targets a missing layer")
	assert.Contains(t, err.Error(), "combo 1 has 1 keys")
}

func TestEncoderLookup(t *testing.T) {
	m := EncoderMap{
		0: {{CCW: keycode.KC_WH_U, CW: keycode.KC_WH_D}},
		4: {{CCW: keycode.KC_VOLD, CW: keycode.KC_VOLU}},
	}

	kc, ok := m.Lookup(LayerState(0).With(0), 0, true)
	require.True(t, ok)
	assert.Equal(t, keycode.KC_WH_D, kc)

	kc, ok = m.Lookup(LayerState(0).With(0).With(4), 0, false)
	require.True(t, ok)
	assert.Equal(t, keycode.KC_VOLD, kc)

	_, ok = m.Lookup(LayerState(0).With(0), 1, true)
	assert.False(t, ok)
}
