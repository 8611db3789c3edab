package firmware

import (
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"codeberg.org/miketth/keymapd/pkg/keymap"
	"codeberg.org/miketth/keymapd/pkg/settings"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ErrNoCombo     = errors.New("no such combo")
	ErrNotBooted   = errors.New("runtime not booted")
	ErrInvalidKeys = errors.New("keymap contains invalid keycodes")
)

// Runtime holds the mutable keyboard state and applies key events to it.
// It is not safe for concurrent use; callers feed it from a single goroutine.
type Runtime struct {
	name     string
	keyboard Keyboard
	keymap   *keymap.Keymap
	out      Reporter
	store    SettingsStore
	player   Player
	observer Observer
	caps     Capabilities
	level    *zap.AtomicLevel
	log      *zap.SugaredLogger

	booted       bool
	settings     settings.Settings
	layers       keymap.LayerState
	locked       keymap.LayerState
	defaultLayer keymap.LayerState

	held        map[keymap.Position]keycode.Keycode
	releases    map[keymap.Position]func() error
	momentary   map[uint8]int
	oneShotMods keycode.Mod
	capsWord    bool
}

type Option func(*Runtime)

func WithPlayer(player Player) Option {
	return func(r *Runtime) { r.player = player }
}

func WithObserver(observer Observer) Option {
	return func(r *Runtime) { r.observer = observer }
}

func WithCapabilities(caps Capabilities) Option {
	return func(r *Runtime) { r.caps = caps }
}

// WithLevel lets DB_TOGG flip the given logger level between debug and info.
func WithLevel(level *zap.AtomicLevel) Option {
	return func(r *Runtime) { r.level = level }
}

func New(
	name string,
	keyboard Keyboard,
	out Reporter,
	store SettingsStore,
	log *zap.SugaredLogger,
	opts ...Option,
) *Runtime {
	r := &Runtime{
		name:      name,
		keyboard:  keyboard,
		keymap:    keyboard.Keymap(),
		out:       out,
		store:     store,
		observer:  nopObserver{},
		log:       log.With("keyboard", name),
		held:      make(map[keymap.Position]keycode.Keycode),
		releases:  make(map[keymap.Position]func() error),
		momentary: make(map[uint8]int),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Boot validates the keymap and restores the persisted settings, initializing
// them first if this keyboard never had any.
func (r *Runtime) Boot() error {
	if err := r.keymap.Validate(r.keyboard.Valid); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKeys, err)
	}

	enabled, err := r.store.IsEnabled(r.name)
	if err != nil {
		return fmt.Errorf("check settings: %w", err)
	}
	if !enabled {
		r.log.Info("no saved settings, initializing")
		if err := r.store.Init(r.name); err != nil {
			return fmt.Errorf("init settings: %w", err)
		}
	}

	r.settings, err = r.store.Read(r.name)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	if int(r.settings.DefaultLayer) >= len(r.keymap.Layers) {
		r.log.Warnw("saved default layer does not exist, using the first one", "layer", r.settings.DefaultLayer)
		r.settings.DefaultLayer = 0
	}

	r.defaultLayer = keymap.LayerState(0).With(r.settings.DefaultLayer)
	r.layers = 0
	r.locked = 0
	r.booted = true

	r.log.Infow("booted",
		"default_layer", r.keymap.LayerName(r.settings.DefaultLayer),
		"nkro", r.settings.Keymap.NKRO,
		"audio", r.AudioEnabled(),
	)

	return nil
}

// Process applies one key event: the keyboard hook runs first and the
// default action only if the hook lets it.
func (r *Runtime) Process(rec Record) error {
	if !r.booted {
		return ErrNotBooted
	}
	r.observer.KeyEvent(rec.Pressed)

	kc := r.resolve(rec)
	r.log.Debugw("key event", "pos", rec.Pos, "pressed", rec.Pressed, "taps", rec.TapCount, "keycode", kc)

	cont, err := r.keyboard.ProcessRecord(r, kc, rec)
	if err != nil {
		return fmt.Errorf("process %s: %w", kc, err)
	}

	if !rec.Pressed {
		release, ok := r.releases[rec.Pos]
		if !ok {
			return nil
		}
		delete(r.releases, rec.Pos)
		if err := release(); err != nil {
			return fmt.Errorf("release %s: %w", kc, err)
		}
		return nil
	}

	if !cont {
		return nil
	}

	release, err := r.press(kc, rec)
	if err != nil {
		return fmt.Errorf("press %s: %w", kc, err)
	}
	if release != nil {
		r.releases[rec.Pos] = release
	}

	return nil
}

// resolve looks the keycode up on press and reuses it on release, so a key
// released after a layer change still releases what it pressed.
func (r *Runtime) resolve(rec Record) keycode.Keycode {
	if !rec.Pressed {
		if kc, ok := r.held[rec.Pos]; ok {
			delete(r.held, rec.Pos)
			return kc
		}
	}

	kc := r.keymap.Resolve(r.LayerState(), r.defaultLayer, rec.Pos)
	if rec.Pressed {
		r.held[rec.Pos] = kc
	}
	return kc
}

// ProcessCombo handles a completed or released chord identified by its keys.
func (r *Runtime) ProcessCombo(keys []keycode.Keycode, pressed bool) error {
	index := r.keymap.FindCombo(keys)
	if index < 0 {
		return fmt.Errorf("%w: %v", ErrNoCombo, keys)
	}
	return r.ProcessComboIndex(index, pressed)
}

func (r *Runtime) ProcessComboIndex(index int, pressed bool) error {
	if !r.booted {
		return ErrNotBooted
	}
	if index < 0 || index >= len(r.keymap.Combos) {
		return fmt.Errorf("%w: index %d", ErrNoCombo, index)
	}

	combo := r.keymap.Combos[index]
	if pressed {
		r.observer.ComboFired(index)
	}
	r.log.Debugw("combo", "index", index, "pressed", pressed)

	if combo.Output == keycode.KC_NO {
		return r.keyboard.ComboEvent(r, index, pressed)
	}

	if pressed {
		return r.RegisterCode16(combo.Output)
	}
	return r.UnregisterCode16(combo.Output)
}

func (r *Runtime) DipSwitchUpdate(index int, active bool) error {
	if !r.booted {
		return ErrNotBooted
	}

	handler, ok := r.keyboard.(DipSwitchHandler)
	if !ok {
		r.log.Debugw("keyboard has no dip switches", "index", index)
		return nil
	}

	if _, err := handler.DipSwitchUpdate(r, index, active); err != nil {
		return fmt.Errorf("dip switch %d: %w", index, err)
	}
	return nil
}

// EncoderUpdate taps the keycode mapped to the rotation on the active layers.
func (r *Runtime) EncoderUpdate(index int, clockwise bool) error {
	if !r.booted {
		return ErrNotBooted
	}
	if !r.caps.Encoders {
		r.log.Debugw("encoder support disabled, ignoring rotation", "index", index)
		return nil
	}

	kc, ok := r.keymap.Encoders.Lookup(r.LayerState()|r.defaultLayer, index, clockwise)
	if !ok {
		return nil
	}

	switch kc {
	case keycode.KC_WH_U:
		return r.out.Wheel(1)
	case keycode.KC_WH_D:
		return r.out.Wheel(-1)
	}
	return r.TapCode16(kc)
}

// LayerState returns the enabled layers, including locked ones.
func (r *Runtime) LayerState() keymap.LayerState {
	return r.layers | r.locked
}

// DefaultLayer returns the active default layer. It can differ from the saved
// one after EE_CLR until the next boot.
func (r *Runtime) DefaultLayer() uint8 {
	return r.defaultLayer.Highest()
}

func (r *Runtime) CapsWord() bool {
	return r.capsWord
}

func (r *Runtime) Settings() settings.Settings {
	return r.settings
}

func (r *Runtime) setLayerState(state keymap.LayerState) {
	state = r.keyboard.LayerStateSet(state)
	if state == r.layers {
		return
	}

	r.layers = state
	r.observer.LayerChanged(r.LayerState())
	r.log.Debugw("layer state", "layers", r.LayerState())
}

func (r *Runtime) toggleDebug() {
	if r.level == nil {
		return
	}
	if r.level.Level() == zapcore.DebugLevel {
		r.level.SetLevel(zapcore.InfoLevel)
	} else {
		r.level.SetLevel(zapcore.DebugLevel)
	}
	r.log.Infow("log level changed", "level", r.level.Level())
}

type nopObserver struct{}

func (nopObserver) KeyEvent(bool) {}

func (nopObserver) LayerChanged(keymap.LayerState) {}

func (nopObserver) ComboFired(int) {}
