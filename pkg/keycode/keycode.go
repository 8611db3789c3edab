package keycode

import "fmt"

// Keycode identifies a key action. The numeric ranges follow the QMK layout so
// that mod-tap and layer keycodes pack their arguments the same way.
type Keycode uint16

// Mod is a 5-bit modifier mask. Bit 0x10 selects the right-hand modifiers.
type Mod uint8

const (
	ModLCtl Mod = 0x01
	ModLSft Mod = 0x02
	ModLAlt Mod = 0x04
	ModLGui Mod = 0x08
	ModRCtl Mod = 0x11
	ModRSft Mod = 0x12
	ModRAlt Mod = 0x14
	ModRGui Mod = 0x18

	modRight Mod = 0x10
)

const (
	basicMax      Keycode = 0x00FF
	modsMin       Keycode = 0x0100
	modsMax       Keycode = 0x1FFF
	modTapMin     Keycode = 0x2000
	modTapMax     Keycode = 0x3FFF
	momentaryMin  Keycode = 0x5220
	momentaryMax  Keycode = 0x523F
	oneShotModMin Keycode = 0x52A0
	oneShotModMax Keycode = 0x52BF
	quantumMin    Keycode = 0x7000
	quantumMax    Keycode = 0x7DFF

	// SafeRange is the first keycode available to keymaps for their own use.
	SafeRange Keycode = 0x7E40
	userMax   Keycode = 0x7FFF
)

// WithMods wraps kc so that mods are held while it is pressed.
func WithMods(mods Mod, kc Keycode) Keycode {
	return Keycode(mods&0x1F)<<8 | kc&basicMax
}

func LCtl(kc Keycode) Keycode { return WithMods(ModLCtl, kc) }
func LSft(kc Keycode) Keycode { return WithMods(ModLSft, kc) }
func LAlt(kc Keycode) Keycode { return WithMods(ModLAlt, kc) }
func LGui(kc Keycode) Keycode { return WithMods(ModLGui, kc) }

// ModTap acts as mods when held and as kc when tapped. Only the low byte of kc
// survives, so tap keycodes outside the basic range cannot be expressed.
func ModTap(mods Mod, kc Keycode) Keycode {
	return modTapMin | Keycode(mods&0x1F)<<8 | kc&basicMax
}

func LCtlT(kc Keycode) Keycode { return ModTap(ModLCtl, kc) }
func LSftT(kc Keycode) Keycode { return ModTap(ModLSft, kc) }
func LAltT(kc Keycode) Keycode { return ModTap(ModLAlt, kc) }
func LGuiT(kc Keycode) Keycode { return ModTap(ModLGui, kc) }
func RCtlT(kc Keycode) Keycode { return ModTap(ModRCtl, kc) }
func RSftT(kc Keycode) Keycode { return ModTap(ModRSft, kc) }
func RAltT(kc Keycode) Keycode { return ModTap(ModRAlt, kc) }
func RGuiT(kc Keycode) Keycode { return ModTap(ModRGui, kc) }

// MO turns layer on while held.
func MO(layer uint8) Keycode {
	return momentaryMin | Keycode(layer&0x1F)
}

// OSM applies mods to the next key press only.
func OSM(mods Mod) Keycode {
	return oneShotModMin | Keycode(mods&0x1F)
}

func (kc Keycode) IsBasic() bool      { return kc <= basicMax }
func (kc Keycode) IsMods() bool       { return kc >= modsMin && kc <= modsMax }
func (kc Keycode) IsModTap() bool     { return kc >= modTapMin && kc <= modTapMax }
func (kc Keycode) IsMomentary() bool  { return kc >= momentaryMin && kc <= momentaryMax }
func (kc Keycode) IsOneShotMod() bool { return kc >= oneShotModMin && kc <= oneShotModMax }
func (kc Keycode) IsQuantum() bool    { return kc >= quantumMin && kc <= quantumMax }
func (kc Keycode) IsUser() bool       { return kc >= SafeRange && kc <= userMax }

// Basic strips any modifier or mod-tap wrapping and returns the basic keycode.
func (kc Keycode) Basic() Keycode {
	return kc & basicMax
}

// Mods returns the modifier mask carried by a mods, mod-tap or one-shot keycode.
func (kc Keycode) Mods() Mod {
	switch {
	case kc.IsMods(), kc.IsModTap():
		return Mod(kc>>8) & 0x1F
	case kc.IsOneShotMod():
		return Mod(kc) & 0x1F
	}
	return 0
}

// Layer returns the layer argument of a momentary keycode.
func (kc Keycode) Layer() uint8 {
	return uint8(kc & 0x1F)
}

// Keycodes returns the modifier keycodes making up the mask, left before right.
func (m Mod) Keycodes() []Keycode {
	base := KC_LCTL
	if m&modRight != 0 {
		base = KC_RCTL
	}

	var out []Keycode
	for i := 0; i < 4; i++ {
		if m&(1<<i) != 0 {
			out = append(out, base+Keycode(i))
		}
	}
	return out
}

func (kc Keycode) String() string {
	if name, ok := names[kc]; ok {
		return name
	}

	switch {
	case kc.IsMods():
		return fmt.Sprintf("MODS(0x%02X,%s)", uint8(kc.Mods()), kc.Basic())
	case kc.IsModTap():
		return fmt.Sprintf("MT(0x%02X,%s)", uint8(kc.Mods()), kc.Basic())
	case kc.IsMomentary():
		return fmt.Sprintf("MO(%d)", kc.Layer())
	case kc.IsOneShotMod():
		return fmt.Sprintf("OSM(0x%02X)", uint8(kc.Mods()))
	}

	return fmt.Sprintf("0x%04X", uint16(kc))
}
