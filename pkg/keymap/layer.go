package keymap

import (
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"fmt"
)

// Both supported boards scan an 8x6 matrix.
const (
	MatrixRows = 8
	MatrixCols = 6
)

// Position is a key's location in the scan matrix.
type Position struct {
	Row uint8
	Col uint8
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func (p Position) valid() bool {
	return p.Row < MatrixRows && p.Col < MatrixCols
}

// Layer is one grid of keycodes indexed by matrix position.
type Layer [MatrixRows][MatrixCols]keycode.Keycode

// At returns the keycode at p, or KC_NO when p is outside the matrix.
func (l *Layer) At(p Position) keycode.Keycode {
	if !p.valid() {
		return keycode.KC_NO
	}
	return l[p.Row][p.Col]
}

// Layout maps the keys of a physical layout, in reading order, to matrix positions.
type Layout []Position

// Build places keys onto a layer using the layout. It panics when the key count
// does not match, since layer tables are fixed at compile time.
func (l Layout) Build(keys ...keycode.Keycode) Layer {
	if len(keys) != len(l) {
		panic(fmt.Sprintf("layout needs %d keys, got %d", len(l), len(keys)))
	}

	var layer Layer
	for i, pos := range l {
		layer[pos.Row][pos.Col] = keys[i]
	}
	return layer
}

// Split3x6x3 is a 42-key split layout: three rows of six per half plus three
// thumb keys. The right half is wired with its columns mirrored.
var Split3x6x3 = func() Layout {
	var l Layout
	for row := uint8(0); row < 3; row++ {
		for col := uint8(0); col < 6; col++ {
			l = append(l, Position{Row: row, Col: col})
		}
		for col := uint8(0); col < 6; col++ {
			l = append(l, Position{Row: row + 4, Col: 5 - col})
		}
	}
	for col := uint8(3); col < 6; col++ {
		l = append(l, Position{Row: 3, Col: col})
	}
	for col := uint8(0); col < 3; col++ {
		l = append(l, Position{Row: 7, Col: 5 - col})
	}
	return l
}()

// PlanckGrid is a 4x12 ortholinear layout. Columns 6-11 are scanned as rows 4-7.
var PlanckGrid = func() Layout {
	var l Layout
	for row := uint8(0); row < 4; row++ {
		for col := uint8(0); col < 12; col++ {
			if col < 6 {
				l = append(l, Position{Row: row, Col: col})
			} else {
				l = append(l, Position{Row: row + 4, Col: col - 6})
			}
		}
	}
	return l
}()
