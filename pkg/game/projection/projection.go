// Package projection precomputes where each visible cell is drawn in the
// first-person view.
package projection

import (
	"image"

	"spacemerc/pkg/engine/world"
)

// Screen geometry.
const (
	ScreenWidth     = 144
	ScreenHeight    = 168
	GraphicsHeight  = 136
	StatusBarHeight = 16
	SurfaceHeight   = GraphicsHeight + StatusBarHeight

	// FirstWallOffset is the inset of the nearest wall from the screen edges.
	FirstWallOffset = 16
	// MinWallHeight is the smallest slot that still gets walls drawn.
	MinWallHeight = 16
)

// Table dimensions. Depth 0 is the player's own cell.
const (
	NumDepths     = world.MaxVisibilityDepth - 1
	NumSlots      = 2*StraightAhead + 1
	StraightAhead = 5
)

// Slot is the screen rectangle of one cell face, from its top-left to its
// bottom-right corner.
type Slot struct {
	TL, BR image.Point
}

// Width of the slot's face.
func (s Slot) Width() int { return s.BR.X - s.TL.X }

// Height of the slot's face.
func (s Slot) Height() int { return s.BR.Y - s.TL.Y }

// MidX is the horizontal center of the slot.
func (s Slot) MidX() int { return (s.TL.X + s.BR.X) / 2 }

// Table holds a Slot for every depth and lateral position.
type Table struct {
	slots [NumDepths][NumSlots]Slot
}

// Build computes the table. Each depth is inset from the previous one by a
// shrinking step, and lateral slots sit side by side.
func Build() *Table {
	t := &Table{}
	tl := image.Pt(0, 0)
	for depth := 0; depth < NumDepths; depth++ {
		step := FirstWallOffset - 2*depth
		tl = tl.Add(image.Pt(step, step))
		center := Slot{TL: tl, BR: image.Pt(ScreenWidth-tl.X, GraphicsHeight-tl.Y)}

		w := center.Width()
		for pos := 0; pos < NumSlots; pos++ {
			shift := image.Pt(w*(pos-StraightAhead), 0)
			t.slots[depth][pos] = Slot{TL: center.TL.Add(shift), BR: center.BR.Add(shift)}
		}
	}
	return t
}

// Slot returns the slot at depth and lateral position pos. Anything outside
// the table yields the zero Slot.
func (t *Table) Slot(depth, pos int) Slot {
	if depth < 0 || depth >= NumDepths || pos < 0 || pos >= NumSlots {
		return Slot{}
	}
	return t.slots[depth][pos]
}

// DrawingUnit is the sprite scale for a slot: a tenth of its width, rounded.
func (t *Table) DrawingUnit(depth, pos int) int {
	w := t.Slot(depth, pos).Width()
	u := w / 10
	if w%10 >= 5 {
		u++
	}
	return u
}

// FloorCenter is where a sprite standing in the slot touches the floor.
func (t *Table) FloorCenter(depth, pos int) image.Point {
	s := t.Slot(depth, pos)
	m1 := s.MidX()
	if depth == 0 {
		m2 := m1
		switch {
		case pos < StraightAhead:
			m2 = -ScreenWidth / 2
		case pos > StraightAhead:
			m2 = ScreenWidth + ScreenWidth/2
		}
		return image.Pt((m1+m2)/2, GraphicsHeight)
	}
	prev := t.Slot(depth-1, pos)
	return image.Pt((m1+prev.MidX())/2, (s.BR.Y+prev.BR.Y)/2)
}
