package renderer

import (
	"image"

	"spacemerc/pkg/engine/raster"
	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/projection"
	"spacemerc/pkg/game/state"
)

// drawCellWalls draws the back, left and right walls bounding cell, with
// the entrance doorway cut into whichever of them faces out of the grid.
func (sc *Scene) drawCellWalls(dst raster.Surface, s *state.Session, cell world.Point, depth, pos int) {
	slot := sc.table.Slot(depth, pos)
	left, right, top, bottom := slot.TL.X, slot.BR.X, slot.TL.Y, slot.BR.Y
	if bottom-top < projection.MinWallHeight {
		return
	}

	m := s.Mission
	dir := s.Player.Direction
	solid := func(p world.Point) bool { return s.CellType(p).IsSolid() }
	exitPresent := cell == m.Entrance
	exitOffsetY := (right - left) / 4
	black := raster.Black

	var backDrawn, leftDrawn, rightDrawn bool
	ahead := cell.Step(dir, 1)

	if solid(ahead) {
		shadedQuad(dst, image.Pt(left, top), image.Pt(left, bottom), image.Pt(right, top), top)
		raster.Line(dst, image.Pt(left, top), image.Pt(right, top), black)
		raster.Line(dst, image.Pt(left, bottom), image.Pt(right, bottom), black)
		if top == sc.table.Slot(1, 0).TL.Y {
			raster.Line(dst, image.Pt(left, bottom+1), image.Pt(right, bottom+1), black)
		}
		if exitPresent && dir == m.EntranceDirection {
			exitOffsetX := (right - left) / 3
			raster.FillRect(dst, image.Rect(left+exitOffsetX, top+exitOffsetY, left+2*exitOffsetX, bottom), black)
		}
		backDrawn = true
	}

	// The side walls run from this slot's edge out to the previous depth's.
	var outerLeft, outerRight, yOffset int
	if depth == 0 {
		outerLeft, outerRight = 0, projection.ScreenWidth-1
		yOffset = top
	} else {
		prev := sc.table.Slot(depth-1, pos)
		outerLeft, outerRight = prev.TL.X, prev.BR.X
		yOffset = top - prev.TL.Y
	}

	if pos <= projection.StraightAhead && solid(cell.Step(dir.Left(), 1)) {
		l, r := outerLeft, left
		shadedQuad(dst, image.Pt(l, top-yOffset), image.Pt(l, bottom+yOffset), image.Pt(r, top), top-yOffset)
		raster.Line(dst, image.Pt(l, top-yOffset), image.Pt(r, top), black)
		raster.Line(dst, image.Pt(l, bottom+yOffset), image.Pt(r, bottom), black)

		if exitPresent && dir.Left() == m.EntranceDirection {
			exitOffsetX := (r - l) / 3
			x, topIn, bottomOut := l+exitOffsetX, yOffset/3, yOffset/3
			if depth == 0 {
				x, topIn, bottomOut = 0, yOffset-4, yOffset
			}
			fillQuad(dst,
				image.Pt(x, top-topIn+exitOffsetY),
				image.Pt(x, bottom+bottomOut),
				image.Pt(r-exitOffsetX, top+exitOffsetY),
				black)
		}
		leftDrawn = true
	}

	if pos >= projection.StraightAhead && solid(cell.Step(dir.Right(), 1)) {
		l, r := right, outerRight
		shadedQuad(dst, image.Pt(l, top), image.Pt(l, bottom), image.Pt(r, top-yOffset), top)
		raster.Line(dst, image.Pt(l, top), image.Pt(r, top-yOffset), black)
		raster.Line(dst, image.Pt(l, bottom), image.Pt(r, bottom+yOffset), black)

		if exitPresent && dir.Right() == m.EntranceDirection {
			exitOffsetX := (r - l) / 3
			x, topIn := r-exitOffsetX, yOffset/3
			if depth == 0 {
				x, topIn = projection.ScreenWidth, yOffset-5
			}
			fillQuad(dst,
				image.Pt(l+exitOffsetX, top+exitOffsetY),
				image.Pt(l+exitOffsetX, bottom+4),
				image.Pt(x, top-topIn+exitOffsetY),
				black)
		}
		rightDrawn = true
	}

	// Corner edges where a wall meets an opening or another wall.
	leftOpen := !solid(ahead.Step(dir.Left(), 1))
	rightOpen := !solid(ahead.Step(dir.Right(), 1))
	if (backDrawn && (leftDrawn || leftOpen)) || (leftDrawn && leftOpen) {
		raster.Line(dst, slot.TL, image.Pt(slot.TL.X, slot.BR.Y), black)
	}
	if (backDrawn && (rightDrawn || rightOpen)) || (rightDrawn && rightOpen) {
		raster.Line(dst, slot.BR, image.Pt(slot.BR.X, slot.TL.Y), black)
	}
}
