package renderer

import (
	"image"
	"time"

	"spacemerc/pkg/engine/raster"
	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/projection"
	"spacemerc/pkg/game/state"
)

// Screen center, where the laser converges.
var screenCenter = image.Pt(projection.ScreenWidth/2, 72)

// Scene draws the first-person view and status bar of a session.
type Scene struct {
	table *projection.Table
	clock func() time.Time

	// Flashing inverts the graphics frame, signalling a hit.
	Flashing bool
}

// NewScene returns a scene drawing with table. clock drives the few
// animated sprites; nil means time.Now.
func NewScene(table *projection.Table, clock func() time.Time) *Scene {
	if clock == nil {
		clock = time.Now
	}
	return &Scene{table: table, clock: clock}
}

// Bounds is the size of surface Render expects.
func Bounds() image.Rectangle {
	return image.Rect(0, 0, projection.ScreenWidth, projection.SurfaceHeight)
}

// Render draws the whole frame for s onto dst, back to front.
func (sc *Scene) Render(dst raster.Surface, s *state.Session) {
	raster.FillRect(dst, dst.Bounds(), raster.Black)

	frame := raster.Clip(dst, image.Rect(0, 0, projection.ScreenWidth, projection.GraphicsHeight))
	sc.drawFloorAndCeiling(frame)
	if s.Mission != nil {
		sc.drawCells(frame, s)
	}
	if s.WeaponAnimation > 0 {
		drawLaser(frame, s.LaserBaseWidth)
	}
	if sc.Flashing {
		raster.Invert(frame, frame.Bounds())
	}

	drawStatusBar(dst, &s.Player)
}

// drawCells walks the visible cells from the far end in, so nearer faces
// overdraw farther ones. Depth 0 is the player's own cell.
func (sc *Scene) drawCells(dst raster.Surface, s *state.Session) {
	dir := s.Player.Direction
	for depth := projection.NumDepths - 1; depth >= 0; depth-- {
		cell := s.Player.Position.Step(dir, depth)
		if world.IsOutOfBounds(cell) {
			continue
		}
		if !s.CellType(cell).IsSolid() {
			sc.drawCell(dst, s, cell, depth, projection.StraightAhead)
		}

		for i := depth + 1; i > 0; i-- {
			if side := cell.Step(dir.Left(), i); !s.CellType(side).IsSolid() {
				sc.drawCell(dst, s, side, depth, projection.StraightAhead-i)
			}
			if side := cell.Step(dir.Right(), i); !s.CellType(side).IsSolid() {
				sc.drawCell(dst, s, side, depth, projection.StraightAhead+i)
			}
		}
	}
}

func (sc *Scene) drawCell(dst raster.Surface, s *state.Session, cell world.Point, depth, pos int) {
	sc.drawCellWalls(dst, s, cell, depth, pos)
	sc.drawCellContents(dst, s, cell, depth, pos)
}

// drawLaser fans lines from the bottom of the frame to the center; the
// outermost pair is black to edge the beam.
func drawLaser(dst raster.Surface, baseWidth int) {
	bottom := projection.GraphicsHeight
	raster.Line(dst, image.Pt(screenCenter.X, bottom), screenCenter, raster.White)
	half := baseWidth / 2
	for i := 0; i <= half; i++ {
		c := raster.White
		if i == half {
			c = raster.Black
		}
		raster.Line(dst, image.Pt(screenCenter.X-i, bottom), image.Pt(screenCenter.X-i/3, screenCenter.Y), c)
		raster.Line(dst, image.Pt(screenCenter.X+i, bottom), image.Pt(screenCenter.X+i/3, screenCenter.Y), c)
	}
}
