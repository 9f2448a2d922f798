package renderer

import (
	"image"
	"math"

	"spacemerc/pkg/engine/raster"
	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/state"
)

// sprite draws shapes positioned relative to a floor center and scaled by
// the slot's drawing unit.
type sprite struct {
	dst raster.Surface
	fc  image.Point
	u   int
	// top of the slot, the base for shading references.
	top int
}

func (sp *sprite) pt(dx, dy int) image.Point {
	return image.Pt(sp.fc.X+dx, sp.fc.Y+dy)
}

func (sp *sprite) rect(dx, dy, w, h, radius int, corners raster.Corners, c raster.Color) {
	r := image.Rect(sp.fc.X+dx, sp.fc.Y+dy, sp.fc.X+dx+w, sp.fc.Y+dy+h)
	raster.FillRoundRect(sp.dst, r, radius, corners, c)
}

func (sp *sprite) circle(dx, dy, radius int, c raster.Color) {
	raster.FillCircle(sp.dst, sp.pt(dx, dy), radius, c)
}

// quad shades the box spanning x0..x1 and y0..y1, relative to the floor
// center, using the slot top offset by ref for density.
func (sp *sprite) quad(x0, y0, x1, y1, ref int) {
	shadedQuad(sp.dst, sp.pt(x0, y0), sp.pt(x0, y1), sp.pt(x1, y0), sp.top+ref)
}

// drawCellContents draws whatever occupies cell: the mission payload or an
// NPC, standing on a shadow.
func (sc *Scene) drawCellContents(dst raster.Surface, s *state.Session, cell world.Point, depth, pos int) {
	content := s.CellType(cell)
	kind := state.NPCNone
	if content == world.CellEmpty {
		slot, ok := s.Mission.NPCAt(cell)
		if !ok {
			return
		}
		kind = s.Mission.NPCs[slot].Kind
	}

	slot := sc.table.Slot(depth, pos)
	sp := &sprite{
		dst: dst,
		fc:  sc.table.FloorCenter(depth, pos),
		u:   sc.table.DrawingUnit(depth, pos),
		top: slot.TL.Y,
	}
	u := sp.u

	// Shadow
	sp.rect(-4*u, -u/2, 8*u, u, u/2, raster.CornersAll, raster.Black)

	switch {
	case kind.IsAlien():
		sp.drawAlien(kind)
	case content == world.CellHuman:
		sp.drawHuman()
	case kind == state.Robot:
		sp.drawRobot()
	case kind == state.Beast:
		sp.drawBeast(sc.clock().Unix()%2 != 0)
	case kind == state.Ooze:
		sp.drawOoze()
	case kind == state.FloatingMonstrosity:
		off := 1 + (slot.TL.Y/2)/world.MaxVisibilityDepth
		if depth > 0 {
			prev := sc.table.Slot(depth-1, pos)
			off = 1 + ((slot.TL.Y-prev.TL.Y)/2)/world.MaxVisibilityDepth
		}
		drawFloatingMonstrosity(dst, sp.pt(0, -6*u), 4*u, off)
	default:
		sp.drawItem()
	}
}

func (sp *sprite) drawAlien(kind state.NPCKind) {
	u := sp.u
	black, white := raster.Black, raster.White

	// Legs and waist
	sp.quad(-2*u, -3*u, -u, 0, 4)
	sp.quad(u, -3*u, 2*u, 0, 4)
	sp.quad(-2*u, -4*u, 2*u, -3*u, 4)

	// Torso
	if kind == state.AlienOfficer {
		sp.quad(-2*u, -8*u, 2*u, -4*u, -10)
	} else {
		sp.rect(-2*u, -8*u, 4*u, 4*u, 0, raster.CornersNone, black)
	}

	// Arms
	sp.rect(-3*u, -8*u, u, 3*u, u/2, raster.CornersLeft, white)
	if kind == state.AlienElite {
		sp.rect(2*u, -8*u, u, 3*u, u/2, raster.CornersRight, white)
		sp.circle(2*u+u/2, -(5*u + u/2), u/2+u/4, black)
	} else {
		sp.rect(2*u, -8*u, u, 4*u, u/2, raster.CornersRight, white)
	}

	// Head and eyes
	sp.rect(-u, -10*u, 2*u+1, 2*u, u, raster.CornersTop, white)
	sp.circle(-u/2, -9*u, u/4, black)
	sp.circle(u/2, -9*u, u/4, black)

	// Gun
	sp.circle(-(2*u + u/2), -(5*u + u/2), u/2+u/4, black)
}

func (sp *sprite) drawHuman() {
	u := sp.u
	black, white := raster.Black, raster.White

	sp.rect(-(u + u/2), -3*u, u, 3*u, 0, raster.CornersNone, black)
	sp.rect(u/2, -3*u, u, 3*u, 0, raster.CornersNone, black)
	sp.rect(-(u + u/2), -4*u, 3*u, u, 0, raster.CornersNone, black)

	sp.quad(-(u + u/2), -8*u, u+u/2, -4*u, -20)

	sp.rect(-2*u, -8*u, u/2, 4*u, u/4, raster.CornersLeft, white)
	sp.rect(u+u/2, -8*u, u/2, 4*u, u/4, raster.CornersRight, white)

	sp.rect(-u/2, -10*u, u+1, 2*u, u/2, raster.CornersAll, white)
	// Hair
	sp.quad(-u/2, -10*u, u/2, -(9*u + u/3), -10)

	sp.circle(-u/4, -9*u, u/6, black)
	sp.circle(u/4, -9*u, u/6, black)
}

func (sp *sprite) drawRobot() {
	u := sp.u
	black, white := raster.Black, raster.White

	// Tracks
	sp.quad(-4*u, -2*u, -u, 0, 6)
	sp.quad(u, -2*u, 4*u, 0, 6)

	// Arms
	sp.quad(-2*u, -5*u, 2*u, -4*u, -10)
	sp.rect(-4*u, -(5*u + u/2), 2*u, 2*u, u/3, raster.CornersAll, white)
	sp.rect(2*u, -(5*u + u/2), 2*u+1, 2*u, u/3, raster.CornersAll, white)

	sp.rect(-u, -6*u, 2*u, 5*u, u/2, raster.CornersTop, white)
	// Neck
	sp.quad(-u/2, -7*u, u/2, -6*u, -10)
	sp.rect(-2*u, -9*u, 4*u+1, 2*u, u/3, raster.CornersAll, white)

	sp.circle(-u, -8*u, u/2, black)
	sp.circle(u, -8*u, u/2, black)

	// Guns
	sp.circle(-3*u, -(4*u + u/2), u/2, black)
	sp.circle(3*u, -(4*u + u/2), u/2, black)
}

// drawBeast draws the beast with its mouth shut on odd clock seconds.
func (sp *sprite) drawBeast(odd bool) {
	u := sp.u
	black, white := raster.Black, raster.White

	sp.rect(-3*u, -4*u, 2*u, 4*u, 0, raster.CornersNone, black)
	sp.rect(u, -4*u, 2*u, 4*u, 0, raster.CornersNone, black)
	sp.circle(0, -5*u, 3*u, black)

	sp.rect(-(u + u/2), -7*u, u, u/2, u/4, raster.CornersAll, white)
	sp.rect(u/2, -7*u, u, u/2, u/4, raster.CornersAll, white)

	jaw := u + u/2
	if !odd {
		jaw += u / 2
	}
	for _, x := range []int{-(u + u/2), -u / 2, u / 2} {
		sp.rect(x, -5*u, u, jaw, u/2, raster.CornersAll, white)
	}
}

func (sp *sprite) drawOoze() {
	u := sp.u
	sp.circle(0, -2*u, 2*u, raster.Black)
	sp.circle(0, -6*u, 4*u, raster.Black)
	sp.rect(-3*u, -7*u, 2*u, u, u/2, raster.CornersAll, raster.White)
	sp.rect(u, -7*u, 2*u, u, u/2, raster.CornersAll, raster.White)
}

func (sp *sprite) drawItem() {
	u := sp.u
	sp.rect(-2*u, -6*u, 4*u, 6*u, u/2, raster.CornersTop, raster.White)
}

// Angles are in 1/65536ths of a turn and ratios scaled by trigMaxRatio, so
// the dot pattern of the sphere lands on the same pixels at every size.
const (
	trigMaxAngle  = 0x10000
	trigMaxRatio  = 0xffff
	ninetyDegrees = trigMaxAngle / 4
)

func trigLookup(f func(float64) float64, theta int) int {
	return int(math.Round(f(2*math.Pi*float64(theta)/trigMaxAngle) * trigMaxRatio))
}

// drawFloatingMonstrosity draws a white sphere shaded with concentric rings
// of black dots, sparser towards the middle.
func drawFloatingMonstrosity(dst raster.Surface, center image.Point, radius, offset int) {
	raster.FillCircle(dst, center, radius, raster.White)
	for i := radius; i > radius/3; i-- {
		if i == 2*(radius/3) {
			offset *= 2
		}
		step := (trigMaxRatio / 360) * offset
		theta := 0
		if i%2 == 0 {
			theta = step / 2
		}
		for ; theta < ninetyDegrees; theta += step {
			dx := trigLookup(math.Cos, theta) * i / trigMaxRatio
			dy := trigLookup(math.Sin, theta) * i / trigMaxRatio
			dst.SetPixel(center.X-dx, center.Y-dy, raster.Black)
			dst.SetPixel(center.X+dx, center.Y-dy, raster.Black)
			dst.SetPixel(center.X-dx, center.Y+dy, raster.Black)
			dst.SetPixel(center.X+dx, center.Y+dy, raster.Black)
		}
	}
}
