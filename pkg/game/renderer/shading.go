package renderer

import (
	"image"

	"spacemerc/pkg/engine/raster"
	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/projection"
)

// ShadingOffset is the spacing of lit pixels for a surface at screen height
// v. Farther surfaces sit nearer the horizon and get sparser dither.
func ShadingOffset(v float64) int {
	const depth = world.MaxVisibilityDepth
	off := int(1 + v/depth)
	if int(v)%depth >= depth/2+depth%2 {
		off++
	}
	return max(off, 1)
}

// gradient is the slope of the quad's top edge.
func gradient(ul, ur image.Point) float64 {
	if ur.X == ul.X {
		return 0
	}
	return float64(ur.Y-ul.Y) / float64(ur.X-ul.X)
}

// shadedQuad dithers a quad whose left and right sides are vertical, with
// the top edge running ul→ur and the bottom mirrored from ll. refY places
// the quad in depth for the dither density.
func shadedQuad(dst raster.Surface, ul, ll, ur image.Point, refY int) {
	g := gradient(ul, ur)
	for i := ul.X; i <= ur.X && i < projection.ScreenWidth; i++ {
		di := float64(i-ul.X) * g
		off := ShadingOffset(float64(refY) + di)
		phase := 0
		if i%2 != 0 {
			phase = off/2 + off%2
		}
		for j := int(float64(ul.Y) + di); float64(j) < float64(ll.Y)-di; j++ {
			c := raster.Black
			if (j+int(di)+phase)%off == 0 {
				c = raster.White
			}
			dst.SetPixel(i, j, c)
		}
	}
}

// fillQuad fills a quad with vertical sides in c.
func fillQuad(dst raster.Surface, ul, ll, ur image.Point, c raster.Color) {
	g := gradient(ul, ur)
	for i := ul.X; i <= ur.X && i < projection.ScreenWidth; i++ {
		di := float64(i-ul.X) * g
		raster.Line(dst,
			image.Pt(i, int(float64(ul.Y)+di)),
			image.Pt(i, int(float64(ll.Y)-di)),
			c)
	}
}

// drawFloorAndCeiling dithers the floor and ceiling, mirrored about the
// horizon, down to the top of the farthest wall.
func (sc *Scene) drawFloorAndCeiling(dst raster.Surface) {
	maxY := sc.table.Slot(projection.NumDepths-1, projection.StraightAhead).TL.Y
	for y := 0; y < maxY; y++ {
		off := ShadingOffset(float64(y))
		x := 0
		if y%2 == 0 {
			x = off/2 + off%2
		}
		for ; x < projection.ScreenWidth; x += off {
			dst.SetPixel(x, y, raster.White)
			dst.SetPixel(x, projection.GraphicsHeight-y, raster.White)
		}
	}
}
