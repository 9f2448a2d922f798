package renderer

import (
	"image"

	"spacemerc/pkg/engine/raster"
	"spacemerc/pkg/engine/world"
	"spacemerc/pkg/game/projection"
	"spacemerc/pkg/game/state"
)

// Status bar layout.
const (
	CompassRadius      = 5
	StatusMeterPadding = 4
	StatusMeterWidth   = projection.ScreenWidth/2 - CompassRadius - 2*StatusMeterPadding
	StatusMeterHeight  = projection.StatusBarHeight - 2*StatusMeterPadding
	smallCornerRadius  = 3
)

var (
	healthMeterOrigin = image.Pt(StatusMeterPadding, projection.GraphicsHeight+StatusMeterPadding)
	energyMeterOrigin = image.Pt(projection.ScreenWidth/2+StatusMeterPadding+CompassRadius+1,
		projection.GraphicsHeight+StatusMeterPadding)
	compassCenter = image.Pt(projection.ScreenWidth/2, projection.GraphicsHeight+projection.StatusBarHeight/2)

	// compassNeedle points south before rotation.
	compassNeedle = []image.Point{{-3, -3}, {3, -3}, {0, 6}}
)

func ratio(current, maximum int) float64 {
	if maximum <= 0 {
		return 0
	}
	return float64(current) / float64(maximum)
}

func drawStatusBar(dst raster.Surface, p *state.Player) {
	drawStatusMeter(dst, healthMeterOrigin, ratio(p.Stats[state.CurrentHP], p.Stats[state.MaxHP]))
	drawStatusMeter(dst, energyMeterOrigin, ratio(p.Stats[state.CurrentEnergy], p.Stats[state.MaxEnergy]))

	raster.FillCircle(dst, compassCenter, CompassRadius, raster.White)
	needle := CompassNeedle(p.Direction)
	raster.FillPolygon(dst, needle, raster.Black)
	for i := range needle {
		raster.Line(dst, needle[i], needle[(i+1)%len(needle)], raster.Black)
	}
}

// drawStatusMeter draws a full white meter and then checkers out the empty
// part from the right.
func drawStatusMeter(dst raster.Surface, origin image.Point, r float64) {
	full := image.Rect(origin.X, origin.Y, origin.X+StatusMeterWidth, origin.Y+StatusMeterHeight)
	raster.FillRoundRect(dst, full, smallCornerRadius, raster.CornersAll, raster.White)

	for i := origin.X + StatusMeterWidth; float64(i) >= float64(origin.X)+r*StatusMeterWidth; i-- {
		for j := origin.Y + i%2; j <= origin.Y+StatusMeterHeight; j += 2 {
			dst.SetPixel(i, j, raster.Black)
		}
	}
}

// CompassNeedle returns the needle polygon, in screen coordinates, turned
// to point the way the player faces.
func CompassNeedle(d world.Direction) []image.Point {
	// cos and sin of the rotation: south 0°, west 90°, north 180°, east 270°.
	var c, s int
	switch d {
	case world.West:
		c, s = 0, 1
	case world.North:
		c, s = -1, 0
	case world.East:
		c, s = 0, -1
	default: // South
		c, s = 1, 0
	}
	out := make([]image.Point, len(compassNeedle))
	for i, p := range compassNeedle {
		out[i] = compassCenter.Add(image.Pt(p.X*c-p.Y*s, p.X*s+p.Y*c))
	}
	return out
}
