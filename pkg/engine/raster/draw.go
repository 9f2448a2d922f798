package raster

import (
	"image"
	"math"
	"sort"
)

// Corners selects which corners of a rectangle are rounded.
type Corners uint8

const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	CornersNone   Corners = 0
	CornersTop            = CornerTopLeft | CornerTopRight
	CornersBottom         = CornerBottomLeft | CornerBottomRight
	CornersLeft           = CornerTopLeft | CornerBottomLeft
	CornersRight          = CornerTopRight | CornerBottomRight
	CornersAll            = CornersTop | CornersBottom
)

// FillRect fills r.
func FillRect(s Surface, r image.Rectangle, c Color) {
	r = r.Intersect(s.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.SetPixel(x, y, c)
		}
	}
}

// cornerInset is how far row i of a radius r corner is pulled in from the
// side. Row 0 is the outermost.
func cornerInset(r, i int) int {
	d := float64(r) - float64(i) - 0.5
	return r - int(math.Round(math.Sqrt(float64(r*r)-d*d)))
}

// FillRoundRect fills r with the selected corners rounded to radius. The
// radius is capped to half the shorter side.
func FillRoundRect(s Surface, r image.Rectangle, radius int, corners Corners, c Color) {
	radius = min(radius, r.Dx()/2, r.Dy()/2)
	if radius <= 0 || corners == CornersNone {
		FillRect(s, r, c)
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		left, right := r.Min.X, r.Max.X
		top, bottom := y-r.Min.Y, r.Max.Y-1-y
		switch {
		case top < radius:
			if corners&CornerTopLeft != 0 {
				left += cornerInset(radius, top)
			}
			if corners&CornerTopRight != 0 {
				right -= cornerInset(radius, top)
			}
		case bottom < radius:
			if corners&CornerBottomLeft != 0 {
				left += cornerInset(radius, bottom)
			}
			if corners&CornerBottomRight != 0 {
				right -= cornerInset(radius, bottom)
			}
		}
		for x := left; x < right; x++ {
			s.SetPixel(x, y, c)
		}
	}
}

// FillCircle fills the disc of radius r around center.
func FillCircle(s Surface, center image.Point, r int, c Color) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		dx := int(math.Sqrt(float64(r*r - dy*dy)))
		for x := center.X - dx; x <= center.X+dx; x++ {
			s.SetPixel(x, center.Y+dy, c)
		}
	}
}

// Line draws a one pixel line from p0 to p1, both ends included.
func Line(s Surface, p0, p1 image.Point, c Color) {
	dx, dy := abs(p1.X-p0.X), -abs(p1.Y-p0.Y)
	sx, sy := sign(p1.X-p0.X), sign(p1.Y-p0.Y)
	err := dx + dy
	x, y := p0.X, p0.Y
	for {
		s.SetPixel(x, y, c)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// FillPolygon fills the closed polygon pts with the even-odd rule, sampling
// each row at its pixel centers.
func FillPolygon(s Surface, pts []image.Point, c Color) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	var xs []float64
	for y := minY; y <= maxY; y++ {
		fy := float64(y) + 0.5
		xs = xs[:0]
		for i, a := range pts {
			b := pts[(i+1)%len(pts)]
			ay, by := float64(a.Y), float64(b.Y)
			if (ay <= fy) == (by <= fy) {
				continue
			}
			t := (fy - ay) / (by - ay)
			xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i] - 0.5)); float64(x)+0.5 <= xs[i+1]; x++ {
				s.SetPixel(x, y, c)
			}
		}
	}
}

// Invert flips every pixel of r.
func Invert(s Surface, r image.Rectangle) {
	r = r.Intersect(s.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.SetPixel(x, y, s.Pixel(x, y)^White)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
