// Package raster draws into one-bit frames. Everything is pixel exact and
// deterministic so scenes can be compared in tests.
package raster

import (
	"image"
	"image/color"
	"strings"
)

// Color is a one-bit pixel value.
type Color uint8

const (
	Black Color = iota
	White
)

// Surface is anything the primitives can draw on.
type Surface interface {
	Bounds() image.Rectangle
	SetPixel(x, y int, c Color)
	Pixel(x, y int) Color
}

// Frame is a black and white image. It is an image.Image, so it can be
// encoded or scaled with the image packages directly.
type Frame struct {
	*image.Paletted
}

// NewFrame returns a black frame of w×h pixels.
func NewFrame(w, h int) *Frame {
	palette := color.Palette{color.Black, color.White}
	return &Frame{Paletted: image.NewPaletted(image.Rect(0, 0, w, h), palette)}
}

// SetPixel sets a pixel. Points outside the frame are ignored.
func (f *Frame) SetPixel(x, y int, c Color) {
	if !(image.Point{x, y}).In(f.Rect) {
		return
	}
	f.SetColorIndex(x, y, uint8(c))
}

// Pixel reads a pixel. Points outside the frame read as black.
func (f *Frame) Pixel(x, y int) Color {
	if !(image.Point{x, y}).In(f.Rect) {
		return Black
	}
	return Color(f.ColorIndexAt(x, y))
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c Color) {
	for i := range f.Pix {
		f.Pix[i] = uint8(c)
	}
}

// Sub returns a surface drawing into r of f, with r.Min as its origin.
func (f *Frame) Sub(r image.Rectangle) Surface {
	return Clip(f, r)
}

// Clip returns a surface drawing into r of s, with r.Min as its origin.
// Writes outside r are dropped.
func Clip(s Surface, r image.Rectangle) Surface {
	return &view{parent: s, rect: r.Intersect(s.Bounds())}
}

// RGBA expands the frame into dst as packed RGBA bytes, four per pixel,
// using fg for white and bg for black. dst must hold 4×w×h bytes.
func (f *Frame) RGBA(dst []byte, fg, bg color.RGBA) {
	for i, v := range f.Pix {
		c := bg
		if Color(v) == White {
			c = fg
		}
		dst[4*i], dst[4*i+1], dst[4*i+2], dst[4*i+3] = c.R, c.G, c.B, c.A
	}
}

// Rows renders the frame as text, '#' for white and '.' for black.
func (f *Frame) Rows() []string {
	b := f.Rect
	rows := make([]string, 0, b.Dy())
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y++ {
		sb.Reset()
		for x := b.Min.X; x < b.Max.X; x++ {
			if f.Pixel(x, y) == White {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// view is a clipped, translated window onto another surface.
type view struct {
	parent Surface
	rect   image.Rectangle
}

func (v *view) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.rect.Dx(), v.rect.Dy())
}

func (v *view) SetPixel(x, y int, c Color) {
	p := image.Pt(x, y).Add(v.rect.Min)
	if p.In(v.rect) {
		v.parent.SetPixel(p.X, p.Y, c)
	}
}

func (v *view) Pixel(x, y int) Color {
	p := image.Pt(x, y).Add(v.rect.Min)
	if !p.In(v.rect) {
		return Black
	}
	return v.parent.Pixel(p.X, p.Y)
}
