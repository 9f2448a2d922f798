package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"spacemerc/pkg/game/app"
)

func fillRect(dst *ebiten.Image, x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// Draw implements ebiten.Game.
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.canvas.Fill(e.bg)

	switch e.app.Screen() {
	case app.ScreenMission:
		e.drawScene()
	case app.ScreenMainMenu, app.ScreenUpgrades:
		e.drawMenu(e.canvas)
	case app.ScreenNarration:
		e.drawPage(e.canvas)
	}
	var latest string
	if msgs := e.app.Messages(); len(msgs) > 0 {
		latest = msgs[len(msgs)-1]
	}
	if title := e.app.Title(); title != "" || latest != "" {
		e.drawHeader(e.canvas, title, latest)
	}

	screen.Fill(e.bg)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := min(float64(sw)/canvasWidth, float64(sh)/canvasHeight)
	if scale >= 1 {
		// Whole multiples keep the pixel art crisp.
		scale = float64(int(scale))
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(sw)-canvasWidth*scale)/2, (float64(sh)-canvasHeight*scale)/2)
	screen.DrawImage(e.canvas, op)
}

// drawScene uploads the host's frame and draws it below the header.
func (e *EbitenRenderer) drawScene() {
	e.app.Frame().RGBA(e.pixels, e.fg, e.bg)
	e.scene.WritePixels(e.pixels)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(canvasScale, canvasScale)
	op.GeoM.Translate(0, headerHeight)
	e.canvas.DrawImage(e.scene, op)
}

// drawPage draws a narration page with a prompt at the bottom.
func (e *EbitenRenderer) drawPage(dst *ebiten.Image) {
	e.drawMarkup(dst, e.app.Page().Text, textMargin, headerHeight+textMargin, canvasWidth-2*textMargin)
	e.drawString(dst, gotext.Get("Press select"), textMargin, canvasHeight-lineHeight-textMargin, colorSubtle)
}

// Layout implements ebiten.Game. The canvas is scaled in Draw, so the
// screen matches the window.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
