package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"spacemerc/pkg/game/app"
)

// keyRepeatInfo tracks a held key or button.
type keyRepeatInfo struct {
	firstPressed int64 // Unix milliseconds
	lastRepeat   int64
}

// EbitenRenderer implements ebiten.Game over an app host. Ebiten calls
// Update and Draw from one goroutine, so no locking is needed.
type EbitenRenderer struct {
	app *app.App
	log *zap.Logger

	fg, bg         color.RGBA
	repeatInterval int64 // milliseconds

	canvas *ebiten.Image
	scene  *ebiten.Image
	pixels []byte
	face   *text.GoXFace

	keyRepeatState map[string]keyRepeatInfo

	windowWidth  int
	windowHeight int
	windowOpened bool
}
