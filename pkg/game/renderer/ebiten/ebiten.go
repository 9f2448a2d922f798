package ebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"spacemerc/pkg/game/app"
	"spacemerc/pkg/game/config"
	"spacemerc/pkg/game/renderer"
)

// NewEbitenRenderer prepares a renderer for a. Call Vibrate from the app's
// vibration hook to reach the gamepads.
func NewEbitenRenderer(a *app.App, display config.Display, log *zap.Logger) (*EbitenRenderer, error) {
	fg, err := config.ParseHexColor(display.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}
	bg, err := config.ParseHexColor(display.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	bounds := renderer.Bounds()
	return &EbitenRenderer{
		app:            a,
		log:            log,
		fg:             fg,
		bg:             bg,
		repeatInterval: display.MoveRepeat.Milliseconds(),
		canvas:         ebiten.NewImage(canvasWidth, canvasHeight),
		scene:          ebiten.NewImage(bounds.Dx(), bounds.Dy()),
		pixels:         make([]byte, 4*bounds.Dx()*bounds.Dy()),
		face:           newFace(),
		keyRepeatState: make(map[string]keyRepeatInfo),
		windowWidth:    144 * display.Scale,
		windowHeight:   168 * display.Scale,
	}, nil
}

// Run opens the window and blocks until the player quits or the window is
// closed.
func (e *EbitenRenderer) Run() error {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("SpaceMerc"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
